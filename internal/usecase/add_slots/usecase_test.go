package add_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	listingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/listing"
	slotRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/slot"
	"github.com/m04kA/BNB-RentalService/internal/integrations/userservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubTime struct{ now time.Time }

func (s stubTime) Now() time.Time { return s.now }

type fakeSlotRepo struct {
	existing map[string]bool
	created  []*domain.BookingSlot
	latest   *domain.BookingSlot
	nextID   int64
}

func (f *fakeSlotRepo) Create(_ context.Context, s *domain.BookingSlot) (*domain.BookingSlot, error) {
	key := s.Date.Format(domain.DateFormat)
	if f.existing[key] {
		return nil, slotRepo.ErrDuplicateSlotDate
	}
	f.nextID++
	out := *s
	out.ID = f.nextID
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeSlotRepo) GetLatestForListing(_ context.Context, _ int64) (*domain.BookingSlot, error) {
	if f.latest == nil {
		return nil, slotRepo.ErrSlotNotFound
	}
	return f.latest, nil
}

type fakeListingRepo struct {
	listings map[int64]*domain.Listing
}

func (f *fakeListingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, listingRepo.ErrListingNotFound
	}
	return l, nil
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (f *fakeUserClient) GetUser(_ context.Context, id int64) (*userservice.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return u, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(slots *fakeSlotRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		slots,
		&fakeListingRepo{listings: map[int64]*domain.Listing{
			1: {ID: 1, OwnerID: 10},
		}},
		&fakeUserClient{users: map[int64]*userservice.User{
			10: {ID: 10, IsHost: true},
			20: {ID: 20, IsRenter: true},
		}},
		nopLogger{},
	)
	uc.timeProvider = stubTime{now: now}
	return uc
}

func TestExecute_CreatesInclusiveRange(t *testing.T) {
	slots := &fakeSlotRepo{existing: map[string]bool{}}
	uc := newTestUseCase(slots, day(2026, time.September, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		ListingID: 1,
		UserID:    10,
		DateFrom:  day(2026, time.September, 5),
		DateTo:    day(2026, time.September, 7),
	})
	require.NoError(t, err)

	require.Len(t, resp.Created, 3)
	assert.Equal(t, day(2026, time.September, 5), resp.Created[0].Date)
	assert.Equal(t, day(2026, time.September, 7), resp.Created[2].Date)
	assert.Empty(t, resp.Skipped)

	for _, s := range slots.created {
		assert.Equal(t, domain.StatusOpen, s.Status)
		assert.Nil(t, s.RentalPrice)
	}
}

func TestExecute_SkipsExistingDates(t *testing.T) {
	slots := &fakeSlotRepo{existing: map[string]bool{
		"2026-09-06": true,
	}}
	uc := newTestUseCase(slots, day(2026, time.September, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		ListingID: 1,
		UserID:    10,
		DateFrom:  day(2026, time.September, 5),
		DateTo:    day(2026, time.September, 7),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Created, 2)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, day(2026, time.September, 6), resp.Skipped[0])
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{existing: map[string]bool{}}, day(2026, time.September, 1))

	_, err := uc.Execute(context.Background(), &Request{
		ListingID: 1,
		UserID:    10,
		DateFrom:  day(2026, time.September, 7),
		DateTo:    day(2026, time.September, 5),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_NotHost(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{existing: map[string]bool{}}, day(2026, time.September, 1))

	_, err := uc.Execute(context.Background(), &Request{
		ListingID: 1,
		UserID:    20,
		DateFrom:  day(2026, time.September, 5),
		DateTo:    day(2026, time.September, 5),
	})
	assert.ErrorIs(t, err, ErrNotHost)
}

func TestExecute_NotOwner(t *testing.T) {
	slots := &fakeSlotRepo{existing: map[string]bool{}}
	uc := NewUseCase(
		slots,
		&fakeListingRepo{listings: map[int64]*domain.Listing{
			1: {ID: 1, OwnerID: 99},
		}},
		&fakeUserClient{users: map[int64]*userservice.User{
			10: {ID: 10, IsHost: true},
		}},
		nopLogger{},
	)
	uc.timeProvider = stubTime{now: day(2026, time.September, 1)}

	_, err := uc.Execute(context.Background(), &Request{
		ListingID: 1,
		UserID:    10,
		DateFrom:  day(2026, time.September, 5),
		DateTo:    day(2026, time.September, 5),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecuteNextWeek_StartsTodayWhenNoSlots(t *testing.T) {
	slots := &fakeSlotRepo{existing: map[string]bool{}}
	uc := newTestUseCase(slots, day(2026, time.September, 1))

	resp, err := uc.ExecuteNextWeek(context.Background(), &NextWeekRequest{ListingID: 1, UserID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Created, domain.WeekSlotCount)
	assert.Equal(t, day(2026, time.September, 1), resp.Created[0].Date)
	assert.Equal(t, day(2026, time.September, 7), resp.Created[6].Date)
}

func TestExecuteNextWeek_ContinuesFromLatestSlot(t *testing.T) {
	slots := &fakeSlotRepo{
		existing: map[string]bool{},
		latest:   &domain.BookingSlot{ID: 5, ListingID: 1, Date: day(2026, time.September, 10)},
	}
	uc := newTestUseCase(slots, day(2026, time.September, 1))

	resp, err := uc.ExecuteNextWeek(context.Background(), &NextWeekRequest{ListingID: 1, UserID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Created, domain.WeekSlotCount)
	assert.Equal(t, day(2026, time.September, 11), resp.Created[0].Date)
	assert.Equal(t, day(2026, time.September, 17), resp.Created[6].Date)
}

func TestExecuteNextWeek_ClampsToTodayWhenScheduleEndedInThePast(t *testing.T) {
	slots := &fakeSlotRepo{
		existing: map[string]bool{},
		latest:   &domain.BookingSlot{ID: 5, ListingID: 1, Date: day(2026, time.August, 20)},
	}
	uc := newTestUseCase(slots, day(2026, time.September, 1))

	resp, err := uc.ExecuteNextWeek(context.Background(), &NextWeekRequest{ListingID: 1, UserID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Created, domain.WeekSlotCount)
	assert.Equal(t, day(2026, time.September, 1), resp.Created[0].Date)
}
