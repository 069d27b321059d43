package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	listingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/listing"
	slotRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/slot"
	"github.com/m04kA/BNB-RentalService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubTime struct{ now time.Time }

func (s stubTime) Now() time.Time { return s.now }

type fakeSlotRepo struct {
	slots map[int64]*domain.BookingSlot

	upcoming []*domain.BookingSlot
	past     []*domain.BookingSlot

	pricedTo     *float64
	retracted    bool
	retractedErr error
	deleted      bool
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.BookingSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

func (f *fakeSlotRepo) ListForListing(_ context.Context, _ int64, _ time.Time) ([]*domain.BookingSlot, error) {
	return f.upcoming, nil
}

func (f *fakeSlotRepo) ListPastForListing(_ context.Context, _ int64, _ time.Time) ([]*domain.BookingSlot, error) {
	return f.past, nil
}

func (f *fakeSlotRepo) SetPrice(_ context.Context, _ int64, price float64) error {
	f.pricedTo = &price
	return nil
}

func (f *fakeSlotRepo) MarkRetracted(_ context.Context, _ int64) error {
	if f.retractedErr != nil {
		return f.retractedErr
	}
	f.retracted = true
	return nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, _ int64) error {
	f.deleted = true
	return nil
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

type fakeLedgerRepo struct {
	cancellations []*domain.LedgerEvent
}

func (f *fakeLedgerRepo) ListCancellationsBySlot(_ context.Context, _ int64) ([]*domain.LedgerEvent, error) {
	return f.cancellations, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(slots *fakeSlotRepo, ledger *fakeLedgerRepo) *Service {
	svc := NewService(
		slots,
		&fakeListingRepo{listings: map[int64]*domain.Listing{
			1: {ID: 1, OwnerID: 10},
		}},
		ledger,
		nopLogger{},
	)
	svc.timeProvider = stubTime{now: day(2026, time.September, 1)}
	return svc
}

func openSlot() *domain.BookingSlot {
	return &domain.BookingSlot{
		ID:        5,
		ListingID: 1,
		Date:      day(2026, time.September, 10),
		Status:    domain.StatusOpen,
	}
}

func TestSetPrice(t *testing.T) {
	t.Run("prices an open slot", func(t *testing.T) {
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: openSlot()}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		view, err := svc.SetPrice(context.Background(), 5, 10, 150)
		require.NoError(t, err)

		require.NotNil(t, repo.pricedTo)
		assert.Equal(t, 150.0, *repo.pricedTo)
		require.NotNil(t, view.RentalPrice)
		assert.Equal(t, 150.0, *view.RentalPrice)
		assert.Equal(t, string(domain.StateOpen), view.State)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: openSlot()}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		_, err := svc.SetPrice(context.Background(), 5, 10, -1)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("rejects non-owner", func(t *testing.T) {
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: openSlot()}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		_, err := svc.SetPrice(context.Background(), 5, 99, 150)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("rejects past slot", func(t *testing.T) {
		slot := openSlot()
		slot.Date = day(2026, time.August, 20)
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: slot}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		_, err := svc.SetPrice(context.Background(), 5, 10, 150)
		assert.ErrorIs(t, err, ErrSlotExpired)
	})

	t.Run("rejects booked slot", func(t *testing.T) {
		slot := openSlot()
		slot.Status = domain.StatusBooked
		slot.RenterID = ptr.Ptr(int64(20))
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: slot}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		_, err := svc.SetPrice(context.Background(), 5, 10, 150)
		assert.ErrorIs(t, err, ErrSlotBooked)
	})
}

func TestRetract(t *testing.T) {
	t.Run("retracts an open slot", func(t *testing.T) {
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: openSlot()}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		require.NoError(t, svc.Retract(context.Background(), 5, 10))
		assert.True(t, repo.retracted)
	})

	t.Run("maps concurrent state change to conflict", func(t *testing.T) {
		repo := &fakeSlotRepo{
			slots:        map[int64]*domain.BookingSlot{5: openSlot()},
			retractedErr: slotRepo.ErrSlotUnavailable,
		}
		svc := newTestService(repo, &fakeLedgerRepo{})

		err := svc.Retract(context.Background(), 5, 10)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("rejects already retracted slot", func(t *testing.T) {
		slot := openSlot()
		slot.Status = domain.StatusRetracted
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: slot}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		err := svc.Retract(context.Background(), 5, 10)
		assert.ErrorIs(t, err, ErrSlotRetracted)
	})
}

func TestDelete(t *testing.T) {
	t.Run("deletes an open slot", func(t *testing.T) {
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: openSlot()}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		require.NoError(t, svc.Delete(context.Background(), 5, 10))
		assert.True(t, repo.deleted)
	})

	t.Run("deletes a retracted slot", func(t *testing.T) {
		slot := openSlot()
		slot.Status = domain.StatusRetracted
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: slot}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		require.NoError(t, svc.Delete(context.Background(), 5, 10))
	})

	t.Run("refuses to delete a booked slot", func(t *testing.T) {
		slot := openSlot()
		slot.Status = domain.StatusBooked
		slot.RenterID = ptr.Ptr(int64(20))
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: slot}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		err := svc.Delete(context.Background(), 5, 10)
		assert.ErrorIs(t, err, ErrSlotBooked)
		assert.False(t, repo.deleted)
	})

	t.Run("unknown slot", func(t *testing.T) {
		repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{}}
		svc := newTestService(repo, &fakeLedgerRepo{})

		err := svc.Delete(context.Background(), 404, 10)
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}

func TestGetSchedule(t *testing.T) {
	t.Run("splits upcoming and past", func(t *testing.T) {
		repo := &fakeSlotRepo{
			slots: map[int64]*domain.BookingSlot{},
			upcoming: []*domain.BookingSlot{
				{ID: 1, ListingID: 1, Date: day(2026, time.September, 1), Status: domain.StatusOpen},
				{ID: 2, ListingID: 1, Date: day(2026, time.September, 2), Status: domain.StatusBooked, RenterID: ptr.Ptr(int64(20))},
			},
			past: []*domain.BookingSlot{
				{ID: 3, ListingID: 1, Date: day(2026, time.August, 30), Status: domain.StatusOpen},
			},
		}
		svc := newTestService(repo, &fakeLedgerRepo{})

		schedule, err := svc.GetSchedule(context.Background(), 1, 10)
		require.NoError(t, err)

		require.Len(t, schedule.Upcoming, 2)
		require.Len(t, schedule.Past, 1)
		assert.Equal(t, string(domain.StateBooked), schedule.Upcoming[1].State)
		assert.Equal(t, string(domain.StatePast), schedule.Past[0].State)
	})

	t.Run("owner only", func(t *testing.T) {
		svc := newTestService(&fakeSlotRepo{slots: map[int64]*domain.BookingSlot{}}, &fakeLedgerRepo{})

		_, err := svc.GetSchedule(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetSlotInfo(t *testing.T) {
	cancelledAt := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	ledger := &fakeLedgerRepo{cancellations: []*domain.LedgerEvent{
		{SlotID: 5, ListingID: 1, RenterID: 20, ActorID: 20, Price: ptr.Ptr(150.0), OccurredAt: cancelledAt},
	}}
	repo := &fakeSlotRepo{slots: map[int64]*domain.BookingSlot{5: openSlot()}}
	svc := newTestService(repo, ledger)

	info, err := svc.GetSlotInfo(context.Background(), 5, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(5), info.Slot.ID)
	require.Len(t, info.Cancellations, 1)
	assert.Equal(t, int64(20), info.Cancellations[0].RenterID)
	assert.Equal(t, cancelledAt, info.Cancellations[0].OccurredAt)
}
