package book_slot

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	listingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/listing"
	slotRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/slot"
	"github.com/m04kA/BNB-RentalService/internal/integrations/userservice"
	"github.com/m04kA/BNB-RentalService/pkg/ptr"
	"github.com/m04kA/BNB-RentalService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubTime struct{ now time.Time }

func (s stubTime) Now() time.Time { return s.now }

type fakeSlotRepo struct {
	slot *domain.BookingSlot
	// markBookedErr имитирует проигрыш условного UPDATE
	markBookedErr error
	bookedBy      *int64
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.BookingSlot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) MarkBooked(_ context.Context, _ int64, renterID int64) error {
	if f.markBookedErr != nil {
		return f.markBookedErr
	}
	f.bookedBy = &renterID
	return nil
}

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	out := *b
	out.ID = 100
	out.CreatedAt = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	f.created = &out
	return &out, nil
}

type fakeListingRepo struct {
	listing *domain.Listing
}

func (f *fakeListingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	if f.listing == nil || f.listing.ID != id {
		return nil, listingRepo.ErrListingNotFound
	}
	return f.listing, nil
}

type fakeLedgerRepo struct {
	events []*domain.LedgerEvent
}

func (f *fakeLedgerRepo) RecordBooking(_ context.Context, e *domain.LedgerEvent) error {
	f.events = append(f.events, e)
	return nil
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

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	uc       *UseCase
	slots    *fakeSlotRepo
	bookings *fakeBookingRepo
	ledger   *fakeLedgerRepo
}

func newFixture(slot *domain.BookingSlot, txErr error) *fixture {
	slots := &fakeSlotRepo{slot: slot}
	bookings := &fakeBookingRepo{}
	ledger := &fakeLedgerRepo{}

	uc := NewUseCase(
		slots,
		bookings,
		&fakeListingRepo{listing: &domain.Listing{ID: 1, OwnerID: 10}},
		ledger,
		&fakeUserClient{users: map[int64]*userservice.User{
			10: {ID: 10, IsHost: true, IsRenter: true},
			20: {ID: 20, IsRenter: true},
			30: {ID: 30, IsHost: true},
		}},
		&fakeTxManager{err: txErr},
		nopLogger{},
	)
	uc.timeProvider = stubTime{now: day(2026, time.September, 1)}

	return &fixture{uc: uc, slots: slots, bookings: bookings, ledger: ledger}
}

func openSlot() *domain.BookingSlot {
	return &domain.BookingSlot{
		ID:          5,
		ListingID:   1,
		Date:        day(2026, time.September, 10),
		RentalPrice: ptr.Ptr(150.0),
		Status:      domain.StatusOpen,
	}
}

func TestExecute_BooksOpenSlot(t *testing.T) {
	f := newFixture(openSlot(), nil)

	resp, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.BookingID)
	assert.Equal(t, int64(5), resp.SlotID)
	assert.Equal(t, int64(1), resp.ListingID)
	assert.Equal(t, 150.0, resp.Price)

	require.NotNil(t, f.slots.bookedBy)
	assert.Equal(t, int64(20), *f.slots.bookedBy)

	require.NotNil(t, f.bookings.created)
	assert.Equal(t, int64(20), f.bookings.created.RenterID)

	require.Len(t, f.ledger.events, 1)
	assert.Equal(t, int64(20), f.ledger.events[0].RenterID)
	assert.Equal(t, int64(20), f.ledger.events[0].ActorID)
}

func TestExecute_RejectsNonRenter(t *testing.T) {
	f := newFixture(openSlot(), nil)

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 30})
	assert.ErrorIs(t, err, ErrNotRenter)
}

func TestExecute_RejectsUnknownUser(t *testing.T) {
	f := newFixture(openSlot(), nil)

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 99})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_RejectsOwnListing(t *testing.T) {
	f := newFixture(openSlot(), nil)

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 10})
	assert.ErrorIs(t, err, ErrOwnListing)
}

func TestExecute_RejectsPastSlot(t *testing.T) {
	slot := openSlot()
	slot.Date = day(2026, time.August, 20)
	f := newFixture(slot, nil)

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 20})
	assert.ErrorIs(t, err, ErrSlotExpired)
}

func TestExecute_RejectsUnpricedSlot(t *testing.T) {
	slot := openSlot()
	slot.RentalPrice = nil
	f := newFixture(slot, nil)

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 20})
	assert.ErrorIs(t, err, ErrSlotNotPriced)
}

func TestExecute_RejectsRetractedSlot(t *testing.T) {
	slot := openSlot()
	slot.Status = domain.StatusRetracted
	f := newFixture(slot, nil)

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 20})
	assert.ErrorIs(t, err, ErrSlotRetracted)
}

func TestExecute_RejectsBookedSlot(t *testing.T) {
	slot := openSlot()
	slot.Status = domain.StatusBooked
	slot.RenterID = ptr.Ptr(int64(40))
	f := newFixture(slot, nil)

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 20})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_ConcurrentBookingLosesConditionalUpdate(t *testing.T) {
	f := newFixture(openSlot(), nil)
	f.slots.markBookedErr = slotRepo.ErrSlotUnavailable

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 20})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Nil(t, f.bookings.created)
	assert.Empty(t, f.ledger.events)
}

func TestExecute_SerializationFailureMapsToConflict(t *testing.T) {
	txErr := fmt.Errorf("%w: could not serialize access", txmanager.ErrSerialization)
	f := newFixture(openSlot(), txErr)

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 5, UserID: 20})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_SlotNotFound(t *testing.T) {
	f := newFixture(openSlot(), nil)

	_, err := f.uc.Execute(context.Background(), &Request{SlotID: 404, UserID: 20})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
