package domain

import "time"

// SlotStatus is the stored lifecycle status of a booking slot.
// "Past" is intentionally not stored: it is derived from the slot date
// at read time, see SlotState.
type SlotStatus string

const (
	StatusOpen      SlotStatus = "open"
	StatusBooked    SlotStatus = "booked"
	StatusRetracted SlotStatus = "retracted"
)

// SlotState is the effective lifecycle state as observed by callers:
// the stored status plus the derived "past" classification.
type SlotState string

const (
	StateOpen      SlotState = "open"
	StateBooked    SlotState = "booked"
	StateRetracted SlotState = "retracted"
	StatePast      SlotState = "past"
)

// BookingSlot represents one day's availability record for one listing.
// (ListingID, Date) is unique across the table.
type BookingSlot struct {
	ID        int64
	ListingID int64
	Date      time.Time // calendar day, time part is zero
	// RentalPrice is optional until the host posts an offer
	RentalPrice *float64
	Status      SlotStatus
	// RenterID is set while the slot is booked
	RenterID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPast returns true if the slot's date is before today
func (s *BookingSlot) IsPast(now time.Time) bool {
	return truncateToDay(s.Date).Before(truncateToDay(now))
}

// IsPriced returns true if the host has set a rental price
func (s *BookingSlot) IsPriced() bool {
	return s.RentalPrice != nil
}

// StateAt derives the effective state for the given current time.
// A past-dated slot is reported as StatePast regardless of stored status.
func (s *BookingSlot) StateAt(now time.Time) SlotState {
	if s.IsPast(now) {
		return StatePast
	}
	switch s.Status {
	case StatusBooked:
		return StateBooked
	case StatusRetracted:
		return StateRetracted
	default:
		return StateOpen
	}
}

// CanBeBooked returns true if a renter may book the slot right now
func (s *BookingSlot) CanBeBooked(now time.Time) bool {
	return s.StateAt(now) == StateOpen && s.IsPriced()
}

// CanBePriced returns true if the host may change the slot price
func (s *BookingSlot) CanBePriced(now time.Time) bool {
	return s.StateAt(now) == StateOpen
}

// CanBeRetracted returns true if the host may withdraw the slot's availability
func (s *BookingSlot) CanBeRetracted(now time.Time) bool {
	return s.StateAt(now) == StateOpen
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
