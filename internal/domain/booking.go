package domain

import "time"

// Booking represents the live renter↔slot assignment.
// A slot has at most one active booking at a time; cancellation removes
// the row and reverts the slot to open, while the ledger keeps history.
type Booking struct {
	ID        int64
	SlotID    int64
	ListingID int64
	RenterID  int64
	CreatedAt time.Time
}

// Rental is a renter-facing projection of a booking joined with its slot.
type Rental struct {
	BookingID int64
	SlotID    int64
	ListingID int64
	Date      time.Time
	Price     *float64
	BookedAt  time.Time
}

// IsPast returns true if the rented day is before today
func (r *Rental) IsPast(now time.Time) bool {
	return truncateToDay(r.Date).Before(truncateToDay(now))
}
