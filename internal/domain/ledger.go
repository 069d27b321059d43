package domain

import "time"

// LedgerEventType classifies an append-only booking ledger entry
type LedgerEventType string

const (
	LedgerEventBooked    LedgerEventType = "booked"
	LedgerEventCancelled LedgerEventType = "cancelled"
)

// LedgerEvent is an immutable record of a booking or cancellation.
// Ledger rows survive the deletion of the live booking row and feed
// reporting and rating-eligibility checks.
type LedgerEvent struct {
	ID        int64
	SlotID    int64
	ListingID int64
	RenterID  int64
	SlotDate  time.Time
	Price     *float64
	EventType LedgerEventType
	// ActorID is who performed the action (the renter for bookings,
	// the renter or the host for cancellations)
	ActorID    int64
	OccurredAt time.Time
}
