package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingSlot_StateAt(t *testing.T) {
	now := time.Date(2026, time.September, 10, 15, 30, 0, 0, time.UTC)
	price := 120.0
	renterID := int64(7)

	tests := []struct {
		name string
		slot BookingSlot
		want SlotState
	}{
		{
			name: "open slot today",
			slot: BookingSlot{Date: day(2026, time.September, 10), Status: StatusOpen},
			want: StateOpen,
		},
		{
			name: "open slot in the future",
			slot: BookingSlot{Date: day(2026, time.September, 20), Status: StatusOpen},
			want: StateOpen,
		},
		{
			name: "booked slot",
			slot: BookingSlot{Date: day(2026, time.September, 12), Status: StatusBooked, RenterID: &renterID, RentalPrice: &price},
			want: StateBooked,
		},
		{
			name: "retracted slot",
			slot: BookingSlot{Date: day(2026, time.September, 12), Status: StatusRetracted},
			want: StateRetracted,
		},
		{
			name: "past date wins over open status",
			slot: BookingSlot{Date: day(2026, time.September, 9), Status: StatusOpen},
			want: StatePast,
		},
		{
			name: "past date wins over booked status",
			slot: BookingSlot{Date: day(2026, time.September, 1), Status: StatusBooked, RenterID: &renterID},
			want: StatePast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.StateAt(now))
		})
	}
}

func TestBookingSlot_CanBeBooked(t *testing.T) {
	now := day(2026, time.September, 10)
	price := 80.0

	t.Run("open priced future slot", func(t *testing.T) {
		slot := BookingSlot{Date: day(2026, time.September, 11), Status: StatusOpen, RentalPrice: &price}
		assert.True(t, slot.CanBeBooked(now))
	})

	t.Run("unpriced slot is not bookable", func(t *testing.T) {
		slot := BookingSlot{Date: day(2026, time.September, 11), Status: StatusOpen}
		assert.False(t, slot.CanBeBooked(now))
	})

	t.Run("past slot is not bookable", func(t *testing.T) {
		slot := BookingSlot{Date: day(2026, time.September, 9), Status: StatusOpen, RentalPrice: &price}
		assert.False(t, slot.CanBeBooked(now))
	})

	t.Run("retracted slot is not bookable", func(t *testing.T) {
		slot := BookingSlot{Date: day(2026, time.September, 11), Status: StatusRetracted, RentalPrice: &price}
		assert.False(t, slot.CanBeBooked(now))
	})
}

func TestBookingSlot_IsPast_IgnoresTimeOfDay(t *testing.T) {
	slot := BookingSlot{Date: day(2026, time.September, 10), Status: StatusOpen}

	earlyMorning := time.Date(2026, time.September, 10, 0, 1, 0, 0, time.UTC)
	lateEvening := time.Date(2026, time.September, 10, 23, 59, 0, 0, time.UTC)

	assert.False(t, slot.IsPast(earlyMorning))
	assert.False(t, slot.IsPast(lateEvening))
	assert.True(t, slot.IsPast(day(2026, time.September, 11)))
}
