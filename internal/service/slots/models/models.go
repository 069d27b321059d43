package models

import (
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
)

// SlotView представление слота с производным состоянием
type SlotView struct {
	ID          int64
	ListingID   int64
	Date        time.Time
	RentalPrice *float64
	State       string
	RenterID    *int64
}

// ScheduleResponse расписание листинга: предстоящие и прошедшие дни
type ScheduleResponse struct {
	ListingID int64
	Upcoming  []SlotView
	Past      []SlotView
}

// CancellationView запись истории отмен по слоту
type CancellationView struct {
	RenterID    int64
	CancelledBy int64
	Price       *float64
	OccurredAt  time.Time
}

// SlotInfoResponse слот с арендатором и историей отмен
type SlotInfoResponse struct {
	Slot          SlotView
	Cancellations []CancellationView
}

// FromDomainSlot конвертирует слот в представление,
// вычисляя состояние на момент now
func FromDomainSlot(s *domain.BookingSlot, now time.Time) SlotView {
	return SlotView{
		ID:          s.ID,
		ListingID:   s.ListingID,
		Date:        s.Date,
		RentalPrice: s.RentalPrice,
		State:       string(s.StateAt(now)),
		RenterID:    s.RenterID,
	}
}

// FromDomainSlotList конвертирует список слотов
func FromDomainSlotList(slots []*domain.BookingSlot, now time.Time) []SlotView {
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = FromDomainSlot(s, now)
	}
	return views
}

// FromDomainCancellations конвертирует события отмен из журнала
func FromDomainCancellations(events []*domain.LedgerEvent) []CancellationView {
	views := make([]CancellationView, len(events))
	for i, e := range events {
		views[i] = CancellationView{
			RenterID:    e.RenterID,
			CancelledBy: e.ActorID,
			Price:       e.Price,
			OccurredAt:  e.OccurredAt,
		}
	}
	return views
}
