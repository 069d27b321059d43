package add_next_week

import (
	"github.com/m04kA/BNB-RentalService/internal/domain"
	addSlots "github.com/m04kA/BNB-RentalService/internal/usecase/add_slots"
)

// SlotResponse созданный слот
type SlotResponse struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

// AddNextWeekResponse HTTP response model
type AddNextWeekResponse struct {
	ListingID int64          `json:"listingId"`
	Created   []SlotResponse `json:"created"`
	Skipped   []string       `json:"skipped,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addSlots.Response) *AddNextWeekResponse {
	out := &AddNextWeekResponse{
		ListingID: resp.ListingID,
		Created:   make([]SlotResponse, len(resp.Created)),
	}
	for i, s := range resp.Created {
		out.Created[i] = SlotResponse{ID: s.ID, Date: s.Date.Format(domain.DateFormat)}
	}
	for _, d := range resp.Skipped {
		out.Skipped = append(out.Skipped, d.Format(domain.DateFormat))
	}
	return out
}
