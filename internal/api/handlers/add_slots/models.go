package add_slots

import (
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	addSlots "github.com/m04kA/BNB-RentalService/internal/usecase/add_slots"
)

// AddSlotsRequest HTTP request model
type AddSlotsRequest struct {
	DateFrom string `json:"dateFrom"` // "2026-09-01"
	DateTo   string `json:"dateTo"`   // "2026-09-07"
}

// SlotResponse созданный слот
type SlotResponse struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

// AddSlotsResponse HTTP response model
type AddSlotsResponse struct {
	ListingID int64          `json:"listingId"`
	Created   []SlotResponse `json:"created"`
	Skipped   []string       `json:"skipped,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddSlotsRequest) ToUseCaseRequest(listingID, userID int64) (*addSlots.Request, error) {
	dateFrom, err := time.Parse(domain.DateFormat, r.DateFrom)
	if err != nil {
		return nil, err
	}

	dateTo, err := time.Parse(domain.DateFormat, r.DateTo)
	if err != nil {
		return nil, err
	}

	return &addSlots.Request{
		ListingID: listingID,
		UserID:    userID,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addSlots.Response) *AddSlotsResponse {
	out := &AddSlotsResponse{
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
