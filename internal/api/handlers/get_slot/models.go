package get_slot

import (
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	"github.com/m04kA/BNB-RentalService/internal/service/slots/models"
)

// CancellationResponse запись истории отмен
type CancellationResponse struct {
	RenterID    int64    `json:"renterId"`
	CancelledBy int64    `json:"cancelledBy"`
	Price       *float64 `json:"price,omitempty"`
	OccurredAt  string   `json:"occurredAt"`
}

// SlotInfoResponse HTTP response model
type SlotInfoResponse struct {
	ID            int64                  `json:"id"`
	ListingID     int64                  `json:"listingId"`
	Date          string                 `json:"date"`
	RentalPrice   *float64               `json:"rentalPrice,omitempty"`
	State         string                 `json:"state"`
	RenterID      *int64                 `json:"renterId,omitempty"`
	Cancellations []CancellationResponse `json:"cancellations"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotInfoResponse) *SlotInfoResponse {
	out := &SlotInfoResponse{
		ID:            resp.Slot.ID,
		ListingID:     resp.Slot.ListingID,
		Date:          resp.Slot.Date.Format(domain.DateFormat),
		RentalPrice:   resp.Slot.RentalPrice,
		State:         resp.Slot.State,
		RenterID:      resp.Slot.RenterID,
		Cancellations: make([]CancellationResponse, len(resp.Cancellations)),
	}
	for i, c := range resp.Cancellations {
		out.Cancellations[i] = CancellationResponse{
			RenterID:    c.RenterID,
			CancelledBy: c.CancelledBy,
			Price:       c.Price,
			OccurredAt:  c.OccurredAt.Format(time.RFC3339),
		}
	}
	return out
}
