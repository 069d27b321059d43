package set_price

import (
	"github.com/m04kA/BNB-RentalService/internal/domain"
	"github.com/m04kA/BNB-RentalService/internal/service/slots/models"
)

// SetPriceRequest HTTP request model
type SetPriceRequest struct {
	Price float64 `json:"price"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          int64    `json:"id"`
	ListingID   int64    `json:"listingId"`
	Date        string   `json:"date"`
	RentalPrice *float64 `json:"rentalPrice,omitempty"`
	State       string   `json:"state"`
}

// FromServiceView конвертирует представление слота в HTTP response
func FromServiceView(v *models.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:          v.ID,
		ListingID:   v.ListingID,
		Date:        v.Date.Format(domain.DateFormat),
		RentalPrice: v.RentalPrice,
		State:       v.State,
	}
}
