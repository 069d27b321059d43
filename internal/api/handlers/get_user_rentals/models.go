package get_user_rentals

import (
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	"github.com/m04kA/BNB-RentalService/internal/service/bookings/models"
)

// RentalResponse аренда пользователя
type RentalResponse struct {
	BookingID int64    `json:"bookingId"`
	SlotID    int64    `json:"slotId"`
	ListingID int64    `json:"listingId"`
	Date      string   `json:"date"`
	Price     *float64 `json:"price,omitempty"`
	BookedAt  string   `json:"bookedAt"`
}

// RentalsResponse HTTP response model
type RentalsResponse struct {
	UserID   int64            `json:"userId"`
	Upcoming []RentalResponse `json:"upcoming"`
	Past     []RentalResponse `json:"past"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RentalsResponse) *RentalsResponse {
	return &RentalsResponse{
		UserID:   resp.UserID,
		Upcoming: fromRentalViews(resp.Upcoming),
		Past:     fromRentalViews(resp.Past),
	}
}

func fromRentalViews(views []models.RentalView) []RentalResponse {
	out := make([]RentalResponse, len(views))
	for i, v := range views {
		out[i] = RentalResponse{
			BookingID: v.BookingID,
			SlotID:    v.SlotID,
			ListingID: v.ListingID,
			Date:      v.Date.Format(domain.DateFormat),
			Price:     v.Price,
			BookedAt:  v.BookedAt.Format(time.RFC3339),
		}
	}
	return out
}
