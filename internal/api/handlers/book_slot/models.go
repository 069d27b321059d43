package book_slot

import (
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	bookSlot "github.com/m04kA/BNB-RentalService/internal/usecase/book_slot"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID int64   `json:"bookingId"`
	SlotID    int64   `json:"slotId"`
	ListingID int64   `json:"listingId"`
	Date      string  `json:"date"`
	Price     float64 `json:"price"`
	BookedAt  string  `json:"bookedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookingResponse {
	return &BookingResponse{
		BookingID: resp.BookingID,
		SlotID:    resp.SlotID,
		ListingID: resp.ListingID,
		Date:      resp.Date.Format(domain.DateFormat),
		Price:     resp.Price,
		BookedAt:  resp.BookedAt.Format(time.RFC3339),
	}
}
