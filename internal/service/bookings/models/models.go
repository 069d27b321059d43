package models

import (
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
)

// RentalView представление аренды для пользователя
type RentalView struct {
	BookingID int64
	SlotID    int64
	ListingID int64
	Date      time.Time
	Price     *float64
	BookedAt  time.Time
}

// RentalsResponse аренды пользователя: предстоящие и прошедшие
type RentalsResponse struct {
	UserID   int64
	Upcoming []RentalView
	Past     []RentalView
}

// EligibilityResponse результат проверки права на оценку
type EligibilityResponse struct {
	RenterID int64
	HostID   int64
	Eligible bool
}

// FromDomainRental конвертирует аренду в представление
func FromDomainRental(r *domain.Rental) RentalView {
	return RentalView{
		BookingID: r.BookingID,
		SlotID:    r.SlotID,
		ListingID: r.ListingID,
		Date:      r.Date,
		Price:     r.Price,
		BookedAt:  r.BookedAt,
	}
}

// FromDomainRentalList конвертирует список аренд
func FromDomainRentalList(rentals []*domain.Rental) []RentalView {
	views := make([]RentalView, len(rentals))
	for i, r := range rentals {
		views[i] = FromDomainRental(r)
	}
	return views
}
