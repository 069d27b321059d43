package get_user_rentals

import (
	"context"

	"github.com/m04kA/BNB-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	GetUserRentals(ctx context.Context, userID int64) (*models.RentalsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
