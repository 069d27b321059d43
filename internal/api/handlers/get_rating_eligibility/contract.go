package get_rating_eligibility

import (
	"context"

	"github.com/m04kA/BNB-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	CheckRatingEligibility(ctx context.Context, renterID, hostID int64) (*models.EligibilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
