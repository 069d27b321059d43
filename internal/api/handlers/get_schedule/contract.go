package get_schedule

import (
	"context"

	"github.com/m04kA/BNB-RentalService/internal/service/slots/models"
)

type SlotService interface {
	GetSchedule(ctx context.Context, listingID, userID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
