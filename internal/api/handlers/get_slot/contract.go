package get_slot

import (
	"context"

	"github.com/m04kA/BNB-RentalService/internal/service/slots/models"
)

type SlotService interface {
	GetSlotInfo(ctx context.Context, slotID, userID int64) (*models.SlotInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
