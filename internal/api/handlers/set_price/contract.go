package set_price

import (
	"context"

	"github.com/m04kA/BNB-RentalService/internal/service/slots/models"
)

type SlotService interface {
	SetPrice(ctx context.Context, slotID, userID int64, price float64) (*models.SlotView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
