package add_slots

import (
	"context"

	addSlots "github.com/m04kA/BNB-RentalService/internal/usecase/add_slots"
)

type AddSlotsUseCase interface {
	Execute(ctx context.Context, req *addSlots.Request) (*addSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
