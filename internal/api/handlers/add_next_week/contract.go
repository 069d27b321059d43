package add_next_week

import (
	"context"

	addSlots "github.com/m04kA/BNB-RentalService/internal/usecase/add_slots"
)

type AddNextWeekUseCase interface {
	ExecuteNextWeek(ctx context.Context, req *addSlots.NextWeekRequest) (*addSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
