package slots

import (
	"context"
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingSlot, error)
	ListForListing(ctx context.Context, listingID int64, from time.Time) ([]*domain.BookingSlot, error)
	ListPastForListing(ctx context.Context, listingID int64, before time.Time) ([]*domain.BookingSlot, error)
	SetPrice(ctx context.Context, id int64, price float64) error
	MarkRetracted(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// ListingRepository интерфейс каталога листингов
type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

// LedgerRepository интерфейс журнала бронирований
type LedgerRepository interface {
	ListCancellationsBySlot(ctx context.Context, slotID int64) ([]*domain.LedgerEvent, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
