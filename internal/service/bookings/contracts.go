package bookings

import (
	"context"
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория активных бронирований
type BookingRepository interface {
	GetBySlotID(ctx context.Context, slotID int64) (*domain.Booking, error)
	DeleteBySlotID(ctx context.Context, slotID int64) error
	ListRentalsForRenter(ctx context.Context, renterID int64, boundary time.Time, pastOnly bool) ([]*domain.Rental, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingSlot, error)
	MarkOpen(ctx context.Context, id int64) error
}

// ListingRepository интерфейс каталога листингов
type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

// LedgerRepository интерфейс журнала бронирований
type LedgerRepository interface {
	RecordCancellation(ctx context.Context, event *domain.LedgerEvent) error
	HasBookingHistory(ctx context.Context, renterID, hostID int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
