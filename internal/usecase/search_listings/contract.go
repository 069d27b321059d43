package search_listings

import (
	"context"
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
)

// ListingRepository интерфейс каталога листингов
type ListingRepository interface {
	SearchCandidates(ctx context.Context, filter domain.ListingSearchFilter) ([]*domain.SearchCandidate, error)
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
