package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	"github.com/m04kA/BNB-RentalService/pkg/dbmetrics"
	"github.com/m04kA/BNB-RentalService/pkg/psqlbuilder"
)

// Repository append-only журнал бронирований и отмен
// Таблица booking_events: строки только добавляются, update и delete
// на журнале не выполняются
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// RecordBooking записывает событие бронирования слота
func (r *Repository) RecordBooking(ctx context.Context, event *domain.LedgerEvent) error {
	event.EventType = domain.LedgerEventBooked
	return r.append(ctx, "RecordBooking", event)
}

// RecordCancellation записывает событие отмены бронирования
func (r *Repository) RecordCancellation(ctx context.Context, event *domain.LedgerEvent) error {
	event.EventType = domain.LedgerEventCancelled
	return r.append(ctx, "RecordCancellation", event)
}

// ListCancellationsBySlot получает историю отмен по слоту,
// отсортированную по времени события
func (r *Repository) ListCancellationsBySlot(ctx context.Context, slotID int64) ([]*domain.LedgerEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_id",
		"listing_id",
		"renter_id",
		"slot_date",
		"price",
		"event_type",
		"actor_id",
		"occurred_at",
	).
		From("booking_events").
		Where(squirrel.Eq{
			"slot_id":    slotID,
			"event_type": domain.LedgerEventCancelled,
		}).
		OrderBy("occurred_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCancellationsBySlot - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCancellationsBySlot - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.LedgerEvent, 0)
	for rows.Next() {
		var e domain.LedgerEvent
		var occurredAt sql.NullTime

		err := rows.Scan(
			&e.ID,
			&e.SlotID,
			&e.ListingID,
			&e.RenterID,
			&e.SlotDate,
			&e.Price,
			&e.EventType,
			&e.ActorID,
			&occurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCancellationsBySlot - scan row: %w", ErrScanRow, err)
		}

		e.OccurredAt = occurredAt.Time
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCancellationsBySlot - rows error: %w", ErrScanRow, err)
	}

	return events, nil
}

// HasBookingHistory проверяет, было ли у арендатора хотя бы одно
// бронирование в листингах указанного хоста
// Используется подсистемой рейтингов: оценку можно оставить только
// участнику состоявшейся сделки
func (r *Repository) HasBookingHistory(ctx context.Context, renterID, hostID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("booking_events e").
		Join("listings l ON l.id = e.listing_id").
		Where(squirrel.Eq{
			"e.renter_id":  renterID,
			"l.owner_id":   hostID,
			"e.event_type": domain.LedgerEventBooked,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasBookingHistory - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasBookingHistory - scan row: %w", ErrScanRow, err)
	}

	return true, nil
}

func (r *Repository) append(ctx context.Context, op string, event *domain.LedgerEvent) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_events").
		Columns("slot_id", "listing_id", "renter_id", "slot_date", "price", "event_type", "actor_id").
		Values(event.SlotID, event.ListingID, event.RenterID, event.SlotDate, event.Price, event.EventType, event.ActorID).
		Suffix("RETURNING id, occurred_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build insert query: %w", ErrBuildQuery, op, err)
	}

	var occurredAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&event.ID, &occurredAt); err != nil {
		return fmt.Errorf("%w: %s - execute insert: %w", ErrExecQuery, op, err)
	}

	event.OccurredAt = occurredAt.Time

	return nil
}
