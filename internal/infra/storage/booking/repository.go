package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	"github.com/m04kA/BNB-RentalService/pkg/dbmetrics"
	"github.com/m04kA/BNB-RentalService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

// Repository репозиторий активных бронирований
// Таблица bookings: одна строка на активное бронирование, slot_id уникален
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает активное бронирование
// Уникальное ограничение на slot_id гарантирует не более одного активного
// бронирования на слот даже при гонке
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("slot_id", "listing_id", "renter_id").
		Values(b.SlotID, b.ListingID, b.RenterID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetBySlotID получает активное бронирование слота
func (r *Repository) GetBySlotID(ctx context.Context, slotID int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "slot_id", "listing_id", "renter_id", "created_at").
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotID - build select query: %w", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.SlotID, &b.ListingID, &b.RenterID, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotID - scan booking: %w", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

// DeleteBySlotID удаляет активное бронирование слота
// Вызывается только при отмене; история остается в ledger
func (r *Repository) DeleteBySlotID(ctx context.Context, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteBySlotID - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBySlotID - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBySlotID - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListRentalsForRenter получает аренды пользователя, соединенные со слотами
// При pastOnly = false возвращает аренды с датой от boundary и позже,
// при pastOnly = true - раньше boundary; сортировка по дате по возрастанию
func (r *Repository) ListRentalsForRenter(ctx context.Context, renterID int64, boundary time.Time, pastOnly bool) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.slot_id",
		"b.listing_id",
		"bs.slot_date",
		"bs.rental_price",
		"b.created_at",
	).
		From("bookings b").
		Join("booking_slots bs ON bs.id = b.slot_id").
		Where(squirrel.Eq{"b.renter_id": renterID}).
		OrderBy("bs.slot_date ASC")

	if pastOnly {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"bs.slot_date": boundary})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"bs.slot_date": boundary})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRentalsForRenter - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRentalsForRenter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rentals := make([]*domain.Rental, 0)
	for rows.Next() {
		var rental domain.Rental
		var bookedAt sql.NullTime

		err := rows.Scan(
			&rental.BookingID,
			&rental.SlotID,
			&rental.ListingID,
			&rental.Date,
			&rental.Price,
			&bookedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRentalsForRenter - scan row: %w", ErrScanRow, err)
		}

		rental.BookedAt = bookedAt.Time
		rentals = append(rentals, &rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRentalsForRenter - rows error: %w", ErrScanRow, err)
	}

	return rentals, nil
}
