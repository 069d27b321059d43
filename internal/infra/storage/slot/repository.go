package slot

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

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

var slotColumns = []string{
	"id",
	"listing_id",
	"slot_date",
	"rental_price",
	"status",
	"renter_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами бронирования
// Таблица booking_slots: одна строка на (listing_id, slot_date), уникальность
// обеспечивается ограничением БД
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот в состоянии open без цены
// При нарушении уникальности (listing_id, slot_date) возвращает ErrDuplicateSlotDate
func (r *Repository) Create(ctx context.Context, s *domain.BookingSlot) (*domain.BookingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_slots").
		Columns("listing_id", "slot_date", "rental_price", "status", "renter_id").
		Values(s.ListingID, s.Date, s.RentalPrice, s.Status, s.RenterID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateSlotDate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает слот по ID
// Внутри транзакции строка блокируется через FOR UPDATE, что делает
// проверку состояния и последующую запись атомарными
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("booking_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %w", ErrScanRow, err)
	}

	return s, nil
}

// ListForListing получает все слоты листинга начиная с from (включительно),
// отсортированные по дате по возрастанию
func (r *Repository) ListForListing(ctx context.Context, listingID int64, from time.Time) ([]*domain.BookingSlot, error) {
	return r.list(ctx, "ListForListing", squirrel.And{
		squirrel.Eq{"listing_id": listingID},
		squirrel.GtOrEq{"slot_date": from},
	})
}

// ListPastForListing получает слоты листинга с датой раньше before,
// отсортированные по дате по возрастанию
func (r *Repository) ListPastForListing(ctx context.Context, listingID int64, before time.Time) ([]*domain.BookingSlot, error) {
	return r.list(ctx, "ListPastForListing", squirrel.And{
		squirrel.Eq{"listing_id": listingID},
		squirrel.Lt{"slot_date": before},
	})
}

// GetLatestForListing получает слот листинга с самой поздней датой
// Если у листинга нет ни одного слота, возвращает ErrSlotNotFound
func (r *Repository) GetLatestForListing(ctx context.Context, listingID int64) (*domain.BookingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("booking_slots").
		Where(squirrel.Eq{"listing_id": listingID}).
		OrderBy("slot_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestForListing - build select query: %w", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestForListing - scan slot: %w", ErrScanRow, err)
	}

	return s, nil
}

// SetPrice устанавливает цену аренды слота
func (r *Repository) SetPrice(ctx context.Context, id int64, price float64) error {
	return r.update(ctx, "SetPrice", id, psqlbuilder.Update("booking_slots").
		Set("rental_price", price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// MarkBooked атомарно переводит слот open -> booked и назначает арендатора
// Запись условная: проходит только если слот всё ещё open и с ценой;
// иначе возвращает ErrSlotUnavailable (конкурентное бронирование проиграно)
func (r *Repository) MarkBooked(ctx context.Context, id int64, renterID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_slots").
		Set("status", domain.StatusBooked).
		Set("renter_id", renterID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusOpen}).
		Where("rental_price IS NOT NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotUnavailable
	}

	return nil
}

// MarkRetracted переводит слот open -> retracted
func (r *Repository) MarkRetracted(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_slots").
		Set("status", domain.StatusRetracted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusOpen}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRetracted - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRetracted - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRetracted - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotUnavailable
	}

	return nil
}

// MarkOpen возвращает слот в состояние open после отмены бронирования
// Цена сохраняется, арендатор снимается
func (r *Repository) MarkOpen(ctx context.Context, id int64) error {
	return r.update(ctx, "MarkOpen", id, psqlbuilder.Update("booking_slots").
		Set("status", domain.StatusOpen).
		Set("renter_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// Delete физически удаляет слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, pred interface{}) ([]*domain.BookingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("booking_slots").
		Where(pred).
		OrderBy("slot_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	slots := make([]*domain.BookingSlot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return slots, nil
}

func (r *Repository) update(ctx context.Context, op string, id int64, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %w", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.BookingSlot, error) {
	var s domain.BookingSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.ListingID,
		&s.Date,
		&s.RentalPrice,
		&s.Status,
		&s.RenterID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
