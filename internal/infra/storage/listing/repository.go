package listing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	"github.com/m04kA/BNB-RentalService/pkg/dbmetrics"
	"github.com/m04kA/BNB-RentalService/pkg/psqlbuilder"
)

// Repository каталог листингов
// CRUD листингов принадлежит внешнему сервису; здесь только чтение
// локации, типа, удобств и владельца для поиска и проверок прав
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория листингов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает листинг по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"country",
		"city",
		"postal",
		"address",
		"lat",
		"lon",
		"type",
		"amenities",
	).
		From("listings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var l domain.Listing
	var amenities pq.StringArray

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&l.ID,
		&l.OwnerID,
		&l.Country,
		&l.City,
		&l.Postal,
		&l.Address,
		&l.Lat,
		&l.Lon,
		&l.Type,
		&amenities,
	)
	if err == sql.ErrNoRows {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan listing: %w", ErrScanRow, err)
	}

	l.Amenities = amenities

	return &l, nil
}

// SearchCandidates выполняет реляционную часть поиска одним запросом:
// исключение собственных листингов, почтовый префикс, точный адрес, тип,
// ценовое окно и окно дат по открытым слотам с ценой. Для каждого
// кандидата возвращается минимальная подходящая цена.
//
// Гео-радиус и совпадение удобств проверяются в usecase поверх кандидатов,
// сортировка по умолчанию - по ID листинга
func (r *Repository) SearchCandidates(ctx context.Context, filter domain.ListingSearchFilter) ([]*domain.SearchCandidate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"l.id",
		"l.owner_id",
		"l.country",
		"l.city",
		"l.postal",
		"l.address",
		"l.lat",
		"l.lon",
		"l.type",
		"l.amenities",
		"MIN(bs.rental_price) AS best_price",
	).
		From("listings l").
		Join("booking_slots bs ON bs.listing_id = l.id").
		Where(squirrel.NotEq{"l.owner_id": filter.ViewerID}).
		Where(squirrel.Eq{"bs.status": domain.StatusOpen}).
		Where("bs.rental_price IS NOT NULL").
		Where(squirrel.GtOrEq{"bs.slot_date": filter.Today}).
		GroupBy("l.id").
		OrderBy("l.id ASC")

	if filter.MinPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"bs.rental_price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"bs.rental_price": *filter.MaxPrice})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"bs.slot_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"bs.slot_date": *filter.DateTo})
	}
	if filter.PostalPrefix != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("UPPER(LEFT(l.postal, ?)) = ?", domain.PostalPrefixLength, *filter.PostalPrefix),
		)
	}
	if filter.Address != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"l.address": *filter.Address})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"l.type": *filter.Type})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SearchCandidates - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchCandidates - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	candidates := make([]*domain.SearchCandidate, 0)
	for rows.Next() {
		var c domain.SearchCandidate
		var amenities pq.StringArray

		err := rows.Scan(
			&c.Listing.ID,
			&c.Listing.OwnerID,
			&c.Listing.Country,
			&c.Listing.City,
			&c.Listing.Postal,
			&c.Listing.Address,
			&c.Listing.Lat,
			&c.Listing.Lon,
			&c.Listing.Type,
			&amenities,
			&c.BestPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: SearchCandidates - scan row: %w", ErrScanRow, err)
		}

		c.Listing.Amenities = amenities
		candidates = append(candidates, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SearchCandidates - rows error: %w", ErrScanRow, err)
	}

	return candidates, nil
}
