package search_listings

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
	"github.com/m04kA/BNB-RentalService/pkg/geo"
	"github.com/m04kA/BNB-RentalService/pkg/ptr"
)

// UseCase use case поиска листингов
// Реляционные предикаты (цена, даты, индекс, адрес, тип) вычисляет
// репозиторий одним запросом; удобства и гео-радиус - пост-фильтр в Go
type UseCase struct {
	listingRepo  ListingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(listingRepo ListingRepository, logger Logger) *UseCase {
	return &UseCase{
		listingRepo:  listingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case поиска листингов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchListings: viewer=%d", req.ViewerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchListings: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем доменные критерии поиска
	criteria := buildCriteria(req)

	// 3. Реляционные кандидаты одним запросом
	today := truncateToDay(uc.timeProvider.Now())
	candidates, err := uc.listingRepo.SearchCandidates(ctx, criteria.StoreFilter(req.ViewerID, today))
	if err != nil {
		uc.logger.Error("SearchListings: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 4. Пост-фильтры: удобства и гео-радиус
	results := make([]ListingResult, 0, len(candidates))
	for _, c := range candidates {
		if !c.Listing.HasAllAmenities(criteria.Amenities) {
			continue
		}

		var distance *float64
		if criteria.Geo != nil {
			d := geo.HaversineKM(criteria.Geo.Lat, criteria.Geo.Lon, c.Listing.Lat, c.Listing.Lon)
			if d > criteria.Geo.MaxDistanceKM {
				continue
			}
			distance = ptr.Ptr(d)
		}

		results = append(results, fromCandidate(c, distance))
	}

	// 5. Сортировка по цене
	sortResults(results, criteria.SortByPrice)

	uc.logger.Info("SearchListings: viewer=%d got %d listings from %d candidates",
		req.ViewerID, len(results), len(candidates))

	return &Response{Listings: results, Total: len(results)}, nil
}

// buildCriteria собирает доменные критерии из провалидированного запроса
// Радиус без явного значения - 5 км
func buildCriteria(req *Request) *domain.SearchCriteria {
	c := &domain.SearchCriteria{
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
		SortByPrice:  domain.PriceSortNone,
		PostalPrefix: normalizedPrefix(req.PostalPrefix),
		Address:      req.Address,
		Type:         req.Type,
		Amenities:    req.Amenities,
	}

	if req.SortByPrice != nil {
		c.SortByPrice = domain.PriceSort(*req.SortByPrice)
	}

	if req.DateFrom != nil || req.DateTo != nil {
		c.Dates = &domain.DateRange{Start: req.DateFrom, End: req.DateTo}
	}

	if req.Lat != nil && req.Lon != nil {
		c.Geo = &domain.GeoRadius{
			Lat:           *req.Lat,
			Lon:           *req.Lon,
			MaxDistanceKM: domain.DefaultSearchRadiusKM,
		}
		if req.RadiusKM != nil {
			c.Geo.MaxDistanceKM = *req.RadiusKM
		}
	}

	return c
}

// normalizedPrefix приводит почтовый индекс к сравниваемому префиксу
func normalizedPrefix(postal *string) *string {
	if postal == nil {
		return nil
	}
	return ptr.Ptr(domain.NormalizePostalPrefix(*postal))
}

func fromCandidate(c *domain.SearchCandidate, distance *float64) ListingResult {
	return ListingResult{
		ListingID:  c.Listing.ID,
		OwnerID:    c.Listing.OwnerID,
		Country:    c.Listing.Country,
		City:       c.Listing.City,
		Postal:     c.Listing.Postal,
		Address:    c.Listing.Address,
		Lat:        c.Listing.Lat,
		Lon:        c.Listing.Lon,
		Type:       c.Listing.Type,
		Amenities:  c.Listing.Amenities,
		BestPrice:  c.BestPrice,
		DistanceKM: distance,
	}
}

// sortResults сортирует результаты по представительной цене
// Сортировка стабильная: при равной цене сохраняется порядок по ID
func sortResults(results []ListingResult, order domain.PriceSort) {
	switch order {
	case domain.PriceSortHighToLow:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].BestPrice > results[j].BestPrice
		})
	case domain.PriceSortLowToHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].BestPrice < results[j].BestPrice
		})
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
