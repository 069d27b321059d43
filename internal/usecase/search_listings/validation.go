package search_listings

import (
	"fmt"
	"strings"

	"github.com/m04kA/BNB-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ViewerID <= 0 {
		return fmt.Errorf("%w: viewerID must be positive", ErrInvalidInput)
	}

	if req.MinPrice != nil && *req.MinPrice < 0 {
		return fmt.Errorf("%w: minPrice must be non-negative", ErrInvalidPriceRange)
	}
	if req.MaxPrice != nil && *req.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice must be non-negative", ErrInvalidPriceRange)
	}
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return fmt.Errorf("%w: minPrice is greater than maxPrice", ErrInvalidPriceRange)
	}

	if req.SortByPrice != nil {
		switch domain.PriceSort(*req.SortByPrice) {
		case domain.PriceSortHighToLow, domain.PriceSortLowToHigh:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidSort, *req.SortByPrice)
		}
	}

	if req.DateFrom != nil && req.DateTo != nil && req.DateFrom.After(*req.DateTo) {
		return fmt.Errorf("%w: dateFrom is after dateTo", ErrInvalidDateRange)
	}

	// Префикс короче сравниваемой длины не совпадет ни с одним индексом
	if req.PostalPrefix != nil && len(strings.TrimSpace(*req.PostalPrefix)) < domain.PostalPrefixLength {
		return fmt.Errorf("%w: postal prefix must be at least %d characters",
			ErrInvalidInput, domain.PostalPrefixLength)
	}

	if err := validateGeo(req); err != nil {
		return err
	}

	return nil
}

// validateGeo проверяет гео-параметры: широта и долгота задаются только
// вместе, радиус не имеет смысла без точки
func validateGeo(req *Request) error {
	if (req.Lat == nil) != (req.Lon == nil) {
		return fmt.Errorf("%w: lat and lon must be set together", ErrInvalidGeo)
	}
	if req.Lat == nil {
		if req.RadiusKM != nil {
			return fmt.Errorf("%w: radius requires lat and lon", ErrInvalidGeo)
		}
		return nil
	}

	if *req.Lat < -90 || *req.Lat > 90 {
		return fmt.Errorf("%w: lat out of range", ErrInvalidGeo)
	}
	if *req.Lon < -180 || *req.Lon > 180 {
		return fmt.Errorf("%w: lon out of range", ErrInvalidGeo)
	}
	if req.RadiusKM != nil && *req.RadiusKM <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrInvalidGeo)
	}

	return nil
}
