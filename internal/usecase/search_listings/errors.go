package search_listings

import "errors"

var (
	// ErrInvalidPriceRange возвращается, когда минимальная цена больше максимальной
	ErrInvalidPriceRange = errors.New("search_listings: invalid price range")

	// ErrInvalidDateRange возвращается, когда начало окна дат позже конца
	ErrInvalidDateRange = errors.New("search_listings: invalid date range")

	// ErrInvalidSort возвращается при неизвестном значении сортировки
	ErrInvalidSort = errors.New("search_listings: invalid sort value")

	// ErrInvalidGeo возвращается при неполных или некорректных гео-параметрах
	ErrInvalidGeo = errors.New("search_listings: invalid geo parameters")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search_listings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_listings: internal error")
)
