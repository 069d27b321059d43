package search_listings

import "time"

// Request модель запроса поиска листингов
// Все предикаты опциональны и комбинируются через логическое И;
// листинги самого искателя всегда исключаются
type Request struct {
	ViewerID int64 // ID искателя

	MinPrice *float64 // Нижняя граница цены за ночь
	MaxPrice *float64 // Верхняя граница цены за ночь

	SortByPrice *string // "high_to_low" или "low_to_high"

	PostalPrefix *string // Почтовый индекс (сравнение по префиксу)
	Address      *string // Точный адрес
	Type         *string // Тип жилья

	Amenities []string // Требуемые удобства (подмножество)

	DateFrom *time.Time // Начало окна дат (включительно)
	DateTo   *time.Time // Конец окна дат (включительно)

	Lat      *float64 // Широта точки поиска
	Lon      *float64 // Долгота точки поиска
	RadiusKM *float64 // Радиус в километрах (по умолчанию 5)
}

// ListingResult найденный листинг с представительной ценой
type ListingResult struct {
	ListingID int64
	OwnerID   int64

	Country string
	City    string
	Postal  string
	Address string

	Lat float64
	Lon float64

	Type      string
	Amenities []string

	// BestPrice минимальная цена открытого слота, прошедшего фильтры
	BestPrice float64

	// DistanceKM расстояние до точки поиска, только при гео-фильтре
	DistanceKM *float64
}

// Response модель ответа поиска
type Response struct {
	Listings []ListingResult
	Total    int
}
