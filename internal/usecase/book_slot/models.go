package book_slot

import "time"

// Request модель запроса на бронирование слота
type Request struct {
	SlotID int64 // ID слота
	UserID int64 // ID арендатора
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID int64     // ID записи бронирования
	SlotID    int64     // ID слота
	ListingID int64     // ID листинга
	Date      time.Time // Дата аренды
	Price     float64   // Зафиксированная цена за ночь
	BookedAt  time.Time // Время бронирования
}
