package add_slots

import "time"

// Request модель запроса на добавление слотов за диапазон дат
type Request struct {
	ListingID int64     // ID листинга
	UserID    int64     // ID хоста
	DateFrom  time.Time // Первая дата диапазона (включительно)
	DateTo    time.Time // Последняя дата диапазона (включительно)
}

// NextWeekRequest модель запроса на добавление следующей недели
type NextWeekRequest struct {
	ListingID int64 // ID листинга
	UserID    int64 // ID хоста
}

// SlotView созданный слот
type SlotView struct {
	ID   int64     // ID слота
	Date time.Time // Дата слота
}

// Response модель ответа: созданные слоты и пропущенные даты
// Даты, на которые слот уже существовал, не перезаписываются
type Response struct {
	ListingID int64       // ID листинга
	Created   []SlotView  // Созданные слоты по возрастанию даты
	Skipped   []time.Time // Даты, пропущенные из-за существующего слота
}
