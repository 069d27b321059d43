package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда у слота нет активного бронирования
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("listing not found")

	// ErrAccessDenied возвращается, когда отменяющий не арендатор
	// бронирования и не хост листинга
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
