package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда активное бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotAlreadyBooked возвращается при попытке создать второе активное
	// бронирование на один слот
	ErrSlotAlreadyBooked = errors.New("booking.repository: slot already has an active booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
