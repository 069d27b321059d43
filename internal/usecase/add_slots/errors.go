package add_slots

import "errors"

var (
	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("add_slots: listing not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в UserService
	ErrUserNotFound = errors.New("add_slots: user not found")

	// ErrNotHost возвращается, когда у пользователя нет роли хоста
	ErrNotHost = errors.New("add_slots: user is not a host")

	// ErrAccessDenied возвращается, когда пользователь не владелец листинга
	ErrAccessDenied = errors.New("add_slots: access denied")

	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("add_slots: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_slots: internal error")
)
