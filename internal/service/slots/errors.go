package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("listing not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец листинга
	ErrAccessDenied = errors.New("access denied")

	// ErrSlotExpired возвращается при попытке изменить слот с прошедшей датой
	ErrSlotExpired = errors.New("slot date is in the past")

	// ErrSlotBooked возвращается, когда операция недопустима для
	// забронированного слота (retract, set price, delete)
	ErrSlotBooked = errors.New("slot has an active booking")

	// ErrSlotRetracted возвращается, когда слот уже снят с публикации
	ErrSlotRetracted = errors.New("slot is retracted")

	// ErrConflict возвращается, когда состояние слота изменилось
	// конкурентно между проверкой и записью
	ErrConflict = errors.New("slot state changed concurrently")

	// ErrInvalidPrice возвращается при некорректной цене
	ErrInvalidPrice = errors.New("invalid rental price")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
