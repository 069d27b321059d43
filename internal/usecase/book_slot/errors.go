package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrListingNotFound возвращается, когда листинг слота не найден
	ErrListingNotFound = errors.New("book_slot: listing not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в UserService
	ErrUserNotFound = errors.New("book_slot: user not found")

	// ErrNotRenter возвращается, когда у пользователя нет роли арендатора
	ErrNotRenter = errors.New("book_slot: user is not a renter")

	// ErrOwnListing возвращается при попытке забронировать слот своего листинга
	ErrOwnListing = errors.New("book_slot: cannot book own listing")

	// ErrSlotExpired возвращается, когда дата слота уже прошла
	ErrSlotExpired = errors.New("book_slot: slot date is in the past")

	// ErrSlotNotPriced возвращается, когда у слота не установлена цена
	ErrSlotNotPriced = errors.New("book_slot: slot has no rental price")

	// ErrSlotRetracted возвращается, когда слот снят с публикации
	ErrSlotRetracted = errors.New("book_slot: slot is retracted")

	// ErrSlotAlreadyBooked возвращается, когда слот уже забронирован
	// (в том числе конкурентным запросом)
	ErrSlotAlreadyBooked = errors.New("book_slot: slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
