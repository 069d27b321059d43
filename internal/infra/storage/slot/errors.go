package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrDuplicateSlotDate возвращается при нарушении уникальности (listing_id, slot_date)
	ErrDuplicateSlotDate = errors.New("slot.repository: slot already exists for this listing and date")

	// ErrSlotUnavailable возвращается, когда условная запись не прошла
	// (слот уже забронирован или не в состоянии open)
	ErrSlotUnavailable = errors.New("slot.repository: slot is not available")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
