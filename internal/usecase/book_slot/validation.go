package book_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/BNB-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateSlotBookable проверяет, что слот можно забронировать:
// дата не прошла, цена установлена, слот open
func validateSlotBookable(slot *domain.BookingSlot, now time.Time) error {
	if slot.IsPast(now) {
		return ErrSlotExpired
	}

	switch slot.Status {
	case domain.StatusBooked:
		return ErrSlotAlreadyBooked
	case domain.StatusRetracted:
		return ErrSlotRetracted
	}

	if !slot.IsPriced() {
		return ErrSlotNotPriced
	}

	return nil
}
