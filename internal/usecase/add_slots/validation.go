package add_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ListingID <= 0 {
		return fmt.Errorf("%w: listingID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.DateFrom.IsZero() {
		return fmt.Errorf("%w: dateFrom is required", ErrInvalidInput)
	}

	if req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateTo is required", ErrInvalidInput)
	}

	return nil
}
