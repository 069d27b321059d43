package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BNB-RentalService/internal/api/handlers"
	"github.com/m04kA/BNB-RentalService/internal/api/middleware"
	"github.com/m04kA/BNB-RentalService/internal/service/bookings"
)

const (
	msgInvalidSlotID   = "некорректный ID слота"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgSlotNotFound    = "слот не найден"
	msgBookingNotFound = "у слота нет активного бронирования"
	msgForbidden       = "отменить бронирование может только арендатор или хост"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/slots/{slotId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /slots/{id}/cancel - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /slots/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Cancel(r.Context(), slotID, userID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrSlotNotFound), errors.Is(err, bookings.ErrListingNotFound):
			h.logger.Warn("PATCH /slots/{id}/cancel - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /slots/{id}/cancel - No active booking: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /slots/{id}/cancel - Access denied: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /slots/{id}/cancel - Failed to cancel booking: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{id}/cancel - Booking cancelled: slot_id=%d, user_id=%d", slotID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
