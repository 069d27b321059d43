package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BNB-RentalService/internal/api/handlers"
	"github.com/m04kA/BNB-RentalService/internal/api/middleware"
	"github.com/m04kA/BNB-RentalService/internal/service/slots"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgMissingUserID = "отсутствует ID пользователя"
	msgSlotNotFound  = "слот не найден"
	msgForbidden     = "доступ запрещен"
	msgSlotBooked    = "нельзя удалить забронированный слот, сначала отмените бронирование"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /slots/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID, userID); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound), errors.Is(err, slots.ErrListingNotFound):
			h.logger.Warn("DELETE /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("DELETE /slots/{id} - Access denied: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, slots.ErrSlotBooked):
			h.logger.Warn("DELETE /slots/{id} - Slot booked: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotBooked)

		default:
			h.logger.Error("DELETE /slots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{id} - Slot deleted: slot_id=%d, user_id=%d", slotID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
