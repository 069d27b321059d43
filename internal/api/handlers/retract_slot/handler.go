package retract_slot

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
	msgSlotExpired   = "дата слота уже прошла"
	msgSlotBooked    = "слот забронирован"
	msgSlotRetracted = "слот уже снят с публикации"
	msgConflict      = "состояние слота изменилось, повторите запрос"
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

// Handle POST /api/v1/slots/{slotId}/retract
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/retract - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /slots/{id}/retract - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Retract(r.Context(), slotID, userID); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound), errors.Is(err, slots.ErrListingNotFound):
			h.logger.Warn("POST /slots/{id}/retract - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("POST /slots/{id}/retract - Access denied: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, slots.ErrSlotExpired):
			h.logger.Warn("POST /slots/{id}/retract - Slot expired: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotExpired)

		case errors.Is(err, slots.ErrSlotBooked):
			h.logger.Warn("POST /slots/{id}/retract - Slot booked: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotBooked)

		case errors.Is(err, slots.ErrSlotRetracted):
			h.logger.Warn("POST /slots/{id}/retract - Slot already retracted: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotRetracted)

		case errors.Is(err, slots.ErrConflict):
			h.logger.Warn("POST /slots/{id}/retract - Concurrent state change: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /slots/{id}/retract - Failed to retract slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/retract - Slot retracted: slot_id=%d, user_id=%d", slotID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
