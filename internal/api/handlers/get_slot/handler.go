package get_slot

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

// Handle GET /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /slots/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	info, err := h.service.GetSlotInfo(r.Context(), slotID, userID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound), errors.Is(err, slots.ErrListingNotFound):
			h.logger.Warn("GET /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("GET /slots/{id} - Access denied: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /slots/{id} - Failed to get slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/{id} - Slot retrieved: slot_id=%d, user_id=%d", slotID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(info))
}
