package set_price

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
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPrice       = "цена должна быть неотрицательной"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotFound       = "слот не найден"
	msgForbidden          = "доступ запрещен"
	msgSlotExpired        = "дата слота уже прошла"
	msgSlotBooked         = "слот забронирован"
	msgSlotRetracted      = "слот снят с публикации"
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

// Handle PATCH /api/v1/slots/{slotId}/price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /slots/{id}/price - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /slots/{id}/price - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SetPriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{id}/price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.SetPrice(r.Context(), slotID, userID, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidPrice):
			h.logger.Warn("PATCH /slots/{id}/price - Invalid price: slot_id=%d, price=%.2f", slotID, req.Price)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, slots.ErrSlotNotFound), errors.Is(err, slots.ErrListingNotFound):
			h.logger.Warn("PATCH /slots/{id}/price - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("PATCH /slots/{id}/price - Access denied: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, slots.ErrSlotExpired):
			h.logger.Warn("PATCH /slots/{id}/price - Slot expired: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotExpired)

		case errors.Is(err, slots.ErrSlotBooked):
			h.logger.Warn("PATCH /slots/{id}/price - Slot booked: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotBooked)

		case errors.Is(err, slots.ErrSlotRetracted):
			h.logger.Warn("PATCH /slots/{id}/price - Slot retracted: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotRetracted)

		default:
			h.logger.Error("PATCH /slots/{id}/price - Failed to set price: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{id}/price - Price set: slot_id=%d, user_id=%d, price=%.2f", slotID, userID, req.Price)
	handlers.RespondJSON(w, http.StatusOK, FromServiceView(view))
}
