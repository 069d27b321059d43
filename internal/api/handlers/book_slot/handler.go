package book_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BNB-RentalService/internal/api/handlers"
	"github.com/m04kA/BNB-RentalService/internal/api/middleware"
	bookSlot "github.com/m04kA/BNB-RentalService/internal/usecase/book_slot"
	"github.com/m04kA/BNB-RentalService/pkg/metrics"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgMissingUserID = "отсутствует ID пользователя"
	msgSlotNotFound  = "слот не найден"
	msgUserNotFound  = "пользователь не найден"
	msgNotRenter     = "пользователь не является арендатором"
	msgOwnListing    = "нельзя забронировать слот собственного листинга"
	msgSlotExpired   = "дата слота уже прошла"
	msgSlotNotPriced = "у слота не установлена цена"
	msgSlotRetracted = "слот снят с публикации"
	msgAlreadyBooked = "слот уже забронирован"
)

type Handler struct {
	useCase BookSlotUseCase
	metrics *metrics.Metrics
	logger  Logger
}

// NewHandler создает handler бронирования
// metricsCollector может быть nil, когда метрики выключены
func NewHandler(useCase BookSlotUseCase, metricsCollector *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metricsCollector,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/book - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /slots/{id}/book - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookSlot.Request{
		SlotID: slotID,
		UserID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /slots/{id}/book - Slot already booked: slot_id=%d, user_id=%d", slotID, userID)
			if h.metrics != nil {
				h.metrics.BookingConflictsTotal.WithLabelValues("book_slot").Inc()
			}
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, bookSlot.ErrSlotNotFound), errors.Is(err, bookSlot.ErrListingNotFound):
			h.logger.Warn("POST /slots/{id}/book - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrUserNotFound):
			h.logger.Warn("POST /slots/{id}/book - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookSlot.ErrNotRenter):
			h.logger.Warn("POST /slots/{id}/book - Not a renter: user_id=%d", userID)
			handlers.RespondForbidden(w, msgNotRenter)

		case errors.Is(err, bookSlot.ErrOwnListing):
			h.logger.Warn("POST /slots/{id}/book - Own listing: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondForbidden(w, msgOwnListing)

		case errors.Is(err, bookSlot.ErrSlotExpired):
			h.logger.Warn("POST /slots/{id}/book - Slot expired: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotExpired)

		case errors.Is(err, bookSlot.ErrSlotNotPriced):
			h.logger.Warn("POST /slots/{id}/book - Slot not priced: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotNotPriced)

		case errors.Is(err, bookSlot.ErrSlotRetracted):
			h.logger.Warn("POST /slots/{id}/book - Slot retracted: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotRetracted)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("POST /slots/{id}/book - Failed to book slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/book - Slot booked: slot_id=%d, user_id=%d, booking_id=%d",
		slotID, userID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
