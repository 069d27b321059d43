package get_schedule

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
	msgInvalidListingID = "некорректный ID листинга"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgListingNotFound  = "листинг не найден"
	msgForbidden        = "доступ запрещен"
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

// Handle GET /api/v1/listings/{listingId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/schedule - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /listings/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	schedule, err := h.service.GetSchedule(r.Context(), listingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrListingNotFound):
			h.logger.Warn("GET /listings/{id}/schedule - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("GET /listings/{id}/schedule - Access denied: listing_id=%d, user_id=%d", listingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /listings/{id}/schedule - Failed to get schedule: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /listings/{id}/schedule - Schedule retrieved: listing_id=%d, user_id=%d", listingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(schedule))
}
