package get_user_rentals

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BNB-RentalService/internal/api/handlers"
	"github.com/m04kA/BNB-RentalService/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "аренды доступны только их владельцу"
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

// Handle GET /api/v1/users/{userId}/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pathUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/rentals - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/rentals - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if pathUserID != userID {
		h.logger.Warn("GET /users/{id}/rentals - Access denied: path_user_id=%d, user_id=%d", pathUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	rentals, err := h.service.GetUserRentals(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/rentals - Failed to get rentals: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/rentals - Rentals retrieved: user_id=%d, upcoming=%d, past=%d",
		userID, len(rentals.Upcoming), len(rentals.Past))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(rentals))
}
