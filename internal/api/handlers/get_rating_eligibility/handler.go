package get_rating_eligibility

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BNB-RentalService/internal/api/handlers"
	"github.com/m04kA/BNB-RentalService/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidHostID = "некорректный параметр hostId"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "проверка доступна только самому пользователю"
)

// EligibilityResponse HTTP response model
type EligibilityResponse struct {
	RenterID int64 `json:"renterId"`
	HostID   int64 `json:"hostId"`
	Eligible bool  `json:"eligible"`
}

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

// Handle GET /api/v1/users/{userId}/rentals/eligibility?hostId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pathUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/rentals/eligibility - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/rentals/eligibility - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if pathUserID != userID {
		h.logger.Warn("GET /users/{id}/rentals/eligibility - Access denied: path_user_id=%d, user_id=%d",
			pathUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	hostID, err := strconv.ParseInt(r.URL.Query().Get("hostId"), 10, 64)
	if err != nil || hostID <= 0 {
		h.logger.Warn("GET /users/{id}/rentals/eligibility - Invalid host ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHostID)
		return
	}

	result, err := h.service.CheckRatingEligibility(r.Context(), userID, hostID)
	if err != nil {
		h.logger.Error("GET /users/{id}/rentals/eligibility - Failed to check eligibility: user_id=%d, host_id=%d, error=%v",
			userID, hostID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/rentals/eligibility - Eligibility checked: user_id=%d, host_id=%d, eligible=%t",
		userID, hostID, result.Eligible)
	handlers.RespondJSON(w, http.StatusOK, &EligibilityResponse{
		RenterID: result.RenterID,
		HostID:   result.HostID,
		Eligible: result.Eligible,
	})
}
