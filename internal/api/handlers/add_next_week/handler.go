package add_next_week

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BNB-RentalService/internal/api/handlers"
	"github.com/m04kA/BNB-RentalService/internal/api/middleware"
	addSlots "github.com/m04kA/BNB-RentalService/internal/usecase/add_slots"
)

const (
	msgInvalidListingID = "некорректный ID листинга"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgListingNotFound  = "листинг не найден"
	msgUserNotFound     = "пользователь не найден"
	msgNotHost          = "пользователь не является хостом"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	useCase AddNextWeekUseCase
	logger  Logger
}

func NewHandler(useCase AddNextWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/listings/{listingId}/slots/next-week
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /listings/{id}/slots/next-week - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /listings/{id}/slots/next-week - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.ExecuteNextWeek(r.Context(), &addSlots.NextWeekRequest{
		ListingID: listingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, addSlots.ErrListingNotFound):
			h.logger.Warn("POST /listings/{id}/slots/next-week - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, addSlots.ErrUserNotFound):
			h.logger.Warn("POST /listings/{id}/slots/next-week - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, addSlots.ErrNotHost):
			h.logger.Warn("POST /listings/{id}/slots/next-week - Not a host: user_id=%d", userID)
			handlers.RespondForbidden(w, msgNotHost)

		case errors.Is(err, addSlots.ErrAccessDenied):
			h.logger.Warn("POST /listings/{id}/slots/next-week - Access denied: listing_id=%d, user_id=%d", listingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /listings/{id}/slots/next-week - Failed to add slots: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /listings/{id}/slots/next-week - Week added: listing_id=%d, created=%d, skipped=%d",
		listingID, len(result.Created), len(result.Skipped))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
