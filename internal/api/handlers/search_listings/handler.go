package search_listings

import (
	"errors"
	"net/http"

	"github.com/m04kA/BNB-RentalService/internal/api/handlers"
	"github.com/m04kA/BNB-RentalService/internal/api/middleware"
	searchListings "github.com/m04kA/BNB-RentalService/internal/usecase/search_listings"
)

const (
	msgInvalidQuery      = "некорректные параметры поиска"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidPriceRange = "некорректный диапазон цен"
	msgInvalidDateRange  = "некорректный диапазон дат"
	msgInvalidSort       = "некорректное значение сортировки"
	msgInvalidGeo        = "некорректные гео-параметры"
)

type Handler struct {
	useCase SearchListingsUseCase
	logger  Logger
}

func NewHandler(useCase SearchListingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/listings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /listings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := ParseQuery(r.URL.Query(), userID)
	if err != nil {
		h.logger.Warn("GET /listings - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, searchListings.ErrInvalidPriceRange):
			h.logger.Warn("GET /listings - Invalid price range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPriceRange)

		case errors.Is(err, searchListings.ErrInvalidDateRange):
			h.logger.Warn("GET /listings - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, searchListings.ErrInvalidSort):
			h.logger.Warn("GET /listings - Invalid sort: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSort)

		case errors.Is(err, searchListings.ErrInvalidGeo):
			h.logger.Warn("GET /listings - Invalid geo: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGeo)

		case errors.Is(err, searchListings.ErrInvalidInput):
			h.logger.Warn("GET /listings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /listings - Failed to search listings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /listings - Search completed: user_id=%d, total=%d", userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
