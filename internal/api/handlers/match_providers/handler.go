package match_providers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	matchProviders "github.com/m04kA/SMC-MarketplaceService/internal/usecase/match_providers"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

const (
	msgInvalidTownID     = "некорректный ID города"
	msgInvalidCategoryID = "некорректный ID категории"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime       = "некорректный формат времени, ожидается HH:MM"
	msgInvalidCriteria   = "некорректные критерии подбора"
)

type Handler struct {
	useCase MatchProvidersUseCase
	logger  Logger
}

func NewHandler(useCase MatchProvidersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/match?townId=&categoryId=&date=&time=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	townID, err := strconv.ParseInt(query.Get("townId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/match - Invalid town ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTownID)
		return
	}

	req := &matchProviders.Request{TownID: townID}

	if categoryIDStr := query.Get("categoryId"); categoryIDStr != "" {
		categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /providers/match - Invalid category ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		req.CategoryID = &categoryID
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /providers/match - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if timeStr := query.Get("time"); timeStr != "" {
		slotTime, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			h.logger.Warn("GET /providers/match - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.Time = &slotTime
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, matchProviders.ErrInvalidInput):
			h.logger.Warn("GET /providers/match - Invalid criteria: town_id=%d, error=%v", townID, err)
			handlers.RespondBadRequest(w, msgInvalidCriteria)

		case errors.Is(err, matchProviders.ErrInvalidTime):
			h.logger.Warn("GET /providers/match - Invalid slot time: town_id=%d, error=%v", townID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /providers/match - Failed to match providers: town_id=%d, error=%v", townID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/match - Providers matched: town_id=%d, count=%d", townID, len(result.Providers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
