package get_town

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/catalog"
)

const (
	msgInvalidTownID = "некорректный ID города"
	msgTownNotFound  = "город не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/towns/{townId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	townID, err := strconv.ParseInt(vars["townId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /towns/{townId} - Invalid town ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTownID)
		return
	}

	result, err := h.service.GetTown(r.Context(), townID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrTownNotFound):
			h.logger.Warn("GET /towns/{townId} - Town not found: town_id=%d", townID)
			handlers.RespondNotFound(w, msgTownNotFound)

		default:
			h.logger.Error("GET /towns/{townId} - Failed to get town: town_id=%d, error=%v", townID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /towns/{townId} - Town retrieved successfully: town_id=%d", townID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
