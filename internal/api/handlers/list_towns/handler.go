package list_towns

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
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

// Handle GET /api/v1/towns?enabledOnly=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	enabledOnly := false
	if v := r.URL.Query().Get("enabledOnly"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err == nil {
			enabledOnly = parsed
		}
	}

	result, err := h.service.ListTowns(r.Context(), enabledOnly)
	if err != nil {
		h.logger.Error("GET /towns - Failed to list towns: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /towns - Towns retrieved successfully: count=%d", len(result.Towns))
	handlers.RespondJSON(w, http.StatusOK, result)
}
