package list_all_categories

import (
	"net/http"

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

// Handle GET /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /categories - Failed to list categories: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /categories - Categories retrieved successfully: count=%d", len(result.Categories))
	handlers.RespondJSON(w, http.StatusOK, result)
}
