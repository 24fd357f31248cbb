package get_category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/catalog"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgCategoryNotFound  = "категория не найдена"
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

// Handle GET /api/v1/categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID, err := strconv.ParseInt(vars["categoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /categories/{categoryId} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	result, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("GET /categories/{categoryId} - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("GET /categories/{categoryId} - Failed to get category: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /categories/{categoryId} - Category retrieved successfully: category_id=%d", categoryID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
