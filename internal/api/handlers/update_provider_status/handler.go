package update_provider_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

const (
	msgInvalidProviderID  = "некорректный ID исполнителя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgProviderNotFound   = "исполнитель не найден"
	msgInvalidStatus      = "некорректный статус"
	msgStatusUpdated      = "статус обновлен"
)

type Handler struct {
	service ProviderService
	logger  Logger
}

func NewHandler(service ProviderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/providers/{providerId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /providers/{providerId}/status - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Статус присутствия меняет только сам исполнитель
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /providers/{providerId}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != providerID {
		h.logger.Warn("PATCH /providers/{providerId}/status - Access denied: provider_id=%d, auth_user_id=%d",
			providerID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /providers/{providerId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), providerID, req); err != nil {
		switch {
		case errors.Is(err, providers.ErrProviderNotFound):
			h.logger.Warn("PATCH /providers/{providerId}/status - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, providers.ErrInvalidStatus):
			h.logger.Warn("PATCH /providers/{providerId}/status - Invalid status: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /providers/{providerId}/status - Failed to update status: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /providers/{providerId}/status - Status updated: provider_id=%d", providerID)
	handlers.RespondJSON(w, http.StatusOK, statusResponse{Message: msgStatusUpdated})
}

type statusResponse struct {
	Message string `json:"message"`
}
