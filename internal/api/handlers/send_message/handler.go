package send_message

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/chat"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/chat/models"
)

const (
	msgInvalidBookingID   = "некорректный ID заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "заказ не найден"
	msgForbidden          = "доступ запрещен"
	msgPolicyViolation    = "сообщение содержит контактные данные или просьбу продолжить общение вне приложения"
	msgInvalidMessage     = "некорректное сообщение"
)

type Handler struct {
	service ChatService
	logger  Logger
}

func NewHandler(service ChatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/messages - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/messages - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	role, _ := middleware.GetUserRole(r.Context())

	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	message, err := h.service.Send(r.Context(), bookingID, models.SendMessageRequest{
		UserID:  userID,
		Role:    role,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/messages - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, chat.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/messages - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, chat.ErrPolicyViolation):
			h.logger.Warn("POST /bookings/{id}/messages - Policy violation: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPolicyViolation)

		case errors.Is(err, chat.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/messages - Invalid message: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidMessage)

		default:
			h.logger.Error("POST /bookings/{id}/messages - Failed to send message: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/messages - Message sent: booking_id=%d, message_id=%d", bookingID, message.ID)
	handlers.RespondJSON(w, http.StatusCreated, message)
}
