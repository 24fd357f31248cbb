package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-MarketplaceService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTownNotFound       = "город не найден"
	msgTownDisabled       = "город временно недоступен"
	msgCategoryNotFound   = "категория не найдена"
	msgCategoryNotInTown  = "категория недоступна в выбранном городе"
	msgSubSectionNotFound = "подраздел не найден в категории"
	msgAddonNotFound      = "дополнительная услуга не найдена в категории"
	msgInvalidDate        = "некорректная дата заказа"
	msgInvalidTime        = "некорректное время заказа"
	msgInvalidInput       = "некорректные данные заказа"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTownNotFound):
			h.logger.Warn("POST /bookings - Town not found: town_id=%d", req.TownID)
			handlers.RespondNotFound(w, msgTownNotFound)

		case errors.Is(err, createBooking.ErrTownDisabled):
			h.logger.Warn("POST /bookings - Town disabled: town_id=%d", req.TownID)
			handlers.RespondError(w, http.StatusConflict, msgTownDisabled)

		case errors.Is(err, createBooking.ErrCategoryNotFound):
			h.logger.Warn("POST /bookings - Category not found: category_id=%d", req.CategoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, createBooking.ErrCategoryNotInTown):
			h.logger.Warn("POST /bookings - Category not in town: category_id=%d, town_id=%d", req.CategoryID, req.TownID)
			handlers.RespondBadRequest(w, msgCategoryNotInTown)

		case errors.Is(err, createBooking.ErrSubSectionNotFound):
			h.logger.Warn("POST /bookings - Sub-section not found: category_id=%d", req.CategoryID)
			handlers.RespondBadRequest(w, msgSubSectionNotFound)

		case errors.Is(err, createBooking.ErrAddonNotFound):
			h.logger.Warn("POST /bookings - Addon not found: category_id=%d", req.CategoryID)
			handlers.RespondBadRequest(w, msgAddonNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTime):
			h.logger.Warn("POST /bookings - Invalid booking time: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
