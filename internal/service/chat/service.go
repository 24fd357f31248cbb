package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/chat/models"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/chatpolicy"
	bookingstorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
)

// Service сервис чата между участниками бронирования.
// Каждое сообщение проходит через политику общения: контактные данные
// и просьбы уйти из приложения блокируются до записи.
type Service struct {
	messages MessageRepository
	bookings BookingProvider
	logger   Logger
}

// NewService создает новый сервис чата
func NewService(messages MessageRepository, bookings BookingProvider, logger Logger) *Service {
	return &Service{
		messages: messages,
		bookings: bookings,
		logger:   logger,
	}
}

// Send отправляет сообщение в чат бронирования.
// Отправитель обязан быть участником сделки, текст проходит проверку
// политикой общения. Нарушение блокирует отправку целиком.
func (s *Service) Send(ctx context.Context, bookingID int64, req models.SendMessageRequest) (*models.MessageResponse, error) {
	const op = "Service.Send"

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: %s - empty message content", ErrInvalidInput, op)
	}
	if len(content) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: %s - message too long: len=%d", ErrInvalidInput, op, len(content))
	}
	if req.Role != domain.RoleCustomer && req.Role != domain.RoleProvider {
		return nil, fmt.Errorf("%w: %s - unknown role: role=%s", ErrInvalidInput, op, req.Role)
	}

	booking, err := s.getBooking(ctx, op, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.IsParty(req.UserID) {
		s.logger.Warn("%s: access denied: bookingID=%d, userID=%d", op, bookingID, req.UserID)
		return nil, fmt.Errorf("%w: %s - user is not a party to booking: userID=%d", ErrAccessDenied, op, req.UserID)
	}

	if result := chatpolicy.Classify(content); result.Violation {
		s.logger.Warn("%s: message blocked by policy: bookingID=%d, userID=%d, kind=%s", op, bookingID, req.UserID, result.Kind)
		return nil, fmt.Errorf("%w: %s - kind=%s", ErrPolicyViolation, op, result.Kind)
	}

	msg := &domain.ChatMessage{
		BookingID:  bookingID,
		SenderID:   req.UserID,
		SenderRole: req.Role,
		Content:    content,
	}

	saved, err := s.messages.Append(ctx, msg)
	if err != nil {
		s.logger.Error("%s: failed to append message: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to append message: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: message sent: bookingID=%d, messageID=%d", op, bookingID, saved.ID)

	return models.FromDomainMessage(saved), nil
}

// List возвращает все сообщения чата бронирования в порядке отправки.
// Чтение помечает входящие сообщения читателя прочитанными.
func (s *Service) List(ctx context.Context, bookingID, userID int64) (*models.MessageListResponse, error) {
	const op = "Service.List"

	booking, err := s.getBooking(ctx, op, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.IsParty(userID) {
		s.logger.Warn("%s: access denied: bookingID=%d, userID=%d", op, bookingID, userID)
		return nil, fmt.Errorf("%w: %s - user is not a party to booking: userID=%d", ErrAccessDenied, op, userID)
	}

	messages, err := s.messages.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("%s: failed to list messages: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to list messages: %v", ErrInternal, op, err)
	}

	if err := s.messages.MarkReadForRecipient(ctx, bookingID, userID); err != nil {
		// История уже получена, ошибка пометки не должна ломать чтение
		s.logger.Error("%s: failed to mark messages read: bookingID=%d, userID=%d, err=%v", op, bookingID, userID, err)
	}

	return models.FromDomainMessageList(messages), nil
}

// Check проверяет текст политикой общения без отправки.
// Используется клиентом для подсветки нарушения до сабмита.
func (s *Service) Check(req models.CheckMessageRequest) *models.CheckMessageResponse {
	result := chatpolicy.Classify(req.Content)

	return &models.CheckMessageResponse{
		Allowed:     !result.Violation,
		Kind:        string(result.Kind),
		MatchedSpan: result.MatchedSpan,
	}
}

func (s *Service) getBooking(ctx context.Context, op string, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: %s - booking not found: bookingID=%d", ErrBookingNotFound, op, bookingID)
		}
		s.logger.Error("%s: failed to get booking: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to get booking: %v", ErrInternal, op, err)
	}

	return booking, nil
}
