package chat

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// MessageRepository интерфейс репозитория сообщений
type MessageRepository interface {
	Append(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.ChatMessage, error)
	MarkReadForRecipient(ctx context.Context, bookingID, recipientID int64) error
}

// BookingProvider интерфейс доступа к бронированиям для проверки участников
type BookingProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
