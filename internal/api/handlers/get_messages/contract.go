package get_messages

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/chat/models"
)

type ChatService interface {
	List(ctx context.Context, bookingID, userID int64) (*models.MessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
