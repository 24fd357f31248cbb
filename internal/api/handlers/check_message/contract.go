package check_message

import (
	"github.com/m04kA/SMC-MarketplaceService/internal/service/chat/models"
)

type ChatService interface {
	Check(req models.CheckMessageRequest) *models.CheckMessageResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
