package update_provider_status

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

type ProviderService interface {
	UpdateStatus(ctx context.Context, providerID int64, req models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
