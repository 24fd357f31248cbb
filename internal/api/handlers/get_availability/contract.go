package get_availability

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

type ProviderService interface {
	GetAvailability(ctx context.Context, providerID int64) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
