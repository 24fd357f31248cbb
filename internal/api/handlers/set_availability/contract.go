package set_availability

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

type ProviderService interface {
	SetAvailability(ctx context.Context, providerID int64, req models.SetAvailabilityRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
