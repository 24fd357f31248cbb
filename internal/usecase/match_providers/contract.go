package match_providers

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// ProviderRepository интерфейс репозитория исполнителей
type ProviderRepository interface {
	List(ctx context.Context) ([]*domain.Provider, error)
}

// AvailabilityRepository интерфейс репозитория расписаний исполнителей
type AvailabilityRepository interface {
	ListByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64]*domain.ProviderAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
