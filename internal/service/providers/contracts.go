package providers

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// ProviderRepository интерфейс репозитория исполнителей
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ProviderStatus) error
}

// AvailabilityRepository интерфейс репозитория расписаний
type AvailabilityRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderAvailability, error)
	Upsert(ctx context.Context, av *domain.ProviderAvailability) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
