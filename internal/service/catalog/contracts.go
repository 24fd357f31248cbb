package catalog

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// TownRepository интерфейс репозитория городов
type TownRepository interface {
	List(ctx context.Context, enabledOnly bool) ([]*domain.Town, error)
	GetByID(ctx context.Context, id int64) (*domain.Town, error)
}

// CategoryRepository интерфейс репозитория категорий услуг
type CategoryRepository interface {
	List(ctx context.Context, enabledOnly bool) ([]*domain.ServiceCategory, error)
	ListByTown(ctx context.Context, townID int64, enabledOnly bool) ([]*domain.ServiceCategory, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
