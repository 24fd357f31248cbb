// Package matching отбирает исполнителей по городу, категории и,
// опционально, доступности в конкретную дату и время.
package matching

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/availability"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// Criteria критерии отбора исполнителей
// CategoryID опционален; Date и Time либо оба заданы (включает проверку
// расписания), либо оба nil (списочный показ без привязки к слоту)
type Criteria struct {
	TownID     int64
	CategoryID *int64
	Date       *time.Time
	Time       *types.TimeString
}

// Validate проверяет согласованность критериев
func (c Criteria) Validate() error {
	if c.TownID <= 0 {
		return fmt.Errorf("%w: townID must be positive", ErrInvalidCriteria)
	}
	if c.CategoryID != nil && *c.CategoryID <= 0 {
		return fmt.Errorf("%w: categoryID must be positive", ErrInvalidCriteria)
	}
	if (c.Date == nil) != (c.Time == nil) {
		return fmt.Errorf("%w: date and time must be supplied together", ErrInvalidCriteria)
	}
	return nil
}

// checksSlot возвращает true, когда критерии включают проверку расписания
func (c Criteria) checksSlot() bool {
	return c.Date != nil && c.Time != nil
}

// Match фильтрует исполнителей конъюнктивно, сохраняя порядок входа:
// enabled, город, категория (если задана), доступность (если заданы дата
// и время). Исполнитель без записи расписания исключается при проверке
// слота. Пустой результат - корректный исход, не ошибка.
func Match(
	providers []*domain.Provider,
	availabilities map[int64]*domain.ProviderAvailability,
	criteria Criteria,
) ([]*domain.Provider, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	matched := make([]*domain.Provider, 0, len(providers))

	for _, provider := range providers {
		if !provider.Enabled {
			continue
		}
		if !provider.ServesTown(criteria.TownID) {
			continue
		}
		if criteria.CategoryID != nil && !provider.OffersCategory(*criteria.CategoryID) {
			continue
		}

		if criteria.checksSlot() {
			av, ok := availabilities[provider.ID]
			if !ok {
				// Нет записи расписания - при проверке слота исключаем
				continue
			}
			open, err := availability.IsAvailable(av, *criteria.Date, *criteria.Time)
			if err != nil {
				return nil, err
			}
			if !open {
				continue
			}
		}

		matched = append(matched, provider)
	}

	return matched, nil
}
