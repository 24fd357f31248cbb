package match_providers

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// Request модель запроса на подбор исполнителей
type Request struct {
	TownID     int64             // ID города (обязателен)
	CategoryID *int64            // ID категории (опционально)
	Date       *time.Time        // Дата желаемого слота (вместе с Time)
	Time       *types.TimeString // Время желаемого слота (вместе с Date)
}

// ProviderResult исполнитель в выдаче подбора.
// Контактные данные вырезаны: телефон не отдается покупателям.
type ProviderResult struct {
	ID          int64   // ID исполнителя
	DisplayName string  // Отображаемое имя
	Rating      float64 // Рейтинг
	ReviewCount int     // Количество отзывов
	Status      string  // Статус присутствия
	CategoryIDs []int64 // Категории исполнителя
	TownIDs     []int64 // Города исполнителя
}

// Response модель ответа с подобранными исполнителями
type Response struct {
	Providers []ProviderResult // Исполнители в стабильном порядке каталога
}

// fromDomainProvider конвертирует отредактированную domain модель в результат выдачи
func fromDomainProvider(p *domain.Provider) ProviderResult {
	return ProviderResult{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Status:      string(p.Status),
		CategoryIDs: p.CategoryIDs,
		TownIDs:     p.TownIDs,
	}
}
