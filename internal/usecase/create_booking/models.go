package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64            // ID покупателя
	CategoryID   int64            // ID категории услуг
	TownID       int64            // ID города
	SubSectionID *int64           // ID подраздела категории (опционально)
	AddonIDs     []int64          // ID дополнительных услуг (опционально)
	Date         time.Time        // Дата оказания услуги (без времени)
	StartTime    types.TimeString // Время начала (например, "10:00")
	Address      string           // Адрес оказания услуги
	Notes        *string          // Дополнительные заметки (опционально)
	Photos       []string         // Ссылки на фотографии (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64 // ID созданного бронирования
	CustomerID int64 // ID покупателя
	ProviderID int64 // ID исполнителя (0 до назначения)
	CategoryID int64 // ID категории
	TownID     int64 // ID города

	SubSectionID *int64  // ID подраздела
	AddonIDs     []int64 // ID дополнительных услуг

	ScheduledDate time.Time        // Дата оказания услуги
	ScheduledTime types.TimeString // Время начала
	Address       string           // Адрес
	Notes         *string          // Заметки
	Photos        []string         // Фотографии

	Status        string // Статус бронирования
	PaymentStatus string // Статус оплаты

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
