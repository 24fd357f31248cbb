// Package availability решает, открыт ли исполнитель в конкретную дату и время,
// по недельному расписанию и датам-исключениям.
package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// IsAvailable проверяет доступность исполнителя в указанную дату и время.
//
// Порядок проверок:
//  1. Некорректное время - ошибка (вызывающий не должен трактовать это как "недоступен")
//  2. Выключенная запись расписания - недоступен
//  3. Дата из dayOffExceptions - недоступен независимо от недельного расписания
//  4. Нет слота на этот день недели - недоступен
//  5. Интервал слота полуоткрытый [start, end): ровно endTime уже недоступно
func IsAvailable(av *domain.ProviderAvailability, date time.Time, at types.TimeString) (bool, error) {
	atMinutes, err := at.Minutes()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	if av == nil {
		return false, ErrNoAvailability
	}

	if !av.Enabled {
		return false, nil
	}

	if av.IsDayOff(date) {
		return false, nil
	}

	slot, ok := av.SlotFor(date.Weekday())
	if !ok {
		return false, nil
	}

	startMinutes, err := slot.StartTime.Minutes()
	if err != nil {
		return false, fmt.Errorf("%w: schedule startTime: %v", ErrInvalidTime, err)
	}
	endMinutes, err := slot.EndTime.Minutes()
	if err != nil {
		return false, fmt.Errorf("%w: schedule endTime: %v", ErrInvalidTime, err)
	}

	return startMinutes <= atMinutes && atMinutes < endMinutes, nil
}

// IsAvailableNow проверяет доступность в текущий момент времени
func IsAvailableNow(av *domain.ProviderAvailability, now time.Time) (bool, error) {
	return IsAvailable(av, now, types.NewTimeString(now))
}

// IsAvailableToday проверяет доступность сегодня в указанное время
func IsAvailableToday(av *domain.ProviderAvailability, now time.Time, at types.TimeString) (bool, error) {
	return IsAvailable(av, now, at)
}
