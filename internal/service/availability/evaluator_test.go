package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// monday 2025-10-13
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func weekdaySchedule() *domain.ProviderAvailability {
	return &domain.ProviderAvailability{
		ProviderID: 1,
		Enabled:    true,
		WeeklySchedule: []domain.TimeSlot{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}, // Monday
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00"},
		},
	}
}

func TestIsAvailableWithinSlot(t *testing.T) {
	av := weekdaySchedule()

	open, err := IsAvailable(av, monday, types.TimeString("10:00"))
	require.NoError(t, err)
	assert.True(t, open)
}

func TestIsAvailableSlotBoundaries(t *testing.T) {
	av := weekdaySchedule()

	// Начало слота включено
	open, err := IsAvailable(av, monday, types.TimeString("09:00"))
	require.NoError(t, err)
	assert.True(t, open)

	// Последняя минута внутри интервала
	open, err = IsAvailable(av, monday, types.TimeString("16:59"))
	require.NoError(t, err)
	assert.True(t, open)

	// Конец слота исключен: интервал полуоткрытый
	open, err = IsAvailable(av, monday, types.TimeString("17:00"))
	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsAvailableNoSlotForWeekday(t *testing.T) {
	av := weekdaySchedule()
	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

	open, err := IsAvailable(av, sunday, types.TimeString("10:00"))
	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsAvailableDayOffOverridesSchedule(t *testing.T) {
	av := weekdaySchedule()
	av.DayOffExceptions = []domain.DayOffException{{Date: monday}}

	open, err := IsAvailable(av, monday, types.TimeString("10:00"))
	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsAvailableDisabledRecord(t *testing.T) {
	av := weekdaySchedule()
	av.Enabled = false

	open, err := IsAvailable(av, monday, types.TimeString("10:00"))
	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsAvailableInvalidTimeIsError(t *testing.T) {
	av := weekdaySchedule()

	// Некорректное время - ошибка, а не "недоступен"
	_, err := IsAvailable(av, monday, types.TimeString("25:99"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestIsAvailableNilRecord(t *testing.T) {
	_, err := IsAvailable(nil, monday, types.TimeString("10:00"))
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestValidateSchedule(t *testing.T) {
	av := weekdaySchedule()
	require.NoError(t, av.Validate())

	av.WeeklySchedule = append(av.WeeklySchedule, domain.TimeSlot{DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00"})
	assert.ErrorIs(t, av.Validate(), domain.ErrInvalidSchedule)

	av.WeeklySchedule = []domain.TimeSlot{{DayOfWeek: 3, StartTime: "18:00", EndTime: "09:00"}}
	assert.ErrorIs(t, av.Validate(), domain.ErrInvalidSchedule)

	av.WeeklySchedule = []domain.TimeSlot{{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}}
	assert.ErrorIs(t, av.Validate(), domain.ErrInvalidSchedule)
}
