package match_providers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

type fakeProviderRepo struct {
	providers []*domain.Provider
}

func (f *fakeProviderRepo) List(_ context.Context) ([]*domain.Provider, error) {
	return f.providers, nil
}

type fakeAvailabilityRepo struct {
	availabilities map[int64]*domain.ProviderAvailability
	called         bool
}

func (f *fakeAvailabilityRepo) ListByProviderIDs(_ context.Context, _ []int64) (map[int64]*domain.ProviderAvailability, error) {
	f.called = true
	return f.availabilities, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testUseCase(noSellers bool) (*UseCase, *fakeAvailabilityRepo) {
	providers := &fakeProviderRepo{providers: []*domain.Provider{
		{ID: 1, DisplayName: "Alice", Phone: "+15551234567", Enabled: true, TownIDs: []int64{1}, CategoryIDs: []int64{10}},
		{ID: 2, DisplayName: "Bob", Phone: "+15557654321", Enabled: true, TownIDs: []int64{2}, CategoryIDs: []int64{10}},
	}}
	availabilities := &fakeAvailabilityRepo{availabilities: map[int64]*domain.ProviderAvailability{}}
	return NewUseCase(providers, availabilities, noSellers, nopLogger{}), availabilities
}

func TestExecuteFiltersByTown(t *testing.T) {
	uc, availabilities := testUseCase(false)

	resp, err := uc.Execute(context.Background(), &Request{TownID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Providers, 1)
	assert.Equal(t, "Alice", resp.Providers[0].DisplayName)

	// Без даты и времени расписания не запрашиваются
	assert.False(t, availabilities.called)
}

func TestExecuteNoSellersToggle(t *testing.T) {
	uc, _ := testUseCase(true)

	resp, err := uc.Execute(context.Background(), &Request{TownID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Providers)
}

func TestExecuteNoSellersToggleBeforeValidation(t *testing.T) {
	uc, _ := testUseCase(true)

	// Тогл отрабатывает раньше валидации критериев
	resp, err := uc.Execute(context.Background(), &Request{TownID: 0})
	require.NoError(t, err)
	assert.Empty(t, resp.Providers)
}

func TestExecuteSlotCheckLoadsAvailabilities(t *testing.T) {
	uc, availabilities := testUseCase(false)
	availabilities.availabilities = map[int64]*domain.ProviderAvailability{
		1: {
			ProviderID: 1,
			Enabled:    true,
			WeeklySchedule: []domain.TimeSlot{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			},
		},
	}

	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		TownID: 1,
		Date:   &monday,
		Time:   ptr.Ptr(types.TimeString("10:00")),
	})
	require.NoError(t, err)
	assert.True(t, availabilities.called)
	require.Len(t, resp.Providers, 1)
	assert.Equal(t, int64(1), resp.Providers[0].ID)
}

func TestExecuteInvalidCriteria(t *testing.T) {
	uc, _ := testUseCase(false)

	_, err := uc.Execute(context.Background(), &Request{TownID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Дата без времени
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), &Request{TownID: 1, Date: &monday})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteRedactsContacts(t *testing.T) {
	uc, _ := testUseCase(false)

	resp, err := uc.Execute(context.Background(), &Request{TownID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Providers, 1)

	// Телефон исполнителя никогда не попадает в выдачу:
	// модель результата его вообще не содержит, а редактирование
	// вычищает поле до конвертации
	assert.Equal(t, "Alice", resp.Providers[0].DisplayName)
}
