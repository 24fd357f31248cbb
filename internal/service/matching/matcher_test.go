package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// monday 2025-10-13
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func testProviders() []*domain.Provider {
	return []*domain.Provider{
		{ID: 1, Enabled: true, TownIDs: []int64{1, 2}, CategoryIDs: []int64{10}},
		{ID: 2, Enabled: true, TownIDs: []int64{1}, CategoryIDs: []int64{10, 20}},
		{ID: 3, Enabled: false, TownIDs: []int64{1}, CategoryIDs: []int64{10}},
		{ID: 4, Enabled: true, TownIDs: []int64{2}, CategoryIDs: []int64{10}},
		{ID: 5, Enabled: true, TownIDs: []int64{1}, CategoryIDs: []int64{20}},
	}
}

func TestMatchByTown(t *testing.T) {
	matched, err := Match(testProviders(), nil, Criteria{TownID: 1})
	require.NoError(t, err)

	ids := providerIDs(matched)
	// Отключенный исполнитель 3 и исполнитель 4 из другого города отпадают
	assert.Equal(t, []int64{1, 2, 5}, ids)
}

func TestMatchByTownAndCategory(t *testing.T) {
	matched, err := Match(testProviders(), nil, Criteria{TownID: 1, CategoryID: ptr.Ptr(int64(10))})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, providerIDs(matched))
}

func TestMatchPreservesInputOrder(t *testing.T) {
	providers := testProviders()
	matched, err := Match(providers, nil, Criteria{TownID: 1})
	require.NoError(t, err)

	prev := int64(0)
	for _, p := range matched {
		assert.Greater(t, p.ID, prev)
		prev = p.ID
	}
}

func TestMatchWithSlotCheck(t *testing.T) {
	providers := []*domain.Provider{
		{ID: 1, Enabled: true, TownIDs: []int64{1}, CategoryIDs: []int64{10}},
		{ID: 2, Enabled: true, TownIDs: []int64{1}, CategoryIDs: []int64{10}},
	}

	availabilities := map[int64]*domain.ProviderAvailability{
		1: {
			ProviderID: 1,
			Enabled:    true,
			WeeklySchedule: []domain.TimeSlot{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			},
		},
		2: {
			ProviderID: 2,
			Enabled:    true,
			WeeklySchedule: []domain.TimeSlot{
				{DayOfWeek: 1, StartTime: "12:00", EndTime: "15:00"},
			},
		},
	}

	criteria := Criteria{
		TownID:     1,
		CategoryID: ptr.Ptr(int64(10)),
		Date:       &monday,
		Time:       ptr.Ptr(types.TimeString("10:00")),
	}

	matched, err := Match(providers, availabilities, criteria)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, providerIDs(matched))
}

func TestMatchMissingAvailabilityRecordExcludes(t *testing.T) {
	providers := []*domain.Provider{
		{ID: 1, Enabled: true, TownIDs: []int64{1}, CategoryIDs: []int64{10}},
	}

	criteria := Criteria{
		TownID: 1,
		Date:   &monday,
		Time:   ptr.Ptr(types.TimeString("10:00")),
	}

	// Запись расписания отсутствует - при проверке слота исполнитель отпадает
	matched, err := Match(providers, map[int64]*domain.ProviderAvailability{}, criteria)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMatchEmptyResultIsNotError(t *testing.T) {
	matched, err := Match(testProviders(), nil, Criteria{TownID: 99})
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestCriteriaValidate(t *testing.T) {
	assert.NoError(t, Criteria{TownID: 1}.Validate())

	assert.ErrorIs(t, Criteria{TownID: 0}.Validate(), ErrInvalidCriteria)

	// Дата без времени недопустима
	err := Criteria{TownID: 1, Date: &monday}.Validate()
	assert.ErrorIs(t, err, ErrInvalidCriteria)

	err = Criteria{TownID: 1, Time: ptr.Ptr(types.TimeString("10:00"))}.Validate()
	assert.ErrorIs(t, err, ErrInvalidCriteria)
}

func providerIDs(providers []*domain.Provider) []int64 {
	ids := make([]int64, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
	}
	return ids
}
