package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	categorystorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/category"
	townstorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/town"
)

type fakeTowns struct {
	towns []*domain.Town
}

func (f *fakeTowns) List(_ context.Context, enabledOnly bool) ([]*domain.Town, error) {
	var result []*domain.Town
	for _, town := range f.towns {
		if enabledOnly && !town.Enabled {
			continue
		}
		result = append(result, town)
	}
	return result, nil
}

func (f *fakeTowns) GetByID(_ context.Context, id int64) (*domain.Town, error) {
	for _, town := range f.towns {
		if town.ID == id {
			return town, nil
		}
	}
	return nil, townstorage.ErrTownNotFound
}

type fakeCategories struct {
	byTown map[int64][]*domain.ServiceCategory
}

func (f *fakeCategories) List(_ context.Context, _ bool) ([]*domain.ServiceCategory, error) {
	var result []*domain.ServiceCategory
	for _, categories := range f.byTown {
		result = append(result, categories...)
	}
	return result, nil
}

func (f *fakeCategories) ListByTown(_ context.Context, townID int64, _ bool) ([]*domain.ServiceCategory, error) {
	return f.byTown[townID], nil
}

func (f *fakeCategories) GetByID(_ context.Context, id int64) (*domain.ServiceCategory, error) {
	for _, categories := range f.byTown {
		for _, category := range categories {
			if category.ID == id {
				return category, nil
			}
		}
	}
	return nil, categorystorage.ErrCategoryNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testFixtures() (*fakeTowns, *fakeCategories) {
	towns := &fakeTowns{towns: []*domain.Town{
		{ID: 1, Name: "Riverton", Enabled: true},
		{ID: 2, Name: "Lakewood", Enabled: false},
	}}
	categories := &fakeCategories{byTown: map[int64][]*domain.ServiceCategory{
		1: {{ID: 10, Name: "Cleaning"}},
	}}
	return towns, categories
}

func TestListTowns(t *testing.T) {
	towns, categories := testFixtures()
	svc := NewService(towns, categories, false, nopLogger{})

	result, err := svc.ListTowns(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, result.Towns, 2)

	result, err = svc.ListTowns(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, result.Towns, 1)
	assert.Equal(t, "Riverton", result.Towns[0].Name)
}

func TestListTownsDisableAllToggle(t *testing.T) {
	towns, categories := testFixtures()
	svc := NewService(towns, categories, true, nopLogger{})

	// Полный список отдается, но все города выключены
	result, err := svc.ListTowns(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, result.Towns, 2)
	for _, town := range result.Towns {
		assert.False(t, town.Enabled)
	}

	// Список доступных пуст
	result, err = svc.ListTowns(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, result.Towns)
}

func TestListCategoriesByTown(t *testing.T) {
	towns, categories := testFixtures()
	svc := NewService(towns, categories, false, nopLogger{})

	result, err := svc.ListCategoriesByTown(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Cleaning", result.Categories[0].Name)

	// Город без привязок отдает пустой список
	result, err = svc.ListCategoriesByTown(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, result.Categories)

	_, err = svc.ListCategoriesByTown(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTownNotFound)
}

func TestListCategories(t *testing.T) {
	towns, categories := testFixtures()
	svc := NewService(towns, categories, false, nopLogger{})

	result, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Cleaning", result.Categories[0].Name)
}

func TestGetTown(t *testing.T) {
	towns, categories := testFixtures()
	svc := NewService(towns, categories, false, nopLogger{})

	result, err := svc.GetTown(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Riverton", result.Name)
	assert.True(t, result.Enabled)

	_, err = svc.GetTown(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTownNotFound)
}

func TestGetTownDisableAllToggle(t *testing.T) {
	towns, categories := testFixtures()
	svc := NewService(towns, categories, true, nopLogger{})

	result, err := svc.GetTown(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, result.Enabled)

	// Исходная запись не трогается
	assert.True(t, towns.towns[0].Enabled)
}

func TestGetCategory(t *testing.T) {
	towns, categories := testFixtures()
	price := 25.0
	categories.byTown[1][0].SubSections = []domain.SubSection{{ID: 100, Name: "Deep clean"}}
	categories.byTown[1][0].Addons = []domain.Addon{{ID: 200, Name: "Windows", Price: &price}}
	svc := NewService(towns, categories, false, nopLogger{})

	result, err := svc.GetCategory(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Cleaning", result.Name)
	require.Len(t, result.SubSections, 1)
	require.Len(t, result.Addons, 1)
	assert.Equal(t, 25.0, *result.Addons[0].Price)

	_, err = svc.GetCategory(context.Background(), 404)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
