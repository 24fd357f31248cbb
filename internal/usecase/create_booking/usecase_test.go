package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	categorystorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/category"
	townstorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/town"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	saved := *booking
	saved.ID = 1
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	f.created = &saved
	return &saved, nil
}

type fakeTownRepo struct {
	town *domain.Town
}

func (f *fakeTownRepo) GetByID(_ context.Context, id int64) (*domain.Town, error) {
	if f.town == nil || f.town.ID != id {
		return nil, townstorage.ErrTownNotFound
	}
	return f.town, nil
}

type fakeCategoryRepo struct {
	category *domain.ServiceCategory
	towns    map[int64]bool
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.ServiceCategory, error) {
	if f.category == nil || f.category.ID != id {
		return nil, categorystorage.ErrCategoryNotFound
	}
	return f.category, nil
}

func (f *fakeCategoryRepo) IsAvailableInTown(_ context.Context, _, townID int64) (bool, error) {
	return f.towns[townID], nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testUseCase(disableAllTowns bool) (*UseCase, *fakeBookingRepo) {
	bookingRepo := &fakeBookingRepo{}
	townRepo := &fakeTownRepo{town: &domain.Town{ID: 1, Enabled: true}}
	categoryRepo := &fakeCategoryRepo{
		category: &domain.ServiceCategory{
			ID:          10,
			SubSections: []domain.SubSection{{ID: 100, Name: "Deep clean"}},
			Addons:      []domain.Addon{{ID: 200, Name: "Windows"}},
		},
		towns: map[int64]bool{1: true},
	}

	uc := NewUseCase(bookingRepo, townRepo, categoryRepo, fakeTxManager{}, disableAllTowns, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return uc, bookingRepo
}

func validRequest() *Request {
	return &Request{
		UserID:     7,
		CategoryID: 10,
		TownID:     1,
		Date:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		Address:    "ул. Ленина, 1",
	}
}

func TestExecuteCreatesPendingUnpaid(t *testing.T) {
	uc, repo := testUseCase(false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Новый заказ всегда без исполнителя, в статусе pending и без оплаты
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "unpaid", resp.PaymentStatus)
	assert.Equal(t, domain.ProviderUnassigned, resp.ProviderID)
	assert.Equal(t, int64(7), resp.CustomerID)

	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.TotalAmount)
}

func TestExecuteWithSubSectionAndAddons(t *testing.T) {
	uc, _ := testUseCase(false)

	req := validRequest()
	req.SubSectionID = ptr.Ptr(int64(100))
	req.AddonIDs = []int64{200}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(100), *resp.SubSectionID)
}

func TestExecuteUnknownSubSection(t *testing.T) {
	uc, _ := testUseCase(false)

	req := validRequest()
	req.SubSectionID = ptr.Ptr(int64(999))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSubSectionNotFound)
}

func TestExecuteUnknownAddon(t *testing.T) {
	uc, _ := testUseCase(false)

	req := validRequest()
	req.AddonIDs = []int64{999}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAddonNotFound)
}

func TestExecuteTownNotFound(t *testing.T) {
	uc, _ := testUseCase(false)

	req := validRequest()
	req.TownID = 404

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTownNotFound)
}

func TestExecuteDisabledTown(t *testing.T) {
	uc, _ := testUseCase(false)
	uc.townRepo.(*fakeTownRepo).town.Enabled = false

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTownDisabled)
}

func TestExecuteDisableAllTownsToggle(t *testing.T) {
	uc, repo := testUseCase(true)

	// Тогл блокирует создание даже для включенного города
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTownDisabled)
	assert.Nil(t, repo.created)
}

func TestExecuteDisableAllTownsToggleBeforeValidation(t *testing.T) {
	uc, repo := testUseCase(true)

	// Тогл отрабатывает раньше валидации входных данных
	req := validRequest()
	req.Address = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTownDisabled)
	assert.Nil(t, repo.created)
}

func TestExecuteCategoryNotInTown(t *testing.T) {
	uc, _ := testUseCase(false)
	uc.categoryRepo.(*fakeCategoryRepo).towns = map[int64]bool{}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCategoryNotInTown)
}

func TestExecutePastDate(t *testing.T) {
	uc, _ := testUseCase(false)

	req := validRequest()
	req.Date = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc, _ := testUseCase(false)

	req := validRequest()
	req.Address = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = types.TimeString("25:00")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTime)

	req = validRequest()
	req.UserID = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
