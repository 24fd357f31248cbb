package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	availabilitystorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/availability"
	providerstorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProviderRepo struct {
	providers map[int64]*domain.Provider
	statuses  map[int64]domain.ProviderStatus
}

func newFakeProviderRepo(providers ...*domain.Provider) *fakeProviderRepo {
	r := &fakeProviderRepo{
		providers: make(map[int64]*domain.Provider),
		statuses:  make(map[int64]domain.ProviderStatus),
	}
	for _, p := range providers {
		r.providers[p.ID] = p
	}
	return r
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id int64) (*domain.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, providerstorage.ErrProviderNotFound
	}
	return p, nil
}

func (r *fakeProviderRepo) UpdateStatus(_ context.Context, id int64, status domain.ProviderStatus) error {
	if _, ok := r.providers[id]; !ok {
		return providerstorage.ErrProviderNotFound
	}
	r.statuses[id] = status
	return nil
}

type fakeAvailabilityRepo struct {
	records map[int64]*domain.ProviderAvailability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{records: make(map[int64]*domain.ProviderAvailability)}
}

func (r *fakeAvailabilityRepo) GetByProviderID(_ context.Context, providerID int64) (*domain.ProviderAvailability, error) {
	av, ok := r.records[providerID]
	if !ok {
		return nil, availabilitystorage.ErrAvailabilityNotFound
	}
	return av, nil
}

func (r *fakeAvailabilityRepo) Upsert(_ context.Context, av *domain.ProviderAvailability) error {
	r.records[av.ProviderID] = av
	return nil
}

func testProvider(id int64) *domain.Provider {
	return &domain.Provider{
		ID:          id,
		DisplayName: "Мастер",
		Status:      domain.ProviderActive,
		Enabled:     true,
	}
}

func TestService_SetAvailability(t *testing.T) {
	t.Run("replaces schedule and returns it", func(t *testing.T) {
		providerRepoFake := newFakeProviderRepo(testProvider(10))
		availabilityRepoFake := newFakeAvailabilityRepo()
		svc := NewService(providerRepoFake, availabilityRepoFake, nopLogger{})

		req := models.SetAvailabilityRequest{
			WeeklySchedule: []models.TimeSlotModel{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
				{DayOfWeek: 2, StartTime: "10:00", EndTime: "18:00"},
			},
			DayOffExceptions: []models.DayOffModel{
				{Date: "2025-10-15"},
			},
			Enabled: true,
		}

		resp, err := svc.SetAvailability(context.Background(), 10, req)
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.Equal(t, int64(10), resp.ProviderID)
		assert.Len(t, resp.WeeklySchedule, 2)
		assert.Equal(t, "09:00", resp.WeeklySchedule[0].StartTime)
		assert.True(t, resp.Enabled)

		stored, ok := availabilityRepoFake.records[10]
		require.True(t, ok)
		assert.Len(t, stored.WeeklySchedule, 2)
		assert.Len(t, stored.DayOffExceptions, 1)
	})

	t.Run("unknown provider", func(t *testing.T) {
		svc := NewService(newFakeProviderRepo(), newFakeAvailabilityRepo(), nopLogger{})

		_, err := svc.SetAvailability(context.Background(), 99, models.SetAvailabilityRequest{Enabled: true})
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("reversed slot rejected before write", func(t *testing.T) {
		availabilityRepoFake := newFakeAvailabilityRepo()
		svc := NewService(newFakeProviderRepo(testProvider(10)), availabilityRepoFake, nopLogger{})

		req := models.SetAvailabilityRequest{
			WeeklySchedule: []models.TimeSlotModel{
				{DayOfWeek: 1, StartTime: "18:00", EndTime: "09:00"},
			},
			Enabled: true,
		}

		_, err := svc.SetAvailability(context.Background(), 10, req)
		assert.ErrorIs(t, err, ErrInvalidSchedule)
		assert.Empty(t, availabilityRepoFake.records)
	})

	t.Run("duplicate day of week rejected", func(t *testing.T) {
		svc := NewService(newFakeProviderRepo(testProvider(10)), newFakeAvailabilityRepo(), nopLogger{})

		req := models.SetAvailabilityRequest{
			WeeklySchedule: []models.TimeSlotModel{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
				{DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00"},
			},
			Enabled: true,
		}

		_, err := svc.SetAvailability(context.Background(), 10, req)
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("malformed day-off date rejected", func(t *testing.T) {
		svc := NewService(newFakeProviderRepo(testProvider(10)), newFakeAvailabilityRepo(), nopLogger{})

		req := models.SetAvailabilityRequest{
			DayOffExceptions: []models.DayOffModel{
				{Date: "15.10.2025"},
			},
			Enabled: true,
		}

		_, err := svc.SetAvailability(context.Background(), 10, req)
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}

func TestService_GetAvailability(t *testing.T) {
	t.Run("returns stored schedule", func(t *testing.T) {
		availabilityRepoFake := newFakeAvailabilityRepo()
		availabilityRepoFake.records[10] = &domain.ProviderAvailability{
			ProviderID: 10,
			Enabled:    true,
			WeeklySchedule: []domain.TimeSlot{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			},
		}
		svc := NewService(newFakeProviderRepo(testProvider(10)), availabilityRepoFake, nopLogger{})

		resp, err := svc.GetAvailability(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ProviderID)
		assert.Len(t, resp.WeeklySchedule, 1)
	})

	t.Run("no schedule yet", func(t *testing.T) {
		svc := NewService(newFakeProviderRepo(testProvider(10)), newFakeAvailabilityRepo(), nopLogger{})

		_, err := svc.GetAvailability(context.Background(), 10)
		assert.ErrorIs(t, err, ErrAvailabilityNotFound)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("switches status", func(t *testing.T) {
		providerRepoFake := newFakeProviderRepo(testProvider(10))
		svc := NewService(providerRepoFake, newFakeAvailabilityRepo(), nopLogger{})

		err := svc.UpdateStatus(context.Background(), 10, models.UpdateStatusRequest{Status: "busy"})
		require.NoError(t, err)
		assert.Equal(t, domain.ProviderBusy, providerRepoFake.statuses[10])
	})

	t.Run("unknown status", func(t *testing.T) {
		providerRepoFake := newFakeProviderRepo(testProvider(10))
		svc := NewService(providerRepoFake, newFakeAvailabilityRepo(), nopLogger{})

		err := svc.UpdateStatus(context.Background(), 10, models.UpdateStatusRequest{Status: "sleeping"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Empty(t, providerRepoFake.statuses)
	})

	t.Run("unknown provider", func(t *testing.T) {
		svc := NewService(newFakeProviderRepo(), newFakeAvailabilityRepo(), nopLogger{})

		err := svc.UpdateStatus(context.Background(), 99, models.UpdateStatusRequest{Status: "offline"})
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})
}
