package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	availabilitystorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/availability"
	providerstorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

// Service сервис самообслуживания исполнителей: расписание и статус присутствия
type Service struct {
	providers      ProviderRepository
	availabilities AvailabilityRepository
	logger         Logger
}

// NewService создает новый сервис исполнителей
func NewService(providers ProviderRepository, availabilities AvailabilityRepository, logger Logger) *Service {
	return &Service{
		providers:      providers,
		availabilities: availabilities,
		logger:         logger,
	}
}

// GetAvailability возвращает расписание исполнителя
func (s *Service) GetAvailability(ctx context.Context, providerID int64) (*models.AvailabilityResponse, error) {
	const op = "Service.GetAvailability"

	av, err := s.availabilities.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, availabilitystorage.ErrAvailabilityNotFound) {
			return nil, fmt.Errorf("%w: %s - availability not found: providerID=%d", ErrAvailabilityNotFound, op, providerID)
		}
		s.logger.Error("%s: failed to get availability: providerID=%d, err=%v", op, providerID, err)
		return nil, fmt.Errorf("%w: %s - failed to get availability: %v", ErrInternal, op, err)
	}

	return models.FromDomainAvailability(av), nil
}

// SetAvailability заменяет расписание исполнителя целиком.
// Расписание валидируется до записи: не больше одного окна на день недели,
// корректные времена, начало раньше конца.
func (s *Service) SetAvailability(ctx context.Context, providerID int64, req models.SetAvailabilityRequest) (*models.AvailabilityResponse, error) {
	const op = "Service.SetAvailability"

	if _, err := s.providers.GetByID(ctx, providerID); err != nil {
		if errors.Is(err, providerstorage.ErrProviderNotFound) {
			return nil, fmt.Errorf("%w: %s - provider not found: providerID=%d", ErrProviderNotFound, op, providerID)
		}
		s.logger.Error("%s: failed to get provider: providerID=%d, err=%v", op, providerID, err)
		return nil, fmt.Errorf("%w: %s - failed to get provider: %v", ErrInternal, op, err)
	}

	av, err := req.ToDomainAvailability(providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %v", ErrInvalidSchedule, op, err)
	}

	if err := av.Validate(); err != nil {
		s.logger.Warn("%s: schedule validation failed: providerID=%d, err=%v", op, providerID, err)
		return nil, fmt.Errorf("%w: %s - %v", ErrInvalidSchedule, op, err)
	}

	if err := s.availabilities.Upsert(ctx, av); err != nil {
		if errors.Is(err, availabilitystorage.ErrInvalidSchedule) {
			return nil, fmt.Errorf("%w: %s - %v", ErrInvalidSchedule, op, err)
		}
		s.logger.Error("%s: failed to upsert availability: providerID=%d, err=%v", op, providerID, err)
		return nil, fmt.Errorf("%w: %s - failed to upsert availability: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: availability updated: providerID=%d, slots=%d", op, providerID, len(av.WeeklySchedule))

	return models.FromDomainAvailability(av), nil
}

// UpdateStatus меняет статус присутствия исполнителя
func (s *Service) UpdateStatus(ctx context.Context, providerID int64, req models.UpdateStatusRequest) error {
	const op = "Service.UpdateStatus"

	status := domain.ProviderStatus(req.Status)
	switch status {
	case domain.ProviderActive, domain.ProviderBusy, domain.ProviderOffline:
	default:
		return fmt.Errorf("%w: %s - unknown status: status=%s", ErrInvalidStatus, op, req.Status)
	}

	if err := s.providers.UpdateStatus(ctx, providerID, status); err != nil {
		if errors.Is(err, providerstorage.ErrProviderNotFound) {
			return fmt.Errorf("%w: %s - provider not found: providerID=%d", ErrProviderNotFound, op, providerID)
		}
		s.logger.Error("%s: failed to update status: providerID=%d, err=%v", op, providerID, err)
		return fmt.Errorf("%w: %s - failed to update status: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: provider status updated: providerID=%d, status=%s", op, providerID, status)

	return nil
}
