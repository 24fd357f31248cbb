package match_providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/availability"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/matching"
)

// UseCase use case подбора исполнителей под заказ
type UseCase struct {
	providerRepo       ProviderRepository
	availabilityRepo   AvailabilityRepository
	noSellersAvailable bool
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providerRepo ProviderRepository,
	availabilityRepo AvailabilityRepository,
	noSellersAvailable bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		providerRepo:       providerRepo,
		availabilityRepo:   availabilityRepo,
		noSellersAvailable: noSellersAvailable,
		logger:             logger,
	}
}

// Execute подбирает исполнителей по критериям.
// Фильтры применяются конъюнктивно, порядок каталога сохраняется.
// Каждый исполнитель в выдаче проходит редактирование контактов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MatchProviders: town=%d, category=%v, slotCheck=%t",
		req.TownID, req.CategoryID, req.Date != nil)

	// Тогл "нет продавцов" отрабатывает раньше любой другой логики,
	// включая валидацию критериев
	if uc.noSellersAvailable {
		uc.logger.Warn("MatchProviders: sellers disabled by toggle")
		return &Response{Providers: []ProviderResult{}}, nil
	}

	criteria := matching.Criteria{
		TownID:     req.TownID,
		CategoryID: req.CategoryID,
		Date:       req.Date,
		Time:       req.Time,
	}

	if err := criteria.Validate(); err != nil {
		uc.logger.Warn("MatchProviders: criteria validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	providers, err := uc.providerRepo.List(ctx)
	if err != nil {
		uc.logger.Error("MatchProviders: failed to list providers: %v", err)
		return nil, fmt.Errorf("%w: failed to list providers: %v", ErrInternal, err)
	}

	var availabilities map[int64]*domain.ProviderAvailability
	if req.Date != nil && req.Time != nil {
		ids := make([]int64, 0, len(providers))
		for _, p := range providers {
			ids = append(ids, p.ID)
		}

		availabilities, err = uc.availabilityRepo.ListByProviderIDs(ctx, ids)
		if err != nil {
			uc.logger.Error("MatchProviders: failed to list availabilities: %v", err)
			return nil, fmt.Errorf("%w: failed to list availabilities: %v", ErrInternal, err)
		}
	}

	matched, err := matching.Match(providers, availabilities, criteria)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidTime) {
			uc.logger.Warn("MatchProviders: invalid slot time: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
		uc.logger.Error("MatchProviders: matching failed: %v", err)
		return nil, fmt.Errorf("%w: matching failed: %v", ErrInternal, err)
	}

	resp := &Response{
		Providers: make([]ProviderResult, 0, len(matched)),
	}
	for _, provider := range matched {
		resp.Providers = append(resp.Providers, fromDomainProvider(provider.Redacted()))
	}

	uc.logger.Info("MatchProviders: matched %d of %d providers", len(matched), len(providers))

	return resp, nil
}
