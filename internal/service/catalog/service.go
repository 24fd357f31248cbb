package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	categorystorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/category"
	townstorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/town"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/catalog/models"
)

// Service сервис каталога городов и категорий услуг
type Service struct {
	towns           TownRepository
	categories      CategoryRepository
	disableAllTowns bool
	logger          Logger
}

// NewService создает новый сервис каталога
func NewService(towns TownRepository, categories CategoryRepository, disableAllTowns bool, logger Logger) *Service {
	return &Service{
		towns:           towns,
		categories:      categories,
		disableAllTowns: disableAllTowns,
		logger:          logger,
	}
}

// ListTowns возвращает список городов.
// При enabledOnly=true возвращаются только доступные города.
// Тогл disableAllTowns выключает все города разом: полный список
// отдается с enabled=false, список доступных пуст.
func (s *Service) ListTowns(ctx context.Context, enabledOnly bool) (*models.TownListResponse, error) {
	const op = "Service.ListTowns"

	if s.disableAllTowns && enabledOnly {
		s.logger.Warn("%s: all towns disabled by toggle", op)
		return &models.TownListResponse{Towns: []models.TownResponse{}}, nil
	}

	towns, err := s.towns.List(ctx, enabledOnly)
	if err != nil {
		s.logger.Error("%s: failed to list towns: err=%v", op, err)
		return nil, fmt.Errorf("%w: %s - failed to list towns: %v", ErrInternal, op, err)
	}

	if s.disableAllTowns {
		towns = disableTowns(towns)
	}

	return models.FromDomainTownList(towns), nil
}

// GetTown возвращает город по ID
func (s *Service) GetTown(ctx context.Context, townID int64) (*models.TownResponse, error) {
	const op = "Service.GetTown"

	town, err := s.towns.GetByID(ctx, townID)
	if err != nil {
		if errors.Is(err, townstorage.ErrTownNotFound) {
			return nil, fmt.Errorf("%w: %s - town not found: townID=%d", ErrTownNotFound, op, townID)
		}
		s.logger.Error("%s: failed to get town: townID=%d, err=%v", op, townID, err)
		return nil, fmt.Errorf("%w: %s - failed to get town: %v", ErrInternal, op, err)
	}

	if s.disableAllTowns {
		clone := *town
		clone.Enabled = false
		town = &clone
	}

	return models.FromDomainTown(town), nil
}

// ListCategories возвращает все доступные категории услуг
func (s *Service) ListCategories(ctx context.Context) (*models.CategoryListResponse, error) {
	const op = "Service.ListCategories"

	categories, err := s.categories.List(ctx, true)
	if err != nil {
		s.logger.Error("%s: failed to list categories: err=%v", op, err)
		return nil, fmt.Errorf("%w: %s - failed to list categories: %v", ErrInternal, op, err)
	}

	return models.FromDomainCategoryList(categories), nil
}

// ListCategoriesByTown возвращает категории услуг, доступные в городе.
// Привязка категории к городу задается явно, город без привязок
// отдает пустой список.
func (s *Service) ListCategoriesByTown(ctx context.Context, townID int64) (*models.CategoryListResponse, error) {
	const op = "Service.ListCategoriesByTown"

	if _, err := s.towns.GetByID(ctx, townID); err != nil {
		if errors.Is(err, townstorage.ErrTownNotFound) {
			return nil, fmt.Errorf("%w: %s - town not found: townID=%d", ErrTownNotFound, op, townID)
		}
		s.logger.Error("%s: failed to get town: townID=%d, err=%v", op, townID, err)
		return nil, fmt.Errorf("%w: %s - failed to get town: %v", ErrInternal, op, err)
	}

	categories, err := s.categories.ListByTown(ctx, townID, true)
	if err != nil {
		s.logger.Error("%s: failed to list categories: townID=%d, err=%v", op, townID, err)
		return nil, fmt.Errorf("%w: %s - failed to list categories: %v", ErrInternal, op, err)
	}

	return models.FromDomainCategoryList(categories), nil
}

// GetCategory возвращает категорию услуг по ID
func (s *Service) GetCategory(ctx context.Context, categoryID int64) (*models.CategoryResponse, error) {
	const op = "Service.GetCategory"

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, categorystorage.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: %s - category not found: categoryID=%d", ErrCategoryNotFound, op, categoryID)
		}
		s.logger.Error("%s: failed to get category: categoryID=%d, err=%v", op, categoryID, err)
		return nil, fmt.Errorf("%w: %s - failed to get category: %v", ErrInternal, op, err)
	}

	return models.FromDomainCategory(category), nil
}

func disableTowns(towns []*domain.Town) []*domain.Town {
	result := make([]*domain.Town, 0, len(towns))

	for _, town := range towns {
		clone := *town
		clone.Enabled = false
		result = append(result, &clone)
	}

	return result
}
