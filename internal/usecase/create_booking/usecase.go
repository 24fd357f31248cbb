package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/category"
	townRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/town"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	townRepo        TownRepository
	categoryRepo    CategoryRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	disableAllTowns bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	townRepo TownRepository,
	categoryRepo CategoryRepository,
	txManager TransactionManager,
	disableAllTowns bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		townRepo:        townRepo,
		categoryRepo:    categoryRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		disableAllTowns: disableAllTowns,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Новое бронирование всегда создается без исполнителя, в статусе pending
// и без оплаты. Запись выполняется в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, category=%d, town=%d, date=%s, time=%s",
		req.UserID, req.CategoryID, req.TownID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Тогл отключения всех городов отрабатывает раньше любой другой
	// логики, включая валидацию
	if uc.disableAllTowns {
		uc.logger.Warn("CreateBooking: all towns disabled by toggle, town=%d", req.TownID)
		return nil, ErrTownDisabled
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Валидация даты относительно текущего времени
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем город
	town, err := uc.townRepo.GetByID(ctx, req.TownID)
	if err != nil {
		if errors.Is(err, townRepo.ErrTownNotFound) {
			uc.logger.Warn("CreateBooking: town id=%d not found", req.TownID)
			return nil, ErrTownNotFound
		}
		uc.logger.Error("CreateBooking: failed to get town id=%d: %v", req.TownID, err)
		return nil, fmt.Errorf("%w: failed to get town: %v", ErrInternal, err)
	}

	if !town.Enabled {
		uc.logger.Warn("CreateBooking: town id=%d is disabled", req.TownID)
		return nil, ErrTownDisabled
	}

	// 5. Проверяем категорию
	category, err := uc.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			uc.logger.Warn("CreateBooking: category id=%d not found", req.CategoryID)
			return nil, ErrCategoryNotFound
		}
		uc.logger.Error("CreateBooking: failed to get category id=%d: %v", req.CategoryID, err)
		return nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
	}

	// 6. Проверяем привязку категории к городу
	available, err := uc.categoryRepo.IsAvailableInTown(ctx, req.CategoryID, req.TownID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check category availability: category=%d, town=%d: %v",
			req.CategoryID, req.TownID, err)
		return nil, fmt.Errorf("%w: failed to check category availability: %v", ErrInternal, err)
	}
	if !available {
		uc.logger.Warn("CreateBooking: category id=%d not available in town id=%d", req.CategoryID, req.TownID)
		return nil, ErrCategoryNotInTown
	}

	// 7. Проверяем подраздел и дополнительные услуги
	if err := validateSubSection(category, req.SubSectionID); err != nil {
		uc.logger.Warn("CreateBooking: sub-section validation failed: %v", err)
		return nil, err
	}
	if err := validateAddons(category, req.AddonIDs); err != nil {
		uc.logger.Warn("CreateBooking: addon validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Создаем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking := &domain.Booking{
			CustomerID:    req.UserID,
			ProviderID:    domain.ProviderUnassigned,
			CategoryID:    req.CategoryID,
			TownID:        req.TownID,
			SubSectionID:  req.SubSectionID,
			AddonIDs:      req.AddonIDs,
			ScheduledDate: req.Date,
			ScheduledTime: req.StartTime,
			Address:       req.Address,
			Notes:         req.Notes,
			Photos:        req.Photos,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentUnpaid,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		CustomerID:    result.CustomerID,
		ProviderID:    result.ProviderID,
		CategoryID:    result.CategoryID,
		TownID:        result.TownID,
		SubSectionID:  result.SubSectionID,
		AddonIDs:      result.AddonIDs,
		ScheduledDate: result.ScheduledDate,
		ScheduledTime: result.ScheduledTime,
		Address:       result.Address,
		Notes:         result.Notes,
		Photos:        result.Photos,
		Status:        string(result.Status),
		PaymentStatus: string(result.PaymentStatus),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
