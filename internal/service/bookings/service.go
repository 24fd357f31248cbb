package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/feesplit"
	storage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	repo               BookingRepository
	paymentAlwaysFails bool
	logger             Logger
}

// NewService создает новый сервис бронирований
func NewService(repo BookingRepository, paymentAlwaysFails bool, logger Logger) *Service {
	return &Service{
		repo:               repo,
		paymentAlwaysFails: paymentAlwaysFails,
		logger:             logger,
	}
}

// GetByID возвращает бронирование по ID, доступ только участникам сделки
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	const op = "Service.GetByID"

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: %s - booking not found: bookingID=%d", ErrBookingNotFound, op, bookingID)
		}
		s.logger.Error("%s: failed to get booking: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to get booking: %v", ErrInternal, op, err)
	}

	if !booking.IsParty(userID) {
		s.logger.Warn("%s: access denied: bookingID=%d, userID=%d", op, bookingID, userID)
		return nil, fmt.Errorf("%w: %s - user is not a party to booking: userID=%d", ErrAccessDenied, op, userID)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings возвращает историю бронирований покупателя
func (s *Service) GetUserBookings(ctx context.Context, customerID int64, status *string) (*models.BookingListResponse, error) {
	const op = "Service.GetUserBookings"

	req := models.GetBookingsRequest{
		CustomerID: &customerID,
		Status:     status,
	}

	return s.listBookings(ctx, op, req)
}

// GetProviderBookings возвращает входящие заказы исполнителя
func (s *Service) GetProviderBookings(ctx context.Context, providerID int64, status *string) (*models.BookingListResponse, error) {
	const op = "Service.GetProviderBookings"

	req := models.GetBookingsRequest{
		ProviderID: &providerID,
		Status:     status,
	}

	return s.listBookings(ctx, op, req)
}

func (s *Service) listBookings(ctx context.Context, op string, req models.GetBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - invalid status filter: %v", ErrInvalidInput, op, err)
	}

	bookings, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: failed to list bookings: err=%v", op, err)
		return nil, fmt.Errorf("%w: %s - failed to list bookings: %v", ErrInternal, op, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Transition выполняет переход статуса бронирования по действию участника.
// Допустимость перехода и право роли проверяются таблицей переходов домена.
func (s *Service) Transition(ctx context.Context, bookingID int64, req models.TransitionRequest) (*models.BookingResponse, error) {
	const op = "Service.Transition"

	if req.Role != domain.RoleCustomer && req.Role != domain.RoleProvider {
		return nil, fmt.Errorf("%w: %s - unknown role: role=%s", ErrInvalidInput, op, req.Role)
	}

	action := domain.Action(req.Action)
	if !domain.IsValidAction(action) {
		return nil, fmt.Errorf("%w: %s - unknown action: action=%s", ErrInvalidAction, op, req.Action)
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: %s - booking not found: bookingID=%d", ErrBookingNotFound, op, bookingID)
		}
		s.logger.Error("%s: failed to get booking: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to get booking: %v", ErrInternal, op, err)
	}

	if err := s.checkPartySide(booking, req.UserID, req.Role); err != nil {
		s.logger.Warn("%s: access denied: bookingID=%d, userID=%d, role=%s", op, bookingID, req.UserID, req.Role)
		return nil, fmt.Errorf("%w: %s", err, op)
	}

	next, allowed, permitted := domain.NextStatus(booking.Status, action, req.Role)
	if !allowed {
		return nil, fmt.Errorf("%w: %s - action not allowed from status: action=%s, status=%s", ErrInvalidTransition, op, action, booking.Status)
	}
	if !permitted {
		return nil, fmt.Errorf("%w: %s - role not permitted for action: action=%s, role=%s", ErrPermissionDenied, op, action, req.Role)
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, next); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: %s - booking not found: bookingID=%d", ErrBookingNotFound, op, bookingID)
		}
		s.logger.Error("%s: failed to update status: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to update status: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: booking transitioned: bookingID=%d, action=%s, from=%s, to=%s", op, bookingID, action, booking.Status, next)

	updated, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("%s: failed to reload booking: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to reload booking: %v", ErrInternal, op, err)
	}

	return models.FromDomainBooking(updated), nil
}

// Pay фиксирует оплату бронирования. Оплата в приложении делит сумму
// между исполнителем и платформой, оплата вне приложения комиссию не снимает.
func (s *Service) Pay(ctx context.Context, bookingID int64, req models.PayRequest) (*models.BookingResponse, error) {
	const op = "Service.Pay"

	if s.paymentAlwaysFails {
		s.logger.Warn("%s: payments disabled by toggle: bookingID=%d", op, bookingID)
		return nil, fmt.Errorf("%w: %s - payment processing unavailable", ErrPaymentFailed, op)
	}

	if req.Method != models.PaymentMethodInApp && req.Method != models.PaymentMethodOutside {
		return nil, fmt.Errorf("%w: %s - unknown payment method: method=%s", ErrInvalidInput, op, req.Method)
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: %s - booking not found: bookingID=%d", ErrBookingNotFound, op, bookingID)
		}
		s.logger.Error("%s: failed to get booking: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to get booking: %v", ErrInternal, op, err)
	}

	if !booking.IsParty(req.UserID) {
		s.logger.Warn("%s: access denied: bookingID=%d, userID=%d", op, bookingID, req.UserID)
		return nil, fmt.Errorf("%w: %s - user is not a party to booking: userID=%d", ErrAccessDenied, op, req.UserID)
	}

	if booking.IsPaid() {
		return nil, fmt.Errorf("%w: %s - booking already paid: bookingID=%d, paymentStatus=%s", ErrAlreadyPaid, op, bookingID, booking.PaymentStatus)
	}

	switch req.Method {
	case models.PaymentMethodInApp:
		if req.Amount == nil || *req.Amount <= 0 {
			return nil, fmt.Errorf("%w: %s - in-app payment requires positive amount", ErrInvalidInput, op)
		}

		split := feesplit.Calculate(*req.Amount)

		err = s.repo.UpdatePayment(ctx, bookingID, domain.PaymentPaidInApp, req.Amount, &split.ProviderAmount, &split.Fee)
	case models.PaymentMethodOutside:
		if req.Amount != nil && *req.Amount <= 0 {
			return nil, fmt.Errorf("%w: %s - amount must be positive", ErrInvalidInput, op)
		}

		err = s.repo.UpdatePayment(ctx, bookingID, domain.PaymentPaidOutside, req.Amount, nil, nil)
	}

	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: %s - booking not found: bookingID=%d", ErrBookingNotFound, op, bookingID)
		}
		s.logger.Error("%s: failed to update payment: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to update payment: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: booking paid: bookingID=%d, method=%s", op, bookingID, req.Method)

	updated, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("%s: failed to reload booking: bookingID=%d, err=%v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - failed to reload booking: %v", ErrInternal, op, err)
	}

	return models.FromDomainBooking(updated), nil
}

// checkPartySide проверяет, что пользователь действует со своей стороны сделки
func (s *Service) checkPartySide(booking *domain.Booking, userID int64, role domain.Role) error {
	switch role {
	case domain.RoleCustomer:
		if booking.CustomerID != userID {
			return ErrAccessDenied
		}
	case domain.RoleProvider:
		if !booking.HasProvider() || booking.ProviderID != userID {
			return ErrAccessDenied
		}
	}

	return nil
}
