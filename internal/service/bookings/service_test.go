package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
	storage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
)

// fakeRepo хранит бронирования в памяти для тестов сервиса
type fakeRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	repo := &fakeRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		clone := *b
		repo.bookings[b.ID] = &clone
	}
	return repo
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	clone := *booking
	return &clone, nil
}

func (r *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if filter.CustomerID != nil && b.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ProviderID != nil && b.ProviderID != *filter.ProviderID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		clone := *b
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	booking, ok := r.bookings[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

func (r *fakeRepo) UpdatePayment(_ context.Context, id int64, paymentStatus domain.PaymentStatus, totalAmount, providerAmount, platformFee *float64) error {
	booking, ok := r.bookings[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	booking.PaymentStatus = paymentStatus
	if totalAmount != nil {
		booking.TotalAmount = totalAmount
	}
	if providerAmount != nil {
		booking.ProviderAmount = providerAmount
	}
	if platformFee != nil {
		booking.PlatformFee = platformFee
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		CustomerID:    10,
		ProviderID:    20,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func TestGetByIDPartyOnly(t *testing.T) {
	svc := NewService(newFakeRepo(pendingBooking()), false, nopLogger{})

	booking, err := svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)

	_, err = svc.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 404, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestTransitionAccept(t *testing.T) {
	svc := NewService(newFakeRepo(pendingBooking()), false, nopLogger{})

	booking, err := svc.Transition(context.Background(), 1, models.TransitionRequest{
		UserID: 20,
		Role:   domain.RoleProvider,
		Action: "accept",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", booking.Status)
}

func TestTransitionRoleGating(t *testing.T) {
	svc := NewService(newFakeRepo(pendingBooking()), false, nopLogger{})

	// Покупатель не может принять заказ
	_, err := svc.Transition(context.Background(), 1, models.TransitionRequest{
		UserID: 10,
		Role:   domain.RoleCustomer,
		Action: "accept",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Но может отменить
	booking, err := svc.Transition(context.Background(), 1, models.TransitionRequest{
		UserID: 10,
		Role:   domain.RoleCustomer,
		Action: "cancel",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", booking.Status)
}

func TestTransitionInvalidFromStatus(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusCompleted
	svc := NewService(newFakeRepo(b), false, nopLogger{})

	// Из терминального статуса выхода нет
	_, err := svc.Transition(context.Background(), 1, models.TransitionRequest{
		UserID: 10,
		Role:   domain.RoleCustomer,
		Action: "cancel",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionBackwardsNotAllowed(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusInProgress
	svc := NewService(newFakeRepo(b), false, nopLogger{})

	_, err := svc.Transition(context.Background(), 1, models.TransitionRequest{
		UserID: 20,
		Role:   domain.RoleProvider,
		Action: "accept",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionUnknownAction(t *testing.T) {
	svc := NewService(newFakeRepo(pendingBooking()), false, nopLogger{})

	_, err := svc.Transition(context.Background(), 1, models.TransitionRequest{
		UserID: 20,
		Role:   domain.RoleProvider,
		Action: "approve",
	})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestTransitionWrongPartySide(t *testing.T) {
	svc := NewService(newFakeRepo(pendingBooking()), false, nopLogger{})

	// Чужой исполнитель не может управлять заказом
	_, err := svc.Transition(context.Background(), 1, models.TransitionRequest{
		UserID: 77,
		Role:   domain.RoleProvider,
		Action: "accept",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestPayInApp(t *testing.T) {
	svc := NewService(newFakeRepo(pendingBooking()), false, nopLogger{})

	booking, err := svc.Pay(context.Background(), 1, models.PayRequest{
		UserID: 10,
		Role:   domain.RoleCustomer,
		Method: models.PaymentMethodInApp,
		Amount: ptr.Ptr(100.0),
	})
	require.NoError(t, err)

	assert.Equal(t, "paid_in_app", booking.PaymentStatus)
	require.NotNil(t, booking.TotalAmount)
	require.NotNil(t, booking.PlatformFee)
	require.NotNil(t, booking.ProviderAmount)
	assert.Equal(t, 100.0, *booking.TotalAmount)
	assert.Equal(t, 10.0, *booking.PlatformFee)
	assert.Equal(t, 90.0, *booking.ProviderAmount)
}

func TestPayOutsideSkipsFee(t *testing.T) {
	svc := NewService(newFakeRepo(pendingBooking()), false, nopLogger{})

	booking, err := svc.Pay(context.Background(), 1, models.PayRequest{
		UserID: 10,
		Role:   domain.RoleCustomer,
		Method: models.PaymentMethodOutside,
	})
	require.NoError(t, err)

	assert.Equal(t, "paid_outside", booking.PaymentStatus)
	// Оплата вне приложения не делит сумму
	assert.Nil(t, booking.PlatformFee)
	assert.Nil(t, booking.ProviderAmount)
}

func TestPayAlreadyPaid(t *testing.T) {
	b := pendingBooking()
	b.PaymentStatus = domain.PaymentPaidInApp
	svc := NewService(newFakeRepo(b), false, nopLogger{})

	_, err := svc.Pay(context.Background(), 1, models.PayRequest{
		UserID: 10,
		Method: models.PaymentMethodOutside,
	})
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestPayToggleFailsBeforeAnyWork(t *testing.T) {
	repo := newFakeRepo(pendingBooking())
	svc := NewService(repo, true, nopLogger{})

	_, err := svc.Pay(context.Background(), 1, models.PayRequest{
		UserID: 10,
		Method: models.PaymentMethodInApp,
		Amount: ptr.Ptr(100.0),
	})
	assert.ErrorIs(t, err, ErrPaymentFailed)

	// Статус оплаты не изменился
	booking, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentUnpaid, booking.PaymentStatus)
}

func TestPayInAppRequiresAmount(t *testing.T) {
	svc := NewService(newFakeRepo(pendingBooking()), false, nopLogger{})

	_, err := svc.Pay(context.Background(), 1, models.PayRequest{
		UserID: 10,
		Method: models.PaymentMethodInApp,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookingsFilter(t *testing.T) {
	first := pendingBooking()
	second := pendingBooking()
	second.ID = 2
	second.Status = domain.StatusCompleted
	third := pendingBooking()
	third.ID = 3
	third.CustomerID = 99

	svc := NewService(newFakeRepo(first, second, third), false, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Len(t, result.Bookings, 2)

	result, err = svc.GetUserBookings(context.Background(), 10, ptr.Ptr("completed"))
	require.NoError(t, err)
	require.Len(t, result.Bookings, 1)
	assert.Equal(t, int64(2), result.Bookings[0].ID)

	_, err = svc.GetUserBookings(context.Background(), 10, ptr.Ptr("paused"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
