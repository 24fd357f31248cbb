package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/chat/models"
	bookingstorage "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
)

type fakeMessages struct {
	messages   []*domain.ChatMessage
	nextID     int64
	markedFor  int64
	markCalled bool
}

func (f *fakeMessages) Append(_ context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	f.nextID++
	saved := *msg
	saved.ID = f.nextID
	saved.CreatedAt = time.Now()
	f.messages = append(f.messages, &saved)
	return &saved, nil
}

func (f *fakeMessages) ListByBooking(_ context.Context, bookingID int64) ([]*domain.ChatMessage, error) {
	var result []*domain.ChatMessage
	for _, m := range f.messages {
		if m.BookingID == bookingID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMessages) MarkReadForRecipient(_ context.Context, _, recipientID int64) error {
	f.markCalled = true
	f.markedFor = recipientID
	return nil
}

type fakeBookings struct {
	booking *domain.Booking
}

func (f *fakeBookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingstorage.ErrBookingNotFound
	}
	return f.booking, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testService() (*Service, *fakeMessages) {
	messages := &fakeMessages{}
	bookings := &fakeBookings{
		booking: &domain.Booking{ID: 1, CustomerID: 10, ProviderID: 20},
	}
	return NewService(messages, bookings, nopLogger{}), messages
}

func TestSendMessage(t *testing.T) {
	svc, _ := testService()

	msg, err := svc.Send(context.Background(), 1, models.SendMessageRequest{
		UserID:  10,
		Role:    domain.RoleCustomer,
		Content: "Здравствуйте! Во сколько вам удобно?",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.ID)
	assert.Equal(t, "customer", msg.SenderRole)
}

func TestSendBlockedByPolicy(t *testing.T) {
	svc, messages := testService()

	_, err := svc.Send(context.Background(), 1, models.SendMessageRequest{
		UserID:  10,
		Role:    domain.RoleCustomer,
		Content: "call me at 555-123-4567",
	})
	assert.ErrorIs(t, err, ErrPolicyViolation)
	// Нарушение блокирует запись целиком
	assert.Empty(t, messages.messages)
}

func TestSendPartyOnly(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Send(context.Background(), 1, models.SendMessageRequest{
		UserID:  99,
		Role:    domain.RoleCustomer,
		Content: "hello",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSendEmptyContent(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Send(context.Background(), 1, models.SendMessageRequest{
		UserID:  10,
		Role:    domain.RoleCustomer,
		Content: "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSendBookingNotFound(t *testing.T) {
	svc, _ := testService()

	_, err := svc.Send(context.Background(), 404, models.SendMessageRequest{
		UserID:  10,
		Role:    domain.RoleCustomer,
		Content: "hello",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListMarksRead(t *testing.T) {
	svc, messages := testService()

	_, err := svc.Send(context.Background(), 1, models.SendMessageRequest{
		UserID:  10,
		Role:    domain.RoleCustomer,
		Content: "hello",
	})
	require.NoError(t, err)

	result, err := svc.List(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Len(t, result.Messages, 1)

	// Чтение помечает входящие сообщения читателя прочитанными
	assert.True(t, messages.markCalled)
	assert.Equal(t, int64(20), messages.markedFor)
}

func TestListPartyOnly(t *testing.T) {
	svc, _ := testService()

	_, err := svc.List(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCheck(t *testing.T) {
	svc, _ := testService()

	result := svc.Check(models.CheckMessageRequest{Content: "see you tomorrow"})
	assert.True(t, result.Allowed)

	result = svc.Check(models.CheckMessageRequest{Content: "my email is a@b.com"})
	assert.False(t, result.Allowed)
	assert.Equal(t, "email", result.Kind)
	assert.Equal(t, "a@b.com", result.MatchedSpan)
}
