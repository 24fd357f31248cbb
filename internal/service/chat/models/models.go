package models

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// SendMessageRequest запрос на отправку сообщения в чат бронирования
type SendMessageRequest struct {
	UserID  int64       `json:"userId"`
	Role    domain.Role `json:"role"`
	Content string      `json:"content"`
}

// CheckMessageRequest запрос на проверку текста перед отправкой
type CheckMessageRequest struct {
	Content string `json:"content"`
}

// MessageResponse ответ с данными сообщения
type MessageResponse struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"bookingId"`
	SenderID   int64     `json:"senderId"`
	SenderRole string    `json:"senderRole"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MessageListResponse ответ со списком сообщений
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// CheckMessageResponse результат проверки текста политикой общения
type CheckMessageResponse struct {
	Allowed     bool   `json:"allowed"`
	Kind        string `json:"kind,omitempty"`
	MatchedSpan string `json:"matchedSpan,omitempty"`
}

// FromDomainMessage конвертирует domain модель в DTO
func FromDomainMessage(m *domain.ChatMessage) *MessageResponse {
	if m == nil {
		return nil
	}

	return &MessageResponse{
		ID:         m.ID,
		BookingID:  m.BookingID,
		SenderID:   m.SenderID,
		SenderRole: string(m.SenderRole),
		Content:    m.Content,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomainMessageList конвертирует список domain моделей в DTO
func FromDomainMessageList(messages []*domain.ChatMessage) *MessageListResponse {
	resp := &MessageListResponse{
		Messages: make([]MessageResponse, 0, len(messages)),
	}

	for _, msg := range messages {
		if msgResp := FromDomainMessage(msg); msgResp != nil {
			resp.Messages = append(resp.Messages, *msgResp)
		}
	}

	return resp
}
