package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Payment methods
const (
	PaymentMethodInApp   = "in_app"
	PaymentMethodOutside = "outside"
)

// Request модели

// TransitionRequest запрос на переход статуса бронирования
type TransitionRequest struct {
	UserID int64       `json:"userId"`
	Role   domain.Role `json:"role"`
	Action string      `json:"action"`
}

// PayRequest запрос на фиксацию оплаты бронирования
type PayRequest struct {
	UserID int64       `json:"userId"`
	Role   domain.Role `json:"role"`
	Method string      `json:"method"` // in_app | outside
	Amount *float64    `json:"amount,omitempty"`
}

// GetBookingsRequest запрос истории бронирований
type GetBookingsRequest struct {
	CustomerID *int64  `json:"customerId,omitempty"`
	ProviderID *int64  `json:"providerId,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		CustomerID: r.CustomerID,
		ProviderID: r.ProviderID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customerId"`
	ProviderID int64 `json:"providerId"`
	CategoryID int64 `json:"categoryId"`
	TownID     int64 `json:"townId"`

	SubSectionID *int64  `json:"subSectionId,omitempty"`
	AddonIDs     []int64 `json:"addonIds,omitempty"`

	ScheduledDate string   `json:"scheduledDate"` // "2025-10-15"
	ScheduledTime string   `json:"scheduledTime"` // "10:00"
	Address       string   `json:"address"`
	Notes         *string  `json:"notes,omitempty"`
	Photos        []string `json:"photos,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	TotalAmount    *float64 `json:"totalAmount,omitempty"`
	ProviderAmount *float64 `json:"providerAmount,omitempty"`
	PlatformFee    *float64 `json:"platformFee,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		ProviderID:     b.ProviderID,
		CategoryID:     b.CategoryID,
		TownID:         b.TownID,
		SubSectionID:   b.SubSectionID,
		AddonIDs:       b.AddonIDs,
		ScheduledDate:  b.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:  b.ScheduledTime.String(),
		Address:        b.Address,
		Notes:          b.Notes,
		Photos:         b.Photos,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		TotalAmount:    b.TotalAmount,
		ProviderAmount: b.ProviderAmount,
		PlatformFee:    b.PlatformFee,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
