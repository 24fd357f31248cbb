package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	createBooking "github.com/m04kA/SMC-MarketplaceService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CategoryID    int64    `json:"categoryId"`
	TownID        int64    `json:"townId"`
	SubSectionID  *int64   `json:"subSectionId,omitempty"`
	AddonIDs      []int64  `json:"addonIds,omitempty"`
	ScheduledDate string   `json:"scheduledDate"` // "2025-10-15"
	ScheduledTime string   `json:"scheduledTime"` // "10:00"
	Address       string   `json:"address"`
	Notes         *string  `json:"notes,omitempty"`
	Photos        []string `json:"photos,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64    `json:"id"`
	CustomerID    int64    `json:"customerId"`
	ProviderID    int64    `json:"providerId"`
	CategoryID    int64    `json:"categoryId"`
	TownID        int64    `json:"townId"`
	SubSectionID  *int64   `json:"subSectionId,omitempty"`
	AddonIDs      []int64  `json:"addonIds,omitempty"`
	ScheduledDate string   `json:"scheduledDate"`
	ScheduledTime string   `json:"scheduledTime"`
	Address       string   `json:"address"`
	Notes         *string  `json:"notes,omitempty"`
	Photos        []string `json:"photos,omitempty"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	scheduledDate, err := time.Parse(domain.DateFormat, r.ScheduledDate)
	if err != nil {
		return nil, err
	}

	scheduledTime, err := types.NewTimeStringFromString(r.ScheduledTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		CategoryID:   r.CategoryID,
		TownID:       r.TownID,
		SubSectionID: r.SubSectionID,
		AddonIDs:     r.AddonIDs,
		Date:         scheduledDate,
		StartTime:    scheduledTime,
		Address:      r.Address,
		Notes:        r.Notes,
		Photos:       r.Photos,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		ProviderID:    resp.ProviderID,
		CategoryID:    resp.CategoryID,
		TownID:        resp.TownID,
		SubSectionID:  resp.SubSectionID,
		AddonIDs:      resp.AddonIDs,
		ScheduledDate: resp.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime: resp.ScheduledTime.String(),
		Address:       resp.Address,
		Notes:         resp.Notes,
		Photos:        resp.Photos,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
