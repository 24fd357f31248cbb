package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

var (
	// ErrInvalidDate возвращается при некорректном формате даты day-off
	ErrInvalidDate = errors.New("invalid day-off date")
)

// TimeSlotModel рабочее окно на один день недели
type TimeSlotModel struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0=воскресенье .. 6=суббота
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

// DayOffModel дата-исключение
type DayOffModel struct {
	Date   string  `json:"date"` // "2025-10-15"
	Reason *string `json:"reason,omitempty"`
}

// SetAvailabilityRequest запрос на замену расписания исполнителя
type SetAvailabilityRequest struct {
	WeeklySchedule   []TimeSlotModel `json:"weeklySchedule"`
	DayOffExceptions []DayOffModel   `json:"dayOffExceptions,omitempty"`
	Enabled          bool            `json:"enabled"`
}

// AvailabilityResponse ответ с расписанием исполнителя
type AvailabilityResponse struct {
	ProviderID       int64           `json:"providerId"`
	WeeklySchedule   []TimeSlotModel `json:"weeklySchedule"`
	DayOffExceptions []DayOffModel   `json:"dayOffExceptions,omitempty"`
	Enabled          bool            `json:"enabled"`
}

// UpdateStatusRequest запрос на смену статуса присутствия
type UpdateStatusRequest struct {
	Status string `json:"status"` // active | busy | offline
}

// ToDomainAvailability конвертирует запрос в domain модель
func (r *SetAvailabilityRequest) ToDomainAvailability(providerID int64) (*domain.ProviderAvailability, error) {
	av := &domain.ProviderAvailability{
		ProviderID:     providerID,
		Enabled:        r.Enabled,
		WeeklySchedule: make([]domain.TimeSlot, 0, len(r.WeeklySchedule)),
	}

	for _, slot := range r.WeeklySchedule {
		av.WeeklySchedule = append(av.WeeklySchedule, domain.TimeSlot{
			DayOfWeek: slot.DayOfWeek,
			StartTime: types.TimeString(slot.StartTime),
			EndTime:   types.TimeString(slot.EndTime),
		})
	}

	for _, off := range r.DayOffExceptions {
		date, err := time.Parse(domain.DateFormat, off.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		av.DayOffExceptions = append(av.DayOffExceptions, domain.DayOffException{
			Date:   date,
			Reason: off.Reason,
		})
	}

	return av, nil
}

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(av *domain.ProviderAvailability) *AvailabilityResponse {
	if av == nil {
		return nil
	}

	resp := &AvailabilityResponse{
		ProviderID:     av.ProviderID,
		Enabled:        av.Enabled,
		WeeklySchedule: make([]TimeSlotModel, 0, len(av.WeeklySchedule)),
	}

	for _, slot := range av.WeeklySchedule {
		resp.WeeklySchedule = append(resp.WeeklySchedule, TimeSlotModel{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}

	for _, off := range av.DayOffExceptions {
		resp.DayOffExceptions = append(resp.DayOffExceptions, DayOffModel{
			Date:   off.Date.Format(domain.DateFormat),
			Reason: off.Reason,
		})
	}

	return resp
}
