package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

var (
	// ErrInvalidSchedule returned when a weekly schedule breaks an invariant
	ErrInvalidSchedule = errors.New("invalid weekly schedule")
)

// TimeSlot is a working window on one weekday.
// DayOfWeek uses 0=Sunday..6=Saturday, matching time.Weekday.
type TimeSlot struct {
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DayOffException removes availability on one exact date
type DayOffException struct {
	Date   time.Time
	Reason *string
}

// ProviderAvailability is a provider's weekly working schedule plus
// exact-date day-off overrides. One record per provider.
type ProviderAvailability struct {
	ProviderID       int64
	WeeklySchedule   []TimeSlot
	DayOffExceptions []DayOffException
	Enabled          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotFor returns the weekly slot for the given weekday, if any
func (a *ProviderAvailability) SlotFor(day time.Weekday) (TimeSlot, bool) {
	for _, slot := range a.WeeklySchedule {
		if slot.DayOfWeek == int(day) {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// IsDayOff returns true if date matches a day-off exception exactly
// (compared by calendar date, ignoring the time component)
func (a *ProviderAvailability) IsDayOff(date time.Time) bool {
	y, m, d := date.Date()
	for _, off := range a.DayOffExceptions {
		oy, om, od := off.Date.Date()
		if y == oy && m == om && d == od {
			return true
		}
	}
	return false
}

// Validate enforces the schedule invariants: valid weekday, well-formed
// times, startTime < endTime per slot, at most one slot per weekday.
func (a *ProviderAvailability) Validate() error {
	seen := make(map[int]struct{}, len(a.WeeklySchedule))
	for _, slot := range a.WeeklySchedule {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			return fmt.Errorf("%w: dayOfWeek %d out of range 0-6", ErrInvalidSchedule, slot.DayOfWeek)
		}
		if _, dup := seen[slot.DayOfWeek]; dup {
			return fmt.Errorf("%w: duplicate slot for dayOfWeek %d", ErrInvalidSchedule, slot.DayOfWeek)
		}
		seen[slot.DayOfWeek] = struct{}{}

		if err := slot.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		if err := slot.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		if !slot.StartTime.IsBefore(slot.EndTime) {
			return fmt.Errorf("%w: startTime %s must be before endTime %s",
				ErrInvalidSchedule, slot.StartTime, slot.EndTime)
		}
	}
	return nil
}
