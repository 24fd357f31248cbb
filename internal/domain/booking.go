package domain

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// PaymentStatus represents how (and whether) a booking was paid
type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "unpaid"
	PaymentPaidInApp   PaymentStatus = "paid_in_app"
	PaymentPaidOutside PaymentStatus = "paid_outside"
)

// ProviderUnassigned is the placeholder provider id carried by a booking
// created before matching has settled on a provider.
const ProviderUnassigned int64 = 0

// Booking represents a single requested/scheduled service engagement
type Booking struct {
	ID         int64
	CustomerID int64
	ProviderID int64 // ProviderUnassigned until matching completes
	CategoryID int64
	TownID     int64

	SubSectionID *int64
	AddonIDs     []int64

	ScheduledDate time.Time
	ScheduledTime types.TimeString
	Address       string
	Notes         *string
	Photos        []string

	Status        BookingStatus
	PaymentStatus PaymentStatus

	// TotalAmount is nil until pricing is known. ProviderAmount and
	// PlatformFee are set together on a successful in-app payment and
	// always sum to TotalAmount.
	TotalAmount    *float64
	ProviderAmount *float64
	PlatformFee    *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further status transition is legal
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// IsActive returns true if the booking has not reached a terminal state
func (b *Booking) IsActive() bool {
	return !b.IsTerminal()
}

// IsPaid returns true if payment has been recorded in any form
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentPaidInApp || b.PaymentStatus == PaymentPaidOutside
}

// HasProvider returns true once a real provider has been assigned
func (b *Booking) HasProvider() bool {
	return b.ProviderID != ProviderUnassigned
}

// IsParty returns true if the given user is the customer or the assigned
// provider of the booking
func (b *Booking) IsParty(userID int64) bool {
	return b.CustomerID == userID || (b.HasProvider() && b.ProviderID == userID)
}

// BookingsFilter фильтр для выборки истории бронирований
type BookingsFilter struct {
	CustomerID *int64
	ProviderID *int64
	Status     *BookingStatus
}
