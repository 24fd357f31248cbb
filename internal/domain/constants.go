package domain

// Business validation constants
const (
	MaxNotesLength   = 500
	MaxAddressLength = 300
	MaxMessageLength = 2000
	MaxPhotos        = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses список терминальных статусов бронирования
// Из этих статусов не существует допустимых переходов
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ValidPaymentStatuses все допустимые статусы оплаты
var ValidPaymentStatuses = []PaymentStatus{
	PaymentUnpaid,
	PaymentPaidInApp,
	PaymentPaidOutside,
}
