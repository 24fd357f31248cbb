package pay_booking

// PayBookingRequest HTTP request model
type PayBookingRequest struct {
	Method string   `json:"method"` // in_app | outside
	Amount *float64 `json:"amount,omitempty"`
}
