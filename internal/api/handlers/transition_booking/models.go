package transition_booking

// TransitionBookingRequest HTTP request model
type TransitionBookingRequest struct {
	Action string `json:"action"` // accept | decline | start | complete | cancel
}
