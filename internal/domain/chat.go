package domain

import "time"

// ChatMessage is one message in a booking's chat thread.
// Threads are keyed by booking id; there is no separate thread entity.
type ChatMessage struct {
	ID         int64
	BookingID  int64
	SenderID   int64
	SenderRole Role
	Content    string
	Read       bool

	CreatedAt time.Time
}
