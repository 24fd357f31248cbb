package send_message

// SendMessageRequest HTTP request model
type SendMessageRequest struct {
	Content string `json:"content"`
}
