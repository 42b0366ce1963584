package handler

// MessageResponse is the single-field body used for every error and
// acknowledgment the API returns.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
