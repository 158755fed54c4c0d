package dto

// MessageResponse acknowledges a write. Result holds the new identifier on create.
type MessageResponse struct {
	Message string `json:"message"`
	Result  string `json:"result,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
