package model

// APIResponse wraps every successful response body.
type APIResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries an informational success message.
type MessageResponse struct {
	Message string `json:"message"`
}
