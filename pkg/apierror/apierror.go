package apierror

import "net/http"

// APIError is a domain error that knows the HTTP status it maps to.
// It is created where the failure is detected and translated into the
// response envelope at the handler boundary.
type APIError struct {
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func New(message string, status int) *APIError {
	return &APIError{Message: message, HTTPStatus: status}
}

func BadRequest(message string) *APIError {
	return New(message, http.StatusBadRequest)
}

// Conflict reports a duplicate username or email. The upstream API
// surfaces these as 400, not 409.
func Conflict(message string) *APIError {
	return New(message, http.StatusBadRequest)
}

func Unauthorized(message string) *APIError {
	return New(message, http.StatusUnauthorized)
}

func NotFound(message string) *APIError {
	return New(message, http.StatusNotFound)
}
