// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
