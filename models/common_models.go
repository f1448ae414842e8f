// models/common_models.go
package models

// ErrorResponse is the standard client-error payload.
type ErrorResponse struct {
	Error string `json:"error"` // User-facing error message
}
