package dto

import "net/http"

// Error codes shared between the domain layer and the HTTP surface
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInvalidInput is used for malformed or invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeValidationFailed is used when required fields are missing
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	// ErrCodeStorageFailure is used when reading or writing a document fails
	ErrCodeStorageFailure = "STORAGE_FAILURE"
	// ErrCodeMailFailure is used when email delivery fails
	ErrCodeMailFailure = "MAIL_FAILURE"
	// ErrCodeInternal is used for unexpected internal errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeInvalidInput:     http.StatusBadRequest,
	ErrCodeValidationFailed: http.StatusBadRequest,
	ErrCodeStorageFailure:   http.StatusInternalServerError,
	ErrCodeMailFailure:      http.StatusBadGateway,
	ErrCodeInternal:         http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
