package errors

import (
	stderrors "errors"
	"net/http"
)

// Error codes
const (
	CodeAPIError   = "API_ERROR"
	CodeValidation = "VALIDATION_ERROR"
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
}

func (e *AppError) Error() string {
	return e.Message
}

// APIError is a non-success answer from the catalog service.
type APIError struct {
	*AppError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

type ValidationError struct {
	*AppError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: http.StatusBadRequest,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// AsAPIError returns the first APIError in err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether the catalog answered 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
