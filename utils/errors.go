package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a business error carrying the HTTP status it maps to.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewNotFound reports that an entity id or code did not resolve.
func NewNotFound(resource string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: resource + " not found"}
}

// NewConflict reports an action not permitted in the entity's current state.
func NewConflict(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewValidation reports malformed or missing input, raised before any mutation.
func NewValidation(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewUnauthorized reports failed authentication.
func NewUnauthorized(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

// NewInsufficientStock reports a requested quantity exceeding available stock.
func NewInsufficientStock(name string, available, requested int) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("insufficient stock for %s: %d available, %d requested", name, available, requested),
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}
