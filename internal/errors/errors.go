// Package errors provides custom error types for the budget planner API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// HasCode reports whether err is, or wraps, an AppError with the sentinel's code.
func HasCode(err error, sentinel *AppError) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == sentinel.Code
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Transaction errors.
var (
	ErrDuplicateTransaction = &AppError{Code: "DUPLICATE_TRANSACTION", Message: "A transaction with this id already exists", StatusCode: http.StatusConflict}
)

// Persistence errors. Read and write failures are reported to the user but
// never undo an in-memory mutation.
var (
	ErrPersistenceRead  = &AppError{Code: "PERSISTENCE_READ_FAILED", Message: "Saved data could not be read; starting with an empty list", StatusCode: http.StatusInternalServerError}
	ErrPersistenceWrite = &AppError{Code: "PERSISTENCE_WRITE_FAILED", Message: "Change applied but could not be saved", StatusCode: http.StatusInternalServerError}
)

// Savings goal errors.
var (
	ErrGoalsNotLoaded = &AppError{Code: "GOALS_NOT_LOADED", Message: "Savings goals are still loading", StatusCode: http.StatusConflict}
	ErrDuplicateGoal  = &AppError{Code: "DUPLICATE_GOAL", Message: "A savings goal with this id already exists", StatusCode: http.StatusConflict}
)
