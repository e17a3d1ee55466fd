package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNotConfirmed indicates that a destructive operation was declined by the user.
var ErrNotConfirmed = errors.New("operation not confirmed")

// ErrTransport indicates that the remote document store could not be reached
// or answered with a non-success status.
var ErrTransport = errors.New("remote store unavailable")

// ErrInvalidDocument indicates that decoded JSON does not have the shape of a ledger document.
var ErrInvalidDocument = errors.New("invalid ledger document")

// AppError carries an HTTP-ish status code and a user-facing message alongside the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
