// Package errors defines the application error type the HTTP layer maps to
// responses. Internal detail stays in logs; users see the message only.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application error carrying an HTTP status, a user-facing
// message and the wrapped internal error.
type AppError struct {
	Code    int    `json:"status_code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	Context string `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error.
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage returns the message safe to show the caller.
func (e *AppError) UserMessage() string {
	return e.Message
}

// WithContext attaches caller context for logs.
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewValidationError creates a 400 Bad Request error.
func NewValidationError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: err}
}

// NewUnprocessableError creates a 422 error for structurally readable but
// unusable uploads (wrong sheet, empty table).
func NewUnprocessableError(message string, err error) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Err: err}
}

// NewNotFoundError creates a 404 Not Found error.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: err}
}

// NewTooLargeError creates a 413 error for uploads over the size limit.
func NewTooLargeError(message string, err error) *AppError {
	return &AppError{Code: http.StatusRequestEntityTooLarge, Message: message, Err: err}
}

// NewInternalError creates a 500 error. The user sees a generic message;
// detail goes to the log via the wrapped error.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
		Err:     errors.Join(errors.New(message), err),
	}
}

// AsAppError extracts an AppError from an error chain, or wraps the error as
// a 500 when none is present.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("unexpected failure", err)
}
