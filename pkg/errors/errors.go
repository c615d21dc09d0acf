package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	ErrMalformedInput ErrorCode = iota + 1000
	ErrProcessing
	ErrNotFound
	ErrTooLarge
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
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

// StatusCode maps the error code to an HTTP status. The error
// middleware uses this to pick the response status.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrMalformedInput:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func MalformedInput(message string, err error) *AppError {
	return &AppError{
		Code:    ErrMalformedInput,
		Message: message,
		Err:     err,
	}
}

func Processing(message string, err error) *AppError {
	return &AppError{
		Code:    ErrProcessing,
		Message: message,
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}
