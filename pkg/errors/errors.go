package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

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

// StatusCode maps the error code onto the HTTP status returned to callers.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrValidation:
		return http.StatusUnprocessableEntity
	case ErrInference, ErrBadRequest:
		return http.StatusBadRequest
	case ErrTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Common error codes
const (
	ErrBadRequest ErrorCode = iota + 1000
	ErrValidation
	ErrInference
	ErrTransport
	ErrUnexpected
	ErrInternal
)

// Error constructors
func NewBadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewValidation is returned when a patient record is rejected before it reaches the model.
func NewValidation(message string, err error) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
		Err:     err,
	}
}

// NewInference wraps any failure raised while invoking the trained model.
func NewInference(err error) *AppError {
	return &AppError{
		Code:    ErrInference,
		Message: "Prediction failed",
		Err:     err,
	}
}

// NewTransport wraps network failures, timeouts and non-2xx replies seen by a client.
func NewTransport(err error) *AppError {
	return &AppError{
		Code:    ErrTransport,
		Message: "could not reach the prediction service",
		Err:     err,
	}
}

func NewUnexpected(err error) *AppError {
	return &AppError{
		Code:    ErrUnexpected,
		Message: "an unexpected error occurred",
		Err:     err,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// Common errors
func BadRequest(message string, err error) *AppError {
	return NewBadRequest(message, err)
}

func Validation(message string, err error) *AppError {
	return NewValidation(message, err)
}

func Inference(err error) *AppError {
	return NewInference(err)
}

func Transport(err error) *AppError {
	return NewTransport(err)
}

func Unexpected(err error) *AppError {
	return NewUnexpected(err)
}

func Internal(err error) *AppError {
	return NewInternal(err)
}

// HasCode reports whether err wraps an AppError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Cause returns the error an AppError wraps, or err itself.
func Cause(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		return appErr.Err
	}
	return err
}
