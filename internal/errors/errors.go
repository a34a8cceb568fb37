package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    "WRAPPED",
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with formatted context
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    "WRAPPED",
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}
