// Package errors provides the domain error taxonomy for land audits.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates a parameter violated a declared bound
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeCalculation indicates a computation could not be performed
	TypeCalculation Type = "CALCULATION_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates a referenced record or benchmark is missing
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context.
// Code is a stable machine-readable identifier (e.g. "ZERO_LAND_SIZE");
// MessageThai carries the Thai translation surfaced in audit reports.
type Error struct {
	Type        Type                   `json:"type"`
	Code        string                 `json:"code,omitempty"`
	Message     string                 `json:"message"`
	MessageThai string                 `json:"message_thai,omitempty"`
	Cause       error                  `json:"-"`
	Context     map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	case e.Code != "":
		return fmt.Sprintf("[%s/%s] %s", e.Type, e.Code, e.Message)
	default:
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithCode sets the machine-readable code
func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

// WithThai sets the Thai-language message
func (e *Error) WithThai(msg string) *Error {
	e.MessageThai = msg
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Validation creates a validation error with a stable code
func Validation(code, message string) *Error {
	return New(TypeValidation, message).WithCode(code)
}

// Validationf creates a formatted validation error with a stable code
func Validationf(code, format string, args ...interface{}) *Error {
	return Newf(TypeValidation, format, args...).WithCode(code)
}

// NotFound creates a not found error
func NotFound(kind, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", kind, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
