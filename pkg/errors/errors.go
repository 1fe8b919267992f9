// Package errors defines the error taxonomy for logger configuration:
// coded errors that tell the configurator whether a failure is absorbed
// (discovery/schema problems) or fatal (construction problems).
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors for quick checks.
var (
	// ErrConfigNotFound is returned when no config file exists on the
	// ancestor chain.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrKeyMissing is returned when the top-level key is absent from a
	// parsed config file.
	ErrKeyMissing = errors.New("top-level key not found")
)

// Error is the base interface for all typed errors in the system.
type Error interface {
	error
	// Code returns the error code
	Code() string
	// Message returns the human-readable error message
	Message() string
	// Unwrap returns the underlying cause
	Unwrap() error
}

// BaseError provides a foundation for all typed errors.
type BaseError struct {
	code    string
	message string
	cause   error
}

// New creates a coded error with no underlying cause.
func New(code, message string) *BaseError {
	return &BaseError{code: code, message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code, format string, args ...interface{}) *BaseError {
	return &BaseError{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code, message string) *BaseError {
	return &BaseError{code: code, message: message, cause: err}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Code returns the error code.
func (e *BaseError) Code() string {
	return e.code
}

// Message returns the error message.
func (e *BaseError) Message() string {
	return e.message
}

// Unwrap returns the underlying cause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// HandlerError represents a fatal handler construction error: a required
// field missing from a handler spec, an unopenable log file, or a malformed
// format pattern.
type HandlerError struct {
	*BaseError
	Logger string
	Index  int
	Type   string
}

// NewHandlerError creates a handler construction error for the handler at
// position index of the named logger's spec.
func NewHandlerError(logger string, index int, handlerType, message string, cause error) *HandlerError {
	return &HandlerError{
		BaseError: &BaseError{
			code:    CodeInvalidArgument,
			message: message,
			cause:   cause,
		},
		Logger: logger,
		Index:  index,
		Type:   handlerType,
	}
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	msg := fmt.Sprintf("logger %q handlers[%d] (%s): %s", e.Logger, e.Index, e.Type, e.message)
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// LevelError represents an unresolved severity: an unknown symbolic name or
// an out-of-range numeric value.
type LevelError struct {
	*BaseError
	Value interface{}
}

// NewLevelError creates a level resolution error.
func NewLevelError(value interface{}) *LevelError {
	return &LevelError{
		BaseError: &BaseError{
			code:    CodeInvalidArgument,
			message: fmt.Sprintf("unknown severity level %v", value),
		},
		Value: value,
	}
}
