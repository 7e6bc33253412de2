// Package errors provides structured error types for the Gridboard engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI shell
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - COLLISION_*/OUT_OF_BOUNDS/GRID_FULL: placement rejections
//   - INVALID_*: input validation failures
//   - *_NOT_FOUND: resource not found
//   - STORE_*/DECODE_*: persistence failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOutOfBounds, "column %d exceeds grid width", col)
//	if errors.Is(err, errors.ErrCodeOutOfBounds) {
//	    // Snap the widget back to its last valid position
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStoreWrite, origErr, "save layout %q", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Placement rejections
	ErrCodeCollision   Code = "COLLISION_REJECTED"
	ErrCodeOutOfBounds Code = "OUT_OF_BOUNDS"
	ErrCodeGridFull    Code = "GRID_FULL"

	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidSize       Code = "INVALID_SIZE"
	ErrCodeInvalidLayoutName Code = "INVALID_LAYOUT_NAME"

	// Resource not found errors
	ErrCodeWidgetNotFound Code = "WIDGET_NOT_FOUND"
	ErrCodeLayoutNotFound Code = "LAYOUT_NOT_FOUND"

	// Persistence errors
	ErrCodeDecode     Code = "DECODE_ERROR"
	ErrCodeStoreWrite Code = "STORE_WRITE_ERROR"
	ErrCodeStoreRead  Code = "STORE_READ_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsRejection reports whether err is one of the placement rejection codes:
// a collision, an out-of-bounds footprint, or a full grid. Rejections leave
// board state unchanged; callers typically answer them with UI feedback
// rather than treating them as faults.
func IsRejection(err error) bool {
	switch GetCode(err) {
	case ErrCodeCollision, ErrCodeOutOfBounds, ErrCodeGridFull:
		return true
	}
	return false
}
