// Package errors provides structured error types for mazewalk.
//
// Every failure in mazewalk reflects invalid input or a broken invariant, so
// errors carry a machine-readable [Code] that callers (CLI, HTTP server) use
// to choose an exit status or response code. Nothing in the module retries on
// these errors.
//
// # Error Codes
//
//   - INVALID_*: input validation failures (dimensions, mode, format)
//   - OUT_OF_BOUNDS: a cell access outside the grid
//   - NO_PATH_FOUND, DISCONNECTED_PATH: a grid that is not a connected tree
//   - INTERNAL_ERROR, UNSUPPORTED: renderer and tooling failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDimensions, "rows must be at least 1, got %d", rows)
//	if errors.Is(err, errors.ErrCodeInvalidDimensions) {
//	    // reject the request
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidMode       Code = "INVALID_MODE"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"

	// Grid access errors
	ErrCodeOutOfBounds Code = "OUT_OF_BOUNDS"

	// Broken maze invariants
	ErrCodeNoPathFound      Code = "NO_PATH_FOUND"
	ErrCodeDisconnectedPath Code = "DISCONNECTED_PATH"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsInvalid reports whether err carries one of the INVALID_* input codes.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidDimensions, ErrCodeInvalidMode, ErrCodeInvalidFormat:
		return true
	}
	return false
}

// IsBrokenMaze reports whether err signals a grid that is not a connected
// spanning tree between entrance and exit.
func IsBrokenMaze(err error) bool {
	code := GetCode(err)
	return code == ErrCodeNoPathFound || code == ErrCodeDisconnectedPath
}
