// Package errors provides structured error types for the textspark application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the chart library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - MISSING_*: Required input absent
//   - INVALID_*: Input validation failures
//   - NO_*: Auto-selection found no qualifying candidate
//   - UNSUPPORTED_*: Requested feature outside the supported set
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidHeight, "chart height must be >= 1, got %d", h)
//	if errors.Is(err, errors.ErrCodeInvalidHeight) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "failed to decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Required-input errors
	ErrCodeMissingInput Code = "MISSING_INPUT"
	ErrCodeMissingType  Code = "MISSING_TYPE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidHeight Code = "INVALID_HEIGHT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeUnknownColumn Code = "UNKNOWN_COLUMN"

	// Column auto-selection errors
	ErrCodeNoNumericColumn Code = "NO_NUMERIC_COLUMN"
	ErrCodeNoLabelColumn   Code = "NO_LABEL_COLUMN"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Feature-set errors
	ErrCodeUnsupportedType Code = "UNSUPPORTED_TYPE"

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
