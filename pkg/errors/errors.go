// Package errors provides structured error types for nestgraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the graph model, importers and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The graph model itself fails with exactly four codes:
//   - NULL_ARGUMENT: a required element reference is missing
//   - INVALID_EDGE: an edge without endpoints was asked for its containment
//   - INVARIANT_VIOLATION: a parent reassignment would create a cycle
//   - UNSUPPORTED_SHAPE_KIND: an edge endpoint is neither a node nor a port
//
// The remaining codes are used by the surrounding tooling (document import,
// rendering, CLI).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNullArgument, "source cannot be nil")
//	if errors.Is(err, errors.ErrCodeNullArgument) {
//	    // Handle missing argument
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Graph model errors
	ErrCodeNullArgument         Code = "NULL_ARGUMENT"
	ErrCodeInvalidEdge          Code = "INVALID_EDGE"
	ErrCodeInvariantViolation   Code = "INVARIANT_VIOLATION"
	ErrCodeUnsupportedShapeKind Code = "UNSUPPORTED_SHAPE_KIND"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

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
