// Package errors provides structured error types for edgebend.
//
// Errors carry a machine-readable [Code] alongside a human-readable message,
// so the CLI and library callers can branch on failure category without
// string matching:
//
//	err := errors.New(errors.ErrCodeMissingNode, "no position for node %q", id)
//	if errors.Is(err, errors.ErrCodeMissingNode) {
//	    // handle lookup failure
//	}
//
// Existing errors can be wrapped with context while preserving the chain for
// the standard library's errors.Is/As:
//
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, decodeErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure categories of curve generation.
const (
	// Option validation errors. Generation fails fast on these before any
	// per-edge work begins.
	ErrCodeInvalidDist      Code = "INVALID_DIST"
	ErrCodeInvalidPrecision Code = "INVALID_PRECISION"
	ErrCodeInvalidPolarity  Code = "INVALID_POLARITY"
	ErrCodeInvalidWorkers   Code = "INVALID_WORKERS"

	// Input validation errors.
	ErrCodeInvalidEdge  Code = "INVALID_EDGE"
	ErrCodeInvalidGraph Code = "INVALID_GRAPH"
	ErrCodeMissingNode  Code = "MISSING_NODE"

	// Configuration file errors.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Unexpected internal errors.
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

// Is reports whether err carries the given error code anywhere in its chain.
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
