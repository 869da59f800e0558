// Package errors provides structured error types for shadowboard.
//
// Every failure that reaches a user carries a machine-readable [Code] and,
// for input validation failures, the name of the argument that was rejected
// (for example "angles", "threshold" or "blocks[2]"). This lets the CLI and
// the interactive UI surface precise messages without string matching.
//
// # Error Codes
//
//   - INVALID_*: input validation failures
//   - UNSUPPORTED: a valid request the current build cannot serve
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.InvalidInput("angles", "at least one angle is required")
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    fmt.Println(errors.Arg(err)) // "angles"
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "read %s", path)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPreset Code = "INVALID_PRESET"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Capability errors
	ErrCodeUnsupported Code = "UNSUPPORTED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code, the offending argument and an optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Arg     string // Name of the argument that failed validation (optional)
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := string(e.Code)
	if e.Arg != "" {
		prefix += ": " + e.Arg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
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

// InvalidInput creates an INVALID_INPUT error attributed to arg.
func InvalidInput(arg, format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeInvalidInput,
		Arg:     arg,
		Message: fmt.Sprintf(format, args...),
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

// Arg returns the argument name recorded on err, or "" if there is none.
func Arg(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Arg
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, qualified
// by the argument name when one is set.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Arg != "" {
			return e.Arg + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}
