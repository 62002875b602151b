// Package domainerrors provides the single error taxonomy for the chrono
// domain and its transport layer.
//
// Domain and platform code classify failures with a Code at the point they
// occur; transports translate codes to wire-level responses without inspecting
// error strings. Wrap preserves the cause chain for errors.Is/errors.As.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure. Codes are stable wire values.
type Code string

const (
	// CodeInvalidInput covers every construction/parse failure in the
	// temporal domain: out-of-calendar dates, out-of-range clock fields,
	// offsets outside the legal window, and unparseable text.
	CodeInvalidInput Code = "invalid_input"

	// CodeBadRequest covers malformed transport-level requests (bad JSON,
	// missing fields) before domain validation is reached.
	CodeBadRequest Code = "bad_request"

	// CodeNotFound covers requests for resources that do not exist.
	CodeNotFound Code = "not_found"

	// CodeInternal covers unexpected failures that must not leak details
	// to callers.
	CodeInternal Code = "internal_error"
)

// Error is a coded error with an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New creates a coded error with a static message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is/errors.As traversal.
func (e *Error) Unwrap() error {
	return e.cause
}

// GetCode extracts the code from err or any wrapped error.
// Uncoded errors report CodeInternal so transports fail closed.
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// HasCode reports whether err (or any wrapped error) carries code.
func HasCode(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// Is is a readable alias for HasCode in tests and guard clauses.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}
