// Package domainerrors defines the error-code taxonomy shared by every
// layer. Stores and services attach a code; transports translate the code
// into a status without inspecting error strings.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error for transport mapping and caller branching.
type Code string

const (
	// CodeNotFound: the record or source file does not exist. Callers treat
	// this as an absent result, not a failure.
	CodeNotFound Code = "not_found"
	// CodeValidation: a record failed schema or business-rule validation.
	CodeValidation Code = "validation"
	// CodeBadRequest: the caller supplied a malformed or incomplete request.
	CodeBadRequest Code = "bad_request"
	// CodeReadOnly: a mutation was attempted while the client facade is in
	// degraded read-only mode.
	CodeReadOnly Code = "read_only"
	// CodeUnavailable: the remote authority could not be reached.
	CodeUnavailable Code = "unavailable"
	// CodeTimeout: an operation exceeded its deadline.
	CodeTimeout Code = "timeout"
	// CodeInternal: unexpected I/O or programming failure.
	CodeInternal Code = "internal"
)

// Error carries a code plus a human-readable message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a coded error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// HasCode walks the error chain looking for a coded error with code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeReadOnly:
		return http.StatusForbidden
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
