// Package errors defines the stable error code system for genelection.
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	EUnknownVariant   Code = "E_UNKNOWN_VARIANT"   // --variant names no preset
	EInvalidFixture   Code = "E_INVALID_FIXTURE"   // generated election would be rejected by the contract
	EEncodeFailed     Code = "E_ENCODE_FAILED"     // JSON encoding or stdout write failed
	EDecodeFailed     Code = "E_DECODE_FAILED"     // fixture JSON could not be read back
	EClockUnavailable Code = "E_CLOCK_UNAVAILABLE" // clock returned the zero time
)

// FixtureError is the standard error type for genelection errors.
type FixtureError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *FixtureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *FixtureError) Unwrap() error {
	return e.Cause
}

// New creates a new FixtureError with the given code and message.
func New(code Code, msg string) error {
	return &FixtureError{Code: code, Msg: msg}
}

// NewWithDetails creates a new FixtureError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &FixtureError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new FixtureError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &FixtureError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new FixtureError wrapping an underlying error with details.
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &FixtureError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a FixtureError.
func GetCode(err error) Code {
	var fe *FixtureError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

// AsFixtureError returns (*FixtureError, true) if err is or wraps a FixtureError.
func AsFixtureError(err error) (*FixtureError, bool) {
	var fe *FixtureError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE and E_UNKNOWN_VARIANT, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case EUsage, EUnknownVariant:
		return 2
	}
	return 1
}
