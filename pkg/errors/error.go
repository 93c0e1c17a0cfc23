// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Invalid parameters, configuration, versions
//   - Data/Resource errors (200-299): Candle sources that are missing or fail to query
//   - Indicator errors (300-399): Catalog lookup, duplicate entries, failed computations
//   - Output errors (700-799): Result writers and input decoding
//
// Indicators themselves never return errors: insufficient history is encoded as
// None in the output series. Errors are reserved for configuration, I/O and
// programming defects surfaced by the runner.
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidParameter, "invalid parameter value")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator %s not found", name)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeQueryFailed, "failed to read candles", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeIndicatorPanicked) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a failure tagged with an ErrorCode. Cause, when set, is the
// lower-level error it wraps.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func New(code ErrorCode, message string) *Error {
	return Wrap(code, message, nil)
}

func Newf(code ErrorCode, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), nil)
}

// Wrap tags cause with code. A nil cause yields a plain coded error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// Error renders "[code] message" followed by ": cause" when wrapping.
func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%d] %s", e.Code, e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code, so a bare
// errors.Is(err, errors.New(ErrCodeRunCancelled, "")) test works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Code == e.Code
}

// Category is shorthand for e.Code.Category().
func (e *Error) Category() string {
	return e.Code.Category()
}

// GetCode returns the code of the first *Error in err's chain, or
// ErrCodeUnknown when there is none.
func GetCode(err error) ErrorCode {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	return ErrCodeUnknown
}

// HasCode reports whether any *Error in err's tree carries code, including
// errors joined below the first one.
func HasCode(err error, code ErrorCode) bool {
	return errors.Is(err, &Error{Code: code})
}
