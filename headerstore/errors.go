package headerstore

import (
	"errors"
	"fmt"
)

// ErrorCode classifies storage failures so callers can react without
// string matching.
type ErrorCode string

const (
	// ErrCodeIO signals a failure of the underlying storage medium:
	// permissions, disk exhaustion, or an unexpected end of input during a
	// read that should have succeeded.
	ErrCodeIO ErrorCode = "io_error"

	// ErrCodeDecoding signals that bytes were present but did not satisfy
	// the fixed-width header schema.
	ErrCodeDecoding ErrorCode = "decoding_error"

	// ErrCodeCorruption signals a violated structural invariant, e.g. a
	// file whose length is not a multiple of the record size. Corruption is
	// terminal for the affected store; no repair is attempted.
	ErrCodeCorruption ErrorCode = "corruption"

	// ErrCodeNotFound signals a request for a height beyond the current
	// tip. This is an expected condition, not a failure of the medium.
	ErrCodeNotFound ErrorCode = "not_found"
)

// StoreError is the error type returned by every Store operation.
type StoreError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("headerstore: %s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("headerstore: %s: %s", e.Code, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewError creates a StoreError with no underlying cause.
func NewError(code ErrorCode, message string) error {
	return &StoreError{Code: code, Message: message}
}

// WrapError creates a StoreError wrapping an underlying cause.
func WrapError(code ErrorCode, message string, err error) error {
	return &StoreError{Code: code, Message: message, Err: err}
}

// CodeOf extracts the ErrorCode from err, or returns ErrCodeIO when err is
// not a StoreError.
func CodeOf(err error) ErrorCode {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeIO
}

// IsNotFound reports whether err represents a height past the tip.
func IsNotFound(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeNotFound
}

// IsCorruption reports whether err represents structural corruption.
func IsCorruption(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeCorruption
}
