package txtracker

import (
	"headerchain/jsonx"
)

// TrackerErrorCode represents standardized error codes for tracker operations
type TrackerErrorCode string

const (
	// ErrCodeLock signals that tracker state could not be read or updated
	// consistently, e.g. a storage failure mid-update.
	ErrCodeLock TrackerErrorCode = "lock"

	// ErrCodeRelayPeer signals that no relay peers are available to
	// broadcast the transaction to.
	ErrCodeRelayPeer TrackerErrorCode = "no_relay_peer"

	// ErrCodeNotFound signals that the transaction was never submitted
	// through this tracker.
	ErrCodeNotFound TrackerErrorCode = "tx_not_found"
)

// TrackerError represents a standardized tracker error
type TrackerError struct {
	Code    TrackerErrorCode `json:"code"`
	Message string           `json:"message"`
}

// Error implements the error interface
func (e *TrackerError) Error() string {
	err, _ := jsonx.Marshal(TrackerError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(err)
}

// Error message constants - user-friendly and concise
const (
	ErrMsgLock      = "Tracker state is inconsistent"
	ErrMsgRelayPeer = "Zero connected relay peers"
	ErrMsgNotFound  = "Transaction not stored to store"
)

// NewError creates a new TrackerError and returns it as error interface
func NewError(code TrackerErrorCode, message string) error {
	return &TrackerError{
		Code:    code,
		Message: message,
	}
}

// CodeOf extracts the code from err, or returns ErrCodeLock when err is
// not a TrackerError.
func CodeOf(err error) TrackerErrorCode {
	if te, ok := err.(*TrackerError); ok {
		return te.Code
	}
	return ErrCodeLock
}
