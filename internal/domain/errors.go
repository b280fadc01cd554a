package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the trip offer aggregation system.
// Use errors.Is to test for them.
var (
	// ErrInvalidRequest indicates the caller supplied invalid parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotImplemented indicates a remote backend answered 404, meaning the
	// endpoint is not yet available. It is an expected, recoverable condition
	// that routes callers to the local fallback.
	ErrNotImplemented = errors.New("backend not implemented")

	// ErrFeatureUnavailable indicates the text-search backend is absent and
	// manual selection should be used instead.
	ErrFeatureUnavailable = errors.New("feature unavailable")

	// ErrUnknownDestination indicates the destination ID is not in the catalog.
	ErrUnknownDestination = errors.New("unknown destination")
)

// SourceError is a per-window failure from the remote offer source. The
// pipeline skips the affected window and continues; a SourceError is never
// surfaced to the caller as fatal.
type SourceError struct {
	// Window is the date window whose fetch failed
	Window DateWindow

	// Err is the underlying cause
	Err error
}

// NewSourceError creates a SourceError for the given window.
func NewSourceError(window DateWindow, err error) *SourceError {
	return &SourceError{Window: window, Err: err}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("offer source failed for window %s..%s: %v",
		e.Window.DepartureDate, e.Window.ReturnDate, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// RPCError is an application error reported by the flight search backend in
// a JSON-RPC error object.
type RPCError struct {
	// Code is the JSON-RPC error code
	Code int `json:"code"`

	// Message is the backend-supplied error message
	Message string `json:"message"`

	// Data carries optional structured error detail
	Data any `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
