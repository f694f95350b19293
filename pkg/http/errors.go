package http

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthExpired matches any *AuthExpiredError via errors.Is.
	ErrAuthExpired        = errors.New("http: auth expired")
	ErrInvalidDescriptor  = errors.New("http: invalid descriptor")
	ErrSessionUnavailable = errors.New("http: session store unavailable")
	ErrDecodeResponse     = errors.New("http: failed to decode response")
	// ErrResponseTooLarge means the body exceeded DefaultMaxBodySize. Not retried.
	ErrResponseTooLarge = errors.New("http: response body too large")
)

// TransportError is a network-layer failure (DNS, connect, timeout, body read).
// It is the only failure the core retries.
type TransportError struct {
	// Attempts is how many attempts were made before giving up.
	Attempts int
	Err      error
}

// Error implements error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("http: transport failed after %d attempt(s): %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthExpiredError is returned on 401. The session has already been cleared.
type AuthExpiredError struct {
	Message string
	Body    []byte
}

// Error implements error.
func (e *AuthExpiredError) Error() string {
	return "http: auth expired: " + e.Message
}

// Is makes errors.Is(err, ErrAuthExpired) hold.
func (e *AuthExpiredError) Is(target error) bool {
	return target == ErrAuthExpired
}

// HTTPError is returned for any status >= 400 other than 401.
type HTTPError struct {
	Code    int
	Message string
	Body    []byte
}

// Error implements error.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http: request failed with status %d: %s", e.Code, e.Message)
}
