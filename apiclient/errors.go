package apiclient

import (
	"errors"
	"fmt"
)

// Sentinel errors for the upstream status codes we map directly.
// Callers should test for these with errors.Is.
var (
	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized is returned for HTTP 401 responses.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned for HTTP 403 responses.
	ErrForbidden = errors.New("access forbidden")

	// ErrRateLimited is returned for HTTP 429 responses.
	ErrRateLimited = errors.New("api rate limit exceeded")

	// ErrUnsupportedMethod is returned when a Request carries an HTTP method
	// the client does not know how to execute.
	ErrUnsupportedMethod = errors.New("unsupported http method")
)

// StatusError reports a non-2xx response that does not map to one of the
// sentinel errors above. It carries the status code and the raw body text.
type StatusError struct {
	Code int
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Body)
}

// TransportError wraps failures that happen before a response is received:
// dial errors, timeouts, malformed URLs.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("request error during %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that could not be decoded into the
// caller's type.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse api response: %v", e.Err)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
