package resourceservice

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-resource-client/apiclient"
)

// ErrIDMismatch is returned by Update when the path ID and the resource's
// own ID disagree.
var ErrIDMismatch = errors.New("resource id mismatch")

// ValidationError reports a resource payload that failed validation before
// any request was sent upstream.
type ValidationError struct {
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %v", e.Err)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports a resource the upstream does not know.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.ID)
}

// PermissionError reports an operation the upstream rejected with 401 or 403.
type PermissionError struct {
	Op string
}

// Error implements the error interface.
func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: not authorized to %s", e.Op)
}

// ProcessingError reports a response that arrived but could not be used,
// or a processor that rejected a resource on the write path.
type ProcessingError struct {
	Reason string
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing error: %s", e.Reason)
}

// UpstreamError wraps any other failure from the API layer.
type UpstreamError struct {
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("external service error: %v", e.Err)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *UpstreamError) Unwrap() error { return e.Err }

// mapAPIError translates the apiclient error vocabulary into this layer's.
// op names the attempted operation for permission messages; id is the
// resource involved, when there is one.
func mapAPIError(err error, op, id string) error {
	switch {
	case errors.Is(err, apiclient.ErrNotFound):
		return &NotFoundError{ID: id}
	case errors.Is(err, apiclient.ErrUnauthorized), errors.Is(err, apiclient.ErrForbidden):
		return &PermissionError{Op: op}
	default:
		var decodeErr *apiclient.DecodeError
		if errors.As(err, &decodeErr) {
			return &ProcessingError{Reason: decodeErr.Error()}
		}
		return &UpstreamError{Err: err}
	}
}
