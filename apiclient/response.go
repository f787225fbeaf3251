package apiclient

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Response wraps a successful upstream reply: status code, headers and the
// raw body bytes. The body is fully read before Do returns, so Response
// carries no open connection.
type Response struct {
	status  int
	headers http.Header
	body    []byte
}

// NewResponse creates a response wrapper. It is exported so tests and
// alternate transports can fabricate responses.
func NewResponse(status int, headers http.Header, body []byte) *Response {
	return &Response{status: status, headers: headers, body: body}
}

// Status returns the HTTP status code.
func (r *Response) Status() int { return r.status }

// Headers returns the response headers.
func (r *Response) Headers() http.Header { return r.headers }

// Body returns the raw response body.
func (r *Response) Body() []byte { return r.body }

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.status >= 200 && r.status < 300
}

// DecodeJSON unmarshals the body into dest.
func (r *Response) DecodeJSON(dest any) error {
	if err := json.Unmarshal(r.body, dest); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// Header returns the value of a single header, or "" when absent.
func (r *Response) Header(name string) string {
	return r.headers.Get(name)
}

// HasHeader reports whether the response carries the named header.
func (r *Response) HasHeader(name string) bool {
	return r.headers.Get(name) != ""
}

// ContentType returns the Content-Type header value.
func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// RateLimitRemaining parses the X-RateLimit-Remaining header. The second
// return value is false when the header is absent or malformed.
func (r *Response) RateLimitRemaining() (int, bool) {
	v, err := strconv.Atoi(r.Header("X-RateLimit-Remaining"))
	if err != nil {
		return 0, false
	}
	return v, true
}

// RateLimitReset parses the X-RateLimit-Reset header as a unix timestamp.
// The second return value is false when the header is absent or malformed.
func (r *Response) RateLimitReset() (int64, bool) {
	v, err := strconv.ParseInt(r.Header("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
