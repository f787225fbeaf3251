package apiclient

import "net/http"

// Request describes a single call against the upstream API. Build one with
// the method constructors below and the With* chainers, then hand it to
// Client.Do.
type Request struct {
	method  string
	path    string
	headers map[string]string
	query   map[string]string
	body    any
}

// NewRequest creates a request for an arbitrary method and path. The path is
// resolved against the client's base URL unless it is already absolute.
func NewRequest(method, path string) *Request {
	return &Request{
		method:  method,
		path:    path,
		headers: make(map[string]string),
		query:   make(map[string]string),
	}
}

// Get creates a GET request.
func Get(path string) *Request { return NewRequest(http.MethodGet, path) }

// Post creates a POST request.
func Post(path string) *Request { return NewRequest(http.MethodPost, path) }

// Put creates a PUT request.
func Put(path string) *Request { return NewRequest(http.MethodPut, path) }

// Delete creates a DELETE request.
func Delete(path string) *Request { return NewRequest(http.MethodDelete, path) }

// Patch creates a PATCH request.
func Patch(path string) *Request { return NewRequest(http.MethodPatch, path) }

// Method returns the request's HTTP method.
func (r *Request) Method() string { return r.method }

// Path returns the request's path or absolute URL.
func (r *Request) Path() string { return r.path }

// Headers returns the extra headers set on the request.
func (r *Request) Headers() map[string]string { return r.headers }

// Query returns the query parameters set on the request.
func (r *Request) Query() map[string]string { return r.query }

// Body returns the JSON body, or nil when the request carries none.
func (r *Request) Body() any { return r.body }

// WithHeader sets a header on the request.
func (r *Request) WithHeader(key, value string) *Request {
	r.headers[key] = value
	return r
}

// WithJSONContentType sets the Content-Type header to application/json.
// Client.Do does this automatically whenever a body is present, so this is
// only needed for body-less requests that still want the header.
func (r *Request) WithJSONContentType() *Request {
	return r.WithHeader("Content-Type", "application/json")
}

// WithQuery sets a single query parameter.
func (r *Request) WithQuery(key, value string) *Request {
	r.query[key] = value
	return r
}

// WithQueryParams merges a set of query parameters into the request.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	for k, v := range params {
		r.query[k] = v
	}
	return r
}

// WithBody sets the JSON body of the request.
func (r *Request) WithBody(body any) *Request {
	r.body = body
	return r
}
