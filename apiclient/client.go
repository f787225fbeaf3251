package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds the settings for talking to the upstream API.
type Config struct {
	// BaseURL is the root of the upstream API, without a trailing slash.
	BaseURL string

	// APIKey, when non-empty, is sent as a bearer token on every request.
	APIKey string

	// Timeout bounds each request end to end. Must be greater than 0.
	Timeout time.Duration

	// MaxRetries is carried for callers that wrap the client with the retry
	// package. The client itself never retries.
	MaxRetries int
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "https://api.example.com",
		Timeout:    30 * time.Second,
		MaxRetries: 3,
	}
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return &ConfigError{Field: "BaseURL", Message: "must not be empty"}
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return &ConfigError{Field: "BaseURL", Message: "must be a valid URL"}
	}
	if c.Timeout <= 0 {
		return &ConfigError{Field: "Timeout", Message: "must be greater than 0"}
	}
	if c.MaxRetries < 0 {
		return &ConfigError{Field: "MaxRetries", Message: "must be non-negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// Client is a JSON-over-HTTP client for the upstream resource API. It maps
// upstream status codes onto the package's error types and otherwise stays
// out of the way: no retries, no caching, no interpretation of payloads.
type Client struct {
	httpClient *http.Client
	config     Config
}

// New creates a Client with the given configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
	}, nil
}

// Config returns the client's configuration.
func (c *Client) Config() Config {
	return c.config
}

// SetBaseURL replaces the upstream base URL.
func (c *Client) SetBaseURL(baseURL string) {
	c.config.BaseURL = baseURL
}

// SetAPIKey replaces the bearer token. An empty key disables auth.
func (c *Client) SetAPIKey(apiKey string) {
	c.config.APIKey = apiKey
}

// Get executes a GET request and decodes the response body into out.
// Passing a nil out discards the body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.execute(ctx, Get(path), out)
}

// Post executes a POST request with a JSON body and decodes the response
// body into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.execute(ctx, Post(path).WithBody(body), out)
}

// Put executes a PUT request with a JSON body and decodes the response body
// into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.execute(ctx, Put(path).WithBody(body), out)
}

// Delete executes a DELETE request and decodes the response body into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.execute(ctx, Delete(path), out)
}

func (c *Client) execute(ctx context.Context, req *Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.DecodeJSON(out)
}

// Do executes a built Request and returns the wrapped response. Non-success
// statuses are returned as errors per the package's status mapping, so a
// non-nil Response always carries a 2xx status.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	switch req.Method() {
	case http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodDelete, http.MethodPatch:
	default:
		return nil, ErrUnsupportedMethod
	}

	target := req.Path()
	if !strings.HasPrefix(target, "http") {
		target = c.config.BaseURL + "/" + strings.TrimPrefix(target, "/")
	}

	var body io.Reader
	if req.Body() != nil {
		data, err := json.Marshal(req.Body())
		if err != nil {
			return nil, &TransportError{Op: "encode body", Err: err}
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), target, body)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}

	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	if req.Body() != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers() {
		httpReq.Header.Set(k, v)
	}

	if len(req.Query()) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query() {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "send", Err: err}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read body", Err: err}
	}

	if err := mapStatus(httpResp.StatusCode, data); err != nil {
		return nil, err
	}

	return NewResponse(httpResp.StatusCode, httpResp.Header, data), nil
}

// mapStatus translates an upstream status code into the package's error
// vocabulary. 200, 201 and 202 are the only success codes the upstream
// contract produces.
func mapStatus(code int, body []byte) error {
	switch code {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		text := strings.TrimSpace(string(body))
		if text == "" {
			text = "unknown error"
		}
		return &StatusError{Code: code, Body: text}
	}
}
