// Package apiclient provides the JSON-over-HTTP client for the upstream
// resource API.
//
// # Overview
//
// The package exports three building blocks:
//
//   - Client: executes requests with a fixed timeout and optional bearer auth
//   - Request: a builder for method, path, headers, query params and body
//   - Response: an immutable wrapper over status, headers and body bytes
//
// # Status Mapping
//
// The upstream contract is mapped onto Go errors in exactly one place
// (mapStatus), so every call site sees the same vocabulary:
//
//	200, 201, 202  success, body decoded
//	404            ErrNotFound
//	401            ErrUnauthorized
//	403            ErrForbidden
//	429            ErrRateLimited
//	anything else  *StatusError carrying the code and body text
//
// Failures before a response arrives surface as *TransportError; bodies that
// cannot be decoded surface as *DecodeError. All of these work with
// errors.Is and errors.As.
//
// # Basic Usage
//
//	client, err := apiclient.New(apiclient.Config{
//		BaseURL: "https://api.example.com",
//		APIKey:  os.Getenv("RESOURCE_API_KEY"),
//		Timeout: 30 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	var res model.Resource
//	if err := client.Get(ctx, "resources/"+id, &res); err != nil {
//		if errors.Is(err, apiclient.ErrNotFound) {
//			// handle the miss
//		}
//		return err
//	}
//
// For anything beyond the CRUD helpers, build a Request:
//
//	req := apiclient.Get("resources").
//		WithQuery("limit", "10").
//		WithQuery("filter", "report")
//	resp, err := client.Do(ctx, req)
//
// # What the Client Does Not Do
//
// The client performs no retries and no caching. Retry policy belongs to the
// caller (see the retry package); caching belongs to the service layer built
// on top (see resourceservice and directory).
package apiclient
