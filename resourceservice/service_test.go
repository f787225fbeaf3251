package resourceservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-resource-client/apiclient"
	"github.com/goliatone/go-resource-client/model"
)

type apiCall struct {
	method string
	path   string
}

// mockAPI records every call and replays canned responses.
type mockAPI struct {
	calls []apiCall

	getResponse    any
	postResponse   any
	putResponse    any
	deleteResponse any

	getErr    error
	postErr   error
	putErr    error
	deleteErr error
}

func (m *mockAPI) Get(_ context.Context, path string, out any) error {
	m.calls = append(m.calls, apiCall{method: "GET", path: path})
	if m.getErr != nil {
		return m.getErr
	}
	return assign(out, m.getResponse)
}

func (m *mockAPI) Post(_ context.Context, path string, _, out any) error {
	m.calls = append(m.calls, apiCall{method: "POST", path: path})
	if m.postErr != nil {
		return m.postErr
	}
	return assign(out, m.postResponse)
}

func (m *mockAPI) Put(_ context.Context, path string, _, out any) error {
	m.calls = append(m.calls, apiCall{method: "PUT", path: path})
	if m.putErr != nil {
		return m.putErr
	}
	return assign(out, m.putResponse)
}

func (m *mockAPI) Delete(_ context.Context, path string, out any) error {
	m.calls = append(m.calls, apiCall{method: "DELETE", path: path})
	if m.deleteErr != nil {
		return m.deleteErr
	}
	return assign(out, m.deleteResponse)
}

func assign(out, value any) error {
	if value == nil {
		return nil
	}
	switch dst := out.(type) {
	case *model.Resource:
		*dst = value.(model.Resource)
	case *[]model.Resource:
		*dst = value.([]model.Resource)
	case *bool:
		*dst = value.(bool)
	}
	return nil
}

func (m *mockAPI) callCount(method string) int {
	n := 0
	for _, c := range m.calls {
		if c.method == method {
			n++
		}
	}
	return n
}

func validResource(id, name string) model.Resource {
	data := model.NewResourceData(name, model.TypeDocument).
		WithData("content", "hello world")
	return model.NewResource(id, data)
}

func newTestService(api *mockAPI) *ResourceService {
	return New(api, nil)
}

func TestServiceListRefreshesStaleSnapshot(t *testing.T) {
	api := &mockAPI{getResponse: []model.Resource{
		validResource("res-1", "alpha"),
		validResource("res-2", "beta"),
	}}
	svc := newTestService(api)

	got, err := svc.List(context.Background(), ListOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(got))
	}
	if api.callCount("GET") != 1 {
		t.Errorf("expected 1 upstream call, got %d", api.callCount("GET"))
	}
	if api.calls[0].path != "resources" {
		t.Errorf("expected path %q, got %q", "resources", api.calls[0].path)
	}
}

func TestServiceListServesFreshSnapshot(t *testing.T) {
	api := &mockAPI{getResponse: []model.Resource{
		validResource("res-1", "alpha"),
	}}
	svc := newTestService(api)

	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.callCount("GET") != 1 {
		t.Errorf("expected the second List to hit the snapshot, got %d upstream calls", api.callCount("GET"))
	}
}

func TestServiceListAppliesOptionsLocally(t *testing.T) {
	api := &mockAPI{getResponse: []model.Resource{
		validResource("res-1", "report 2024"),
		validResource("res-2", "notes"),
		validResource("res-3", "report 2025"),
	}}
	svc := newTestService(api)

	// Prime the snapshot.
	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.List(context.Background(), ListOptions{Filter: "report", Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(got))
	}
	if got[0].ID != "res-1" {
		t.Errorf("expected res-1, got %s", got[0].ID)
	}
	if api.callCount("GET") != 1 {
		t.Errorf("expected filter and limit to be applied locally, got %d upstream calls", api.callCount("GET"))
	}
}

func TestServiceListForwardsOptionsUpstream(t *testing.T) {
	api := &mockAPI{getResponse: []model.Resource{}}
	svc := newTestService(api)

	if _, err := svc.List(context.Background(), ListOptions{Filter: "report", Limit: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "resources?filter=report&limit=5"
	if api.calls[0].path != want {
		t.Errorf("expected path %q, got %q", want, api.calls[0].path)
	}
}

func TestServiceGetServedFromSnapshot(t *testing.T) {
	api := &mockAPI{getResponse: []model.Resource{
		validResource("res-1", "alpha"),
	}}
	svc := newTestService(api)

	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Get(context.Background(), "res-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "res-1" {
		t.Errorf("expected res-1, got %s", got.ID)
	}
	if api.callCount("GET") != 1 {
		t.Errorf("expected the Get to hit the snapshot, got %d upstream calls", api.callCount("GET"))
	}
}

func TestServiceGetMissDoesNotPopulateSnapshot(t *testing.T) {
	api := &mockAPI{
		getResponse: validResource("res-9", "orphan"),
	}
	svc := newTestService(api)

	if _, err := svc.Get(context.Background(), "res-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), "res-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both lookups had to go upstream: a miss never seeds the snapshot.
	if api.callCount("GET") != 2 {
		t.Errorf("expected 2 upstream calls, got %d", api.callCount("GET"))
	}
}

func TestServiceGetNotFound(t *testing.T) {
	api := &mockAPI{getErr: apiclient.ErrNotFound}
	svc := newTestService(api)

	_, err := svc.Get(context.Background(), "res-404")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if notFound.ID != "res-404" {
		t.Errorf("expected ID res-404, got %s", notFound.ID)
	}
}

func TestServiceCreateInvalidatesSnapshot(t *testing.T) {
	resource := validResource("res-1", "alpha")
	api := &mockAPI{
		getResponse:  []model.Resource{resource},
		postResponse: resource,
	}
	svc := newTestService(api)

	// Prime the snapshot.
	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Create(context.Background(), validResource("res-2", "beta")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.callCount("GET") != 2 {
		t.Errorf("expected the create to invalidate the snapshot, got %d GET calls", api.callCount("GET"))
	}
}

func TestServiceCreateRejectsInvalidResource(t *testing.T) {
	api := &mockAPI{}
	svc := newTestService(api)

	invalid := model.NewResource("res-1", model.NewResourceData("", model.TypeDocument))
	_, err := svc.Create(context.Background(), invalid)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if len(api.calls) != 0 {
		t.Errorf("expected no upstream calls for an invalid resource, got %d", len(api.calls))
	}
}

func TestServiceUpdateRejectsIDMismatch(t *testing.T) {
	api := &mockAPI{}
	svc := newTestService(api)

	_, err := svc.Update(context.Background(), "res-1", validResource("res-2", "alpha"))

	if !errors.Is(err, ErrIDMismatch) {
		t.Fatalf("expected ErrIDMismatch, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("expected no upstream calls on an ID mismatch, got %d", len(api.calls))
	}
}

func TestServiceUpdateInvalidatesSnapshot(t *testing.T) {
	resource := validResource("res-1", "alpha")
	api := &mockAPI{
		getResponse: []model.Resource{resource},
		putResponse: resource,
	}
	svc := newTestService(api)

	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Update(context.Background(), "res-1", resource); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.callCount("GET") != 2 {
		t.Errorf("expected the update to invalidate the snapshot, got %d GET calls", api.callCount("GET"))
	}
	if api.calls[1].path != "resources/res-1" {
		t.Errorf("expected PUT path resources/res-1, got %q", api.calls[1].path)
	}
}

func TestServiceDelete(t *testing.T) {
	api := &mockAPI{
		getResponse:    []model.Resource{validResource("res-1", "alpha")},
		deleteResponse: true,
	}
	svc := newTestService(api)

	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), "res-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected deleted to be true")
	}

	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.callCount("GET") != 2 {
		t.Errorf("expected the delete to invalidate the snapshot, got %d GET calls", api.callCount("GET"))
	}
}

func TestServiceSnapshotExpires(t *testing.T) {
	api := &mockAPI{getResponse: []model.Resource{
		validResource("res-1", "alpha"),
	}}
	svc := newTestService(api)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	svc.cache.now = func() time.Time { return current }

	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Still inside the window: served from the snapshot.
	current = base.Add(StaleAfter)
	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.callCount("GET") != 1 {
		t.Fatalf("expected the snapshot to still be fresh, got %d upstream calls", api.callCount("GET"))
	}

	// Past the window: refetched.
	current = base.Add(StaleAfter + time.Second)
	if _, err := svc.List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.callCount("GET") != 2 {
		t.Errorf("expected an expired snapshot to refetch, got %d upstream calls", api.callCount("GET"))
	}
}

func TestServicePermissionErrors(t *testing.T) {
	for _, upstream := range []error{apiclient.ErrUnauthorized, apiclient.ErrForbidden} {
		api := &mockAPI{deleteErr: upstream}
		svc := newTestService(api)

		_, err := svc.Delete(context.Background(), "res-1")

		var perm *PermissionError
		if !errors.As(err, &perm) {
			t.Fatalf("expected *PermissionError for %v, got %T: %v", upstream, err, err)
		}
	}
}

func TestServiceUpstreamError(t *testing.T) {
	statusErr := &apiclient.StatusError{Code: 500, Body: "boom"}
	api := &mockAPI{getErr: statusErr}
	svc := newTestService(api)

	_, err := svc.List(context.Background(), ListOptions{})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *UpstreamError, got %T: %v", err, err)
	}
	if !errors.Is(err, statusErr) {
		t.Error("expected the status error to be reachable through Unwrap")
	}
}

func TestServiceDecodeErrorBecomesProcessing(t *testing.T) {
	api := &mockAPI{getErr: &apiclient.DecodeError{Err: errors.New("bad json")}}
	svc := newTestService(api)

	_, err := svc.List(context.Background(), ListOptions{})

	var proc *ProcessingError
	if !errors.As(err, &proc) {
		t.Fatalf("expected *ProcessingError, got %T: %v", err, err)
	}
}

func TestServiceWithRegistryRunsProcessors(t *testing.T) {
	resource := validResource("res-1", "alpha")
	api := &mockAPI{postResponse: resource}
	svc := New(api, DefaultRegistry(nil))

	created := validResource("res-1", "  alpha  ")
	created.Data.Data["content"] = "  padded  "

	if _, err := svc.Create(context.Background(), created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.callCount("POST") != 1 {
		t.Errorf("expected 1 POST, got %d", api.callCount("POST"))
	}
}
