package resourceservice

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-resource-client/model"
)

// API is the slice of the apiclient surface the service needs.
// *apiclient.Client satisfies it.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Service is the generic CRUD contract for remote entities.
type Service[T any] interface {
	Create(ctx context.Context, entity T) (T, error)
	Get(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, entity T) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, opts ListOptions) ([]T, error)
}

// ListOptions narrows a List call. Zero values mean "no limit" and
// "no filter".
type ListOptions struct {
	// Limit caps the number of returned resources when positive.
	Limit int

	// Filter keeps only resources whose name contains the substring.
	Filter string
}

// Interface assertion to ensure ResourceService implements Service.
var _ Service[model.Resource] = (*ResourceService)(nil)

// ResourceService fronts the upstream resource API with a snapshot cache.
//
// Reads consult the snapshot only while it is fresh (see StaleAfter); List
// refreshes it wholesale, single-item misses go upstream without touching
// it, and every successful write forces it stale. The service performs no
// retries; errors surface immediately in this package's error vocabulary.
type ResourceService struct {
	api      API
	cache    *snapshot
	registry *Registry
}

// New creates a ResourceService over the given API client. A nil registry
// disables write-path processing.
func New(api API, registry *Registry) *ResourceService {
	return &ResourceService{
		api:      api,
		cache:    newSnapshot(),
		registry: registry,
	}
}

// Invalidate forces the snapshot cache stale, so the next read goes
// upstream.
func (s *ResourceService) Invalidate() {
	s.cache.invalidate()
}

// Create validates the resource, runs it through the processor pipeline and
// submits it upstream. The snapshot is invalidated on success.
func (s *ResourceService) Create(ctx context.Context, resource model.Resource) (model.Resource, error) {
	if err := resource.Data.Validate(); err != nil {
		return model.Resource{}, &ValidationError{Err: err}
	}
	if err := s.process(&resource); err != nil {
		return model.Resource{}, err
	}

	var created model.Resource
	if err := s.api.Post(ctx, "resources", resource, &created); err != nil {
		return model.Resource{}, mapAPIError(err, "create resources", resource.ID)
	}

	s.cache.invalidate()
	return created, nil
}

// Get returns a resource by ID. A fresh snapshot hit is served from memory;
// otherwise the upstream is asked directly. The result of a miss is not
// written back into the snapshot.
func (s *ResourceService) Get(ctx context.Context, id string) (model.Resource, error) {
	if cached, ok := s.cache.get(id); ok {
		return cached, nil
	}

	var resource model.Resource
	if err := s.api.Get(ctx, "resources/"+id, &resource); err != nil {
		return model.Resource{}, mapAPIError(err, "access this resource", id)
	}
	return resource, nil
}

// Update validates and submits a full replacement of the resource. The path
// ID must match the resource's own ID. The snapshot is invalidated on
// success.
func (s *ResourceService) Update(ctx context.Context, id string, resource model.Resource) (model.Resource, error) {
	if err := resource.Data.Validate(); err != nil {
		return model.Resource{}, &ValidationError{Err: err}
	}
	if resource.ID != id {
		return model.Resource{}, &ValidationError{Err: ErrIDMismatch}
	}
	if err := s.process(&resource); err != nil {
		return model.Resource{}, err
	}

	var updated model.Resource
	if err := s.api.Put(ctx, "resources/"+id, resource, &updated); err != nil {
		return model.Resource{}, mapAPIError(err, "update this resource", id)
	}

	s.cache.invalidate()
	return updated, nil
}

// Delete removes a resource by ID and reports whether the upstream deleted
// it. The snapshot is invalidated on success.
func (s *ResourceService) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	if err := s.api.Delete(ctx, "resources/"+id, &deleted); err != nil {
		return false, mapAPIError(err, "delete this resource", id)
	}

	s.cache.invalidate()
	return deleted, nil
}

// List returns resources, optionally filtered and limited. A fresh snapshot
// answers from memory with the options applied locally; a stale one is
// refreshed from the upstream with the options forwarded as query
// parameters, and the reply overwrites the entire snapshot.
func (s *ResourceService) List(ctx context.Context, opts ListOptions) ([]model.Resource, error) {
	if cached, ok := s.cache.list(); ok {
		return applyListOptions(cached, opts), nil
	}

	path := "resources"
	if query := encodeListOptions(opts); query != "" {
		path += "?" + query
	}

	var resources []model.Resource
	if err := s.api.Get(ctx, path, &resources); err != nil {
		return nil, mapAPIError(err, "list resources", "")
	}

	s.cache.replace(resources)
	return resources, nil
}

func (s *ResourceService) process(resource *model.Resource) error {
	if s.registry == nil {
		return nil
	}
	return s.registry.Process(resource)
}

func applyListOptions(resources []model.Resource, opts ListOptions) []model.Resource {
	out := resources
	if opts.Filter != "" {
		out = out[:0:0]
		for _, r := range resources {
			if strings.Contains(r.Data.Name, opts.Filter) {
				out = append(out, r)
			}
		}
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

func encodeListOptions(opts ListOptions) string {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Filter != "" {
		query.Set("filter", opts.Filter)
	}
	return query.Encode()
}
