package resourceservice

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-resource-client/model"
)

// Processor inspects and potentially mutates a resource before it is sent
// upstream on the write path.
type Processor interface {
	// Process runs the processor against the resource.
	Process(r *model.Resource) error

	// Handles reports whether this processor applies to the given type.
	Handles(rt model.ResourceType) bool
}

// Registry holds processors grouped by the resource type they handle.
// Processors registered under model.TypeAny run for every resource, after
// the type-specific ones.
type Registry struct {
	mu         sync.RWMutex
	processors map[model.ResourceType][]Processor
}

// NewRegistry creates an empty processor registry.
func NewRegistry() *Registry {
	return &Registry{processors: make(map[model.ResourceType][]Processor)}
}

// Register adds a processor for a resource type. Registration order is
// preserved per type.
func (reg *Registry) Register(rt model.ResourceType, p Processor) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.processors[rt] = append(reg.processors[rt], p)
}

// Process runs the resource through the processors registered for its type,
// then through the wildcard processors. The first error stops the chain.
func (reg *Registry) Process(r *model.Resource) error {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	for _, p := range reg.processors[r.Data.Type] {
		if err := p.Process(r); err != nil {
			return err
		}
	}
	for _, p := range reg.processors[model.TypeAny] {
		if err := p.Process(r); err != nil {
			return err
		}
	}
	return nil
}

// DefaultRegistry returns a registry with the stock processors wired:
// documents, users and the audit stamp for everything.
func DefaultRegistry(logger *slog.Logger) *Registry {
	reg := NewRegistry()
	reg.Register(model.TypeDocument, DocumentProcessor{})
	reg.Register(model.TypeUser, UserProcessor{})
	reg.Register(model.TypeAny, AuditProcessor{Logger: logger})
	return reg
}

// DocumentProcessor normalizes document content: rejects empty content and
// trims surrounding whitespace.
type DocumentProcessor struct{}

// Process implements Processor.
func (DocumentProcessor) Process(r *model.Resource) error {
	content, ok := r.Data.Data["content"]
	if !ok {
		return nil
	}
	if content == "" {
		return &ProcessingError{Reason: "document content cannot be empty"}
	}
	r.Data.Data["content"] = strings.TrimSpace(content)
	return nil
}

// Handles implements Processor.
func (DocumentProcessor) Handles(rt model.ResourceType) bool {
	return rt == model.TypeDocument
}

// UserProcessor sanity-checks the embedded email and stamps created_at when
// absent.
type UserProcessor struct{}

// Process implements Processor.
func (UserProcessor) Process(r *model.Resource) error {
	if email, ok := r.Data.Data["email"]; ok {
		if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
			return &ProcessingError{Reason: "invalid email format"}
		}
	}
	if _, ok := r.Data.Data["created_at"]; !ok {
		if r.Data.Data == nil {
			r.Data.Data = make(map[string]string)
		}
		r.Data.Data["created_at"] = time.Now().UTC().Format(time.RFC3339)
	}
	return nil
}

// Handles implements Processor.
func (UserProcessor) Handles(rt model.ResourceType) bool {
	return rt == model.TypeUser
}

// AuditProcessor stamps last_modified on every resource and logs the
// mutation.
type AuditProcessor struct {
	Logger *slog.Logger
}

// Process implements Processor.
func (p AuditProcessor) Process(r *model.Resource) error {
	if r.Data.Data == nil {
		r.Data.Data = make(map[string]string)
	}
	r.Data.Data["last_modified"] = time.Now().UTC().Format(time.RFC3339)

	if p.Logger != nil {
		p.Logger.Info("resource modified",
			slog.String("id", r.ID),
			slog.String("type", r.Data.Type.String()),
			slog.String("name", r.Data.Name))
	}
	return nil
}

// Handles implements Processor.
func (AuditProcessor) Handles(rt model.ResourceType) bool {
	return true
}
