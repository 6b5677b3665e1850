// Package registry provides an in-memory store of service definitions.
package registry

import (
	"slices"

	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry implements ports.ServiceRegistry with a map keyed by service id.
// It is owned by bootstrap and is not safe for concurrent mutation.
type Registry struct {
	defs  map[string]*domain.Definition
	order []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{defs: make(map[string]*domain.Definition)}
}

// NewDefault returns a registry holding the swap builder definition.
func NewDefault() *Registry {
	r := New()
	r.SetDefinition(domain.BuilderID, domain.NewDefinition(domain.BuilderClass, domain.Options{}))
	return r
}

// Definition returns the definition stored under id.
func (r *Registry) Definition(id string) (*domain.Definition, error) {
	def, ok := r.defs[id]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrDefinitionNotFound, "service is not registered"), "id", id)
	}
	return def, nil
}

// SetDefinition stores def under id, replacing any previous definition.
func (r *Registry) SetDefinition(id string, def *domain.Definition) {
	if _, ok := r.defs[id]; !ok {
		r.order = append(r.order, id)
	}
	r.defs[id] = def
}

// HasDefinition reports whether id is registered.
func (r *Registry) HasDefinition(id string) bool {
	_, ok := r.defs[id]
	return ok
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}
