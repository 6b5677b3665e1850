// Package pool implements the built-in cache pool backends and the catalog that opens them.
package pool

import (
	"strings"
	"time"

	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory builds a pool for a namespace. A zero ttl means entries never expire.
type Factory func(namespace string, ttl time.Duration) (ports.CachePool, error)

// Catalog implements ports.BackendCatalog over a fixed set of factories.
type Catalog struct {
	factories map[domain.BackendKind]Factory
}

// NewCatalog returns a catalog with no backends.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[domain.BackendKind]Factory)}
}

// DefaultCatalog returns a catalog providing every built-in backend.
// Filesystem pools live under dir.
func DefaultCatalog(dir string) *Catalog {
	return NewCatalog().
		Register(domain.BackendArray, func(_ string, ttl time.Duration) (ports.CachePool, error) {
			return NewArray(ttl), nil
		}).
		Register(domain.BackendAPCu, func(namespace string, ttl time.Duration) (ports.CachePool, error) {
			return NewAPCu(namespace, ttl), nil
		}).
		Register(domain.BackendFilesystem, func(namespace string, ttl time.Duration) (ports.CachePool, error) {
			return NewFilesystem(dir, namespace, ttl)
		})
}

// Register adds or replaces the factory for kind and returns the catalog for chaining.
func (c *Catalog) Register(kind domain.BackendKind, factory Factory) *Catalog {
	c.factories[kind] = factory
	return c
}

// Available reports whether the catalog can open pools of kind.
func (c *Catalog) Available(kind domain.BackendKind) bool {
	_, ok := c.factories[kind]
	return ok
}

// Open builds a pool of kind. ttl is in seconds.
func (c *Catalog) Open(kind domain.BackendKind, namespace string, ttl int) (ports.CachePool, error) {
	factory, ok := c.factories[kind]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrBackendUnavailable, "cannot open cache pool"), "backend", kind.String())
	}
	if err := checkNamespace(namespace); err != nil {
		return nil, err
	}
	if ttl < 0 {
		ttl = 0
	}

	p, err := factory(namespace, time.Duration(ttl)*time.Second)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open cache pool"), "backend", kind.String())
	}
	return p, nil
}

func checkNamespace(namespace string) error {
	if namespace == "" || namespace == "." || namespace == ".." || strings.ContainsAny(namespace, `/\`) {
		return zerr.With(zerr.New("invalid cache namespace"), "namespace", namespace)
	}
	return nil
}
