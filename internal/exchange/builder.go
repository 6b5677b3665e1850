// Package exchange holds the runtime builder the wiring targets and the Swap it produces.
package exchange

import (
	"slices"

	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder accumulates providers and cache settings.
type Builder struct {
	options   domain.Options
	providers []domain.Provider
	pool      ports.CachePool
}

// NewBuilder returns a builder with the given options.
func NewBuilder(options domain.Options) *Builder {
	return &Builder{options: options.Clone()}
}

// Add registers a provider. Providers are queried in the order they were added.
func (b *Builder) Add(name string, options domain.Options) *Builder {
	b.providers = append(b.providers, domain.Provider{Name: name, Options: options.Clone()})
	return b
}

// Configure replaces the builder options.
func (b *Builder) Configure(options domain.Options) *Builder {
	b.options = options.Clone()
	return b
}

// UseCachePool sets the pool provider results are memoized in.
func (b *Builder) UseCachePool(pool ports.CachePool) *Builder {
	b.pool = pool
	return b
}

// Build returns the Swap. At least one provider is required.
func (b *Builder) Build() (*Swap, error) {
	if len(b.providers) == 0 {
		return nil, zerr.Wrap(domain.ErrNoProviders, "cannot build swap")
	}

	ttl, _ := b.options.TTL()
	return &Swap{
		providers: slices.Clone(b.providers),
		ttl:       ttl,
		pool:      b.pool,
	}, nil
}
