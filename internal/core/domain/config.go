// Package domain contains the core models for wiring the swap builder: the validated
// configuration, the wiring plan and the service definitions it is applied to.
package domain

import (
	"maps"
	"slices"
)

const (
	// DefaultCacheTTL is the cache lifetime in seconds used when none is configured.
	DefaultCacheTTL = 3600

	// CacheNamespace is the namespace every built-in cache pool is created with.
	CacheNamespace = "swap"

	// BuilderID is the registry id of the swap builder definition.
	BuilderID = "swap.builder"

	// BuilderClass is the class recorded on the builder definition.
	BuilderClass = "swap.builder"

	// CacheID is the registry id a built-in cache pool is registered under.
	CacheID = "swap.cache"
)

// Reserved reports whether id belongs to a definition the wiring creates itself.
func Reserved(id string) bool {
	return id == BuilderID || id == CacheID
}

// Config is the validated swap configuration.
type Config struct {
	Cache     CacheConfig
	Providers []Provider
}

// CacheConfig holds the cache section of the configuration.
type CacheConfig struct {
	// TTL is the cache lifetime in seconds.
	TTL int

	// Type is a built-in backend name or the id of a registered service.
	// An empty Type means no cache is configured.
	Type string
}

// Enabled reports whether a cache target was configured.
func (c CacheConfig) Enabled() bool {
	return c.Type != ""
}

// Provider is a named rate provider with its opaque options.
type Provider struct {
	Name    string
	Options Options
}

// Provider returns the provider with the given name.
func (c *Config) Provider(name string) (Provider, bool) {
	for _, p := range c.Providers {
		if p.Name == name {
			return p, true
		}
	}
	return Provider{}, false
}

// ProviderNames returns the provider names in configuration order.
func (c *Config) ProviderNames() []string {
	names := make([]string, len(c.Providers))
	for i, p := range c.Providers {
		names[i] = p.Name
	}
	return names
}

// Options holds scalar options keyed by name.
// Values are string, int, float64, bool or nil.
type Options map[string]any

// Clone returns a shallow copy of the options. A nil receiver yields an empty map.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	maps.Copy(out, o)
	return out
}

// Keys returns the option names in sorted order.
func (o Options) Keys() []string {
	return slices.Sorted(maps.Keys(o))
}

// TTL returns the "ttl" option when it holds an integer.
func (o Options) TTL() (int, bool) {
	ttl, ok := o["ttl"].(int)
	return ttl, ok
}
