package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// BackendKind identifies the cache pool a plan wires into the builder.
type BackendKind int

const (
	// BackendArray is the per-instance in-memory pool.
	BackendArray BackendKind = iota + 1
	// BackendAPCu is the process-wide shared-memory pool.
	BackendAPCu
	// BackendFilesystem is the on-disk pool.
	BackendFilesystem
	// BackendReference is a pool registered by the host under its own id.
	BackendReference
)

var builtinBackends = map[string]BackendKind{
	"array":      BackendArray,
	"apcu":       BackendAPCu,
	"filesystem": BackendFilesystem,
}

// BuiltinBackend maps a configured cache type to a built-in backend.
// The match is exact and case-sensitive.
func BuiltinBackend(name string) (BackendKind, bool) {
	kind, ok := builtinBackends[name]
	return kind, ok
}

// BackendForClass maps a definition class back to its built-in backend.
func BackendForClass(class string) (BackendKind, bool) {
	for _, kind := range builtinBackends {
		if kind.Class() == class {
			return kind, true
		}
	}
	return 0, false
}

// Builtin reports whether the kind is constructed by this module.
func (k BackendKind) Builtin() bool {
	return k >= BackendArray && k <= BackendFilesystem
}

// String returns the configuration name of the backend.
func (k BackendKind) String() string {
	switch k {
	case BackendArray:
		return "array"
	case BackendAPCu:
		return "apcu"
	case BackendFilesystem:
		return "filesystem"
	case BackendReference:
		return "reference"
	default:
		return fmt.Sprintf("BackendKind(%d)", int(k))
	}
}

// Class returns the definition class registered for a built-in backend.
func (k BackendKind) Class() string {
	if !k.Builtin() {
		return ""
	}
	return "swap.pool." + k.String()
}

// MarshalYAML renders the kind by name.
func (k BackendKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Reference points at another definition in the registry.
type Reference string

// CacheRegistration describes the cache pool the builder will use.
type CacheRegistration struct {
	Kind BackendKind `yaml:"kind"`

	// ID is CacheID for built-in kinds and the referenced service id otherwise.
	ID string `yaml:"id"`

	// Namespace is the first constructor argument of built-in kinds.
	Namespace string `yaml:"namespace,omitempty"`

	TTL int `yaml:"ttl"`
}

// Args returns the constructor arguments of a built-in registration.
func (r CacheRegistration) Args() []any {
	if !r.Kind.Builtin() {
		return nil
	}
	return []any{r.Namespace, r.TTL}
}

// Method names a call recorded on the builder.
type Method string

const (
	MethodAdd          Method = "add"
	MethodConfigure    Method = "configure"
	MethodUseCachePool Method = "useCachePool"
)

// BuilderCall is one instruction for the builder definition.
type BuilderCall struct {
	Method    Method    `yaml:"method"`
	Name      string    `yaml:"name,omitempty"`
	Options   Options   `yaml:"options,omitempty"`
	Reference Reference `yaml:"reference,omitempty"`
}

// AddCall returns the call registering a provider.
func AddCall(p Provider) BuilderCall {
	return BuilderCall{Method: MethodAdd, Name: p.Name, Options: p.Options.Clone()}
}

// ConfigureCall returns the call setting the builder ttl.
func ConfigureCall(ttl int) BuilderCall {
	return BuilderCall{Method: MethodConfigure, Options: Options{"ttl": ttl}}
}

// UseCachePoolCall returns the call pointing the builder at a cache pool.
func UseCachePoolCall(id string) BuilderCall {
	return BuilderCall{Method: MethodUseCachePool, Reference: Reference(id)}
}

// Plan is the full set of wiring instructions computed from a Config.
type Plan struct {
	Cache *CacheRegistration `yaml:"cache,omitempty"`
	Calls []BuilderCall      `yaml:"calls"`
}

// CallsFor returns the calls with the given method, in order.
func (p *Plan) CallsFor(method Method) []BuilderCall {
	var out []BuilderCall
	for _, c := range p.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Fingerprint returns a stable hash of the plan.
func (p *Plan) Fingerprint() string {
	h := xxhash.New()

	if p.Cache != nil {
		_, _ = fmt.Fprintf(h, "%s|%s|%s|%d", p.Cache.Kind, p.Cache.ID, p.Cache.Namespace, p.Cache.TTL)
	}
	_, _ = h.Write([]byte{0})

	for _, c := range p.Calls {
		_, _ = h.WriteString(string(c.Method))
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(c.Name)
		_, _ = h.Write([]byte{0})
		for _, k := range c.Options.Keys() {
			_, _ = fmt.Fprintf(h, "%s=%T:%v", k, c.Options[k], c.Options[k])
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.WriteString(string(c.Reference))
		_, _ = h.Write([]byte{0, 0})
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
