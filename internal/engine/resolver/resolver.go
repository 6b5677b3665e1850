// Package resolver materializes wired definitions into a live builder and its cache pool.
package resolver

import (
	"sync"

	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/swap/internal/exchange"
	"go.trai.ch/zerr"
)

// Resolver builds the swap builder from the registry. Pools are memoized per id.
type Resolver struct {
	registry ports.ServiceRegistry
	catalog  ports.BackendCatalog
	metrics  ports.Metrics

	mu    sync.Mutex
	pools map[string]ports.CachePool
}

// New creates a Resolver. metrics may be nil.
func New(reg ports.ServiceRegistry, catalog ports.BackendCatalog, metrics ports.Metrics) *Resolver {
	return &Resolver{
		registry: reg,
		catalog:  catalog,
		metrics:  metrics,
		pools:    make(map[string]ports.CachePool),
	}
}

// Builder replays the calls recorded on the builder definition.
func (r *Resolver) Builder() (*exchange.Builder, error) {
	def, err := r.registry.Definition(domain.BuilderID)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve builder")
	}

	options := domain.Options{}
	if len(def.Args) > 0 {
		opts, ok := def.Args[0].(domain.Options)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidType, "builder options must be a mapping"), "class", def.Class)
		}
		options = opts
	}

	b := exchange.NewBuilder(options)
	for _, call := range def.Calls {
		switch domain.Method(call.Method) {
		case domain.MethodAdd:
			name, opts, err := addArgs(call)
			if err != nil {
				return nil, err
			}
			b.Add(name, opts)
		case domain.MethodUseCachePool:
			ref, ok := singleArg[domain.Reference](call)
			if !ok {
				return nil, callError(call)
			}
			pool, err := r.CachePool(string(ref))
			if err != nil {
				return nil, err
			}
			b.UseCachePool(pool)
		default:
			return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedCall, "cannot replay builder call"), "method", call.Method)
		}
	}

	return b, nil
}

// Swap builds the builder.
func (r *Resolver) Swap() (*exchange.Swap, error) {
	b, err := r.Builder()
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// CachePool opens the pool registered under id.
func (r *Resolver) CachePool(id string) (ports.CachePool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.pools[id]; ok {
		return p, nil
	}

	def, err := r.registry.Definition(id)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve cache pool")
	}

	var (
		p       ports.CachePool
		backend string
	)
	if kind, ok := domain.BackendForClass(def.Class); ok {
		p, err = r.openBuiltin(kind, def)
		backend = kind.String()
	} else {
		p, err = build(id, def)
		backend = domain.BackendReference.String()
	}
	if err != nil {
		return nil, err
	}

	if r.metrics != nil {
		p = r.metrics.InstrumentPool(backend, p)
	}
	r.pools[id] = p
	return p, nil
}

func (r *Resolver) openBuiltin(kind domain.BackendKind, def *domain.Definition) (ports.CachePool, error) {
	if len(def.Args) != 2 {
		return nil, zerr.With(zerr.Wrap(domain.ErrArgumentOutOfRange, "cache pool expects namespace and ttl"), "class", def.Class)
	}
	namespace, okNS := def.Args[0].(string)
	ttl, okTTL := def.Args[1].(int)
	if !okNS || !okTTL {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidType, "cache pool arguments have the wrong type"), "class", def.Class)
	}
	return r.catalog.Open(kind, namespace, ttl)
}

func build(id string, def *domain.Definition) (ports.CachePool, error) {
	if !def.Provides(domain.CapabilityCachePool) || def.Factory == nil {
		err := zerr.With(zerr.Wrap(domain.ErrCapabilityMismatch, "service cannot be built as cache pool"), "id", id)
		return nil, zerr.With(err, "class", def.Class)
	}

	product, err := def.Factory()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build service"), "id", id)
	}
	p, ok := product.(ports.CachePool)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrCapabilityMismatch, "service does not implement the cache pool port"), "id", id)
		return nil, zerr.With(err, "class", def.Class)
	}
	return p, nil
}

func addArgs(call domain.MethodCall) (string, domain.Options, error) {
	if len(call.Args) != 2 {
		return "", nil, callError(call)
	}
	name, ok := call.Args[0].(string)
	if !ok {
		return "", nil, callError(call)
	}
	opts, ok := call.Args[1].(domain.Options)
	if !ok {
		return "", nil, callError(call)
	}
	return name, opts, nil
}

func singleArg[T any](call domain.MethodCall) (T, bool) {
	var zero T
	if len(call.Args) != 1 {
		return zero, false
	}
	v, ok := call.Args[0].(T)
	return v, ok
}

func callError(call domain.MethodCall) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidType, "builder call has unexpected arguments"), "method", call.Method)
	return zerr.With(err, "args", len(call.Args))
}
