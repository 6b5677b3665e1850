// Package wirer turns a validated configuration into builder wiring and applies it to a registry.
package wirer

import (
	"strconv"

	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Wirer computes and applies wiring plans.
type Wirer struct {
	catalog ports.BackendCatalog
	logger  ports.Logger
}

// New creates a Wirer. The catalog decides which built-in backends are available.
func New(catalog ports.BackendCatalog, log ports.Logger) *Wirer {
	return &Wirer{catalog: catalog, logger: log}
}

// Wire plans cfg against reg and applies the plan. On error reg is left untouched.
func (w *Wirer) Wire(cfg *domain.Config, reg ports.ServiceRegistry) (*domain.Plan, error) {
	plan, err := w.Plan(cfg, reg)
	if err != nil {
		return nil, err
	}
	if err := w.Apply(plan, reg); err != nil {
		return nil, err
	}

	w.logger.Info("wired " + strconv.Itoa(len(cfg.Providers)) + " providers onto " + domain.BuilderID)
	return plan, nil
}

// Plan computes the wiring for cfg. It only reads reg.
func (w *Wirer) Plan(cfg *domain.Config, reg ports.ServiceRegistry) (*domain.Plan, error) {
	if len(cfg.Providers) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingRequired, "at least one provider is required"), "path", "providers")
	}
	if cfg.Cache.TTL < 0 {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidType, "ttl must not be negative"), "path", "cache.ttl")
		return nil, zerr.With(err, "value", cfg.Cache.TTL)
	}

	plan := &domain.Plan{Calls: make([]domain.BuilderCall, 0, len(cfg.Providers)+2)}
	for _, p := range cfg.Providers {
		plan.Calls = append(plan.Calls, domain.AddCall(p))
	}

	if !cfg.Cache.Enabled() {
		return plan, nil
	}

	cache, err := w.cacheTarget(cfg.Cache, reg)
	if err != nil {
		return nil, err
	}
	plan.Cache = cache
	plan.Calls = append(plan.Calls,
		domain.ConfigureCall(cache.TTL),
		domain.UseCachePoolCall(cache.ID),
	)

	return plan, nil
}

func (w *Wirer) cacheTarget(cache domain.CacheConfig, reg ports.ServiceRegistry) (*domain.CacheRegistration, error) {
	if kind, ok := domain.BuiltinBackend(cache.Type); ok {
		if !w.catalog.Available(kind) {
			err := zerr.With(zerr.Wrap(domain.ErrBackendUnavailable, "cache backend is not available"), "path", "cache.type")
			return nil, zerr.With(err, "value", cache.Type)
		}
		if reg.HasDefinition(cache.Type) {
			w.logger.Warn("built-in cache backend " + cache.Type + " shadows the registered service with the same id")
		}
		return &domain.CacheRegistration{
			Kind:      kind,
			ID:        domain.CacheID,
			Namespace: domain.CacheNamespace,
			TTL:       cache.TTL,
		}, nil
	}

	if !reg.HasDefinition(cache.Type) {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownCacheType, "cache type is neither built in nor registered"), "path", "cache.type")
		return nil, zerr.With(err, "value", cache.Type)
	}
	if err := checkCachePool(cache.Type, reg); err != nil {
		return nil, err
	}

	return &domain.CacheRegistration{Kind: domain.BackendReference, ID: cache.Type, TTL: cache.TTL}, nil
}

func checkCachePool(id string, reg ports.ServiceRegistry) error {
	def, err := reg.Definition(id)
	if err != nil {
		return zerr.Wrap(err, "failed to read cache service")
	}
	if !def.Provides(domain.CapabilityCachePool) {
		err := zerr.With(zerr.Wrap(domain.ErrCapabilityMismatch, "registered service cannot be used as cache pool"), "id", id)
		return zerr.With(err, "class", def.Class)
	}
	return nil
}

// Apply records plan on the builder definition and registers the built-in cache pool.
// Every check runs before the first write, so a failing plan leaves reg unchanged.
func (w *Wirer) Apply(plan *domain.Plan, reg ports.ServiceRegistry) error {
	current, err := reg.Definition(domain.BuilderID)
	if err != nil {
		return zerr.Wrap(err, "failed to read builder definition")
	}
	builder := current.Clone()

	for _, call := range plan.Calls {
		switch call.Method {
		case domain.MethodAdd:
			builder.AddMethodCall(string(domain.MethodAdd), call.Name, call.Options.Clone())
		case domain.MethodConfigure:
			if err := builder.ReplaceArgument(0, call.Options.Clone()); err != nil {
				return zerr.Wrap(err, "failed to configure builder")
			}
		case domain.MethodUseCachePool:
			builder.AddMethodCall(string(domain.MethodUseCachePool), call.Reference)
		default:
			return zerr.With(zerr.Wrap(domain.ErrUnsupportedCall, "cannot apply builder call"), "method", string(call.Method))
		}
	}

	var cacheDef *domain.Definition
	if plan.Cache != nil {
		if plan.Cache.Kind.Builtin() {
			cacheDef = domain.NewDefinition(plan.Cache.Kind.Class(), plan.Cache.Args()...).
				WithCapabilities(domain.CapabilityCachePool)
		} else if err := checkCachePool(plan.Cache.ID, reg); err != nil {
			return err
		}
	}

	if cacheDef != nil {
		reg.SetDefinition(plan.Cache.ID, cacheDef)
	}
	reg.SetDefinition(domain.BuilderID, builder)
	return nil
}
