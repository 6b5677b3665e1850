// Package app implements the application layer for swap.
package app

import (
	"bytes"
	"context"

	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/swap/internal/engine/resolver"
	"go.trai.ch/swap/internal/engine/wirer"
	"go.trai.ch/zerr"
)

const checkValue = "swap"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     ports.ServiceRegistry
	wirer        *wirer.Wirer
	resolver     *resolver.Resolver
	catalog      ports.BackendCatalog
	metrics      ports.Metrics
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reg ports.ServiceRegistry,
	w *wirer.Wirer,
	res *resolver.Resolver,
	catalog ports.BackendCatalog,
	metrics ports.Metrics,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		registry:     reg,
		wirer:        w,
		resolver:     res,
		catalog:      catalog,
		metrics:      metrics,
		logger:       log,
	}
}

// Report summarizes a successful check run.
type Report struct {
	Plan        *domain.Plan
	Fingerprint string
	Providers   []string
	Cache       string
	TTL         int
	RoundTrip   bool
}

// Validate loads and validates the configuration files without touching the registry.
func (a *App) Validate(paths []string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(paths)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// Plan computes the wiring the configuration would produce without applying it.
func (a *App) Plan(paths []string) (*domain.Plan, error) {
	cfg, err := a.Validate(paths)
	if err != nil {
		return nil, err
	}

	plan, err := a.wirer.Plan(cfg, a.registry)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to plan wiring")
	}
	return plan, nil
}

// Boot validates the configuration and wires it onto the registry.
// Every attempt, failed or not, is recorded in the metrics.
func (a *App) Boot(ctx context.Context, paths []string) (*domain.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := a.Validate(paths)
	if err != nil {
		a.metrics.ObserveWiring(nil, err)
		return nil, err
	}

	plan, err := a.wirer.Wire(cfg, a.registry)
	a.metrics.ObserveWiring(plan, err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to wire services")
	}
	return plan, nil
}

// Check boots the configuration, materializes the swap and round-trips a value
// through its cache pool when one is configured.
func (a *App) Check(ctx context.Context, paths []string) (*Report, error) {
	plan, err := a.Boot(ctx, paths)
	if err != nil {
		return nil, err
	}

	swap, err := a.resolver.Swap()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build swap")
	}

	report := &Report{
		Plan:        plan,
		Fingerprint: plan.Fingerprint(),
		TTL:         int(swap.TTL().Seconds()),
	}
	for _, p := range swap.Providers() {
		report.Providers = append(report.Providers, p.Name)
	}
	if plan.Cache != nil {
		report.Cache = plan.Cache.Kind.String()
	}

	if pool := swap.CachePool(); pool != nil {
		if err := roundTrip(ctx, pool, "swap.check."+report.Fingerprint); err != nil {
			return nil, err
		}
		report.RoundTrip = true
		a.logger.Info("cache pool " + plan.Cache.ID + " round trip succeeded")
	}

	return report, nil
}

func roundTrip(ctx context.Context, pool ports.CachePool, key string) error {
	if err := pool.Set(ctx, key, []byte(checkValue)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache pool"), "key", key)
	}

	value, ok, err := pool.Get(ctx, key)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read cache pool"), "key", key)
	}
	if !ok || !bytes.Equal(value, []byte(checkValue)) {
		return zerr.With(zerr.New("cache pool lost the value"), "key", key)
	}

	if err := pool.Delete(ctx, key); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to delete from cache pool"), "key", key)
	}
	return nil
}

// DefineService registers a host service under id before boot.
// A service declaring the cache pool capability is backed by an in-memory pool.
// The builder and cache ids are reserved.
func (a *App) DefineService(id string, caps ...domain.Capability) error {
	if domain.Reserved(id) {
		return zerr.With(zerr.Wrap(domain.ErrReservedID, "cannot define service"), "id", id)
	}

	def := domain.NewDefinition(id).WithCapabilities(caps...)
	if def.Provides(domain.CapabilityCachePool) {
		def = def.WithFactory(func() (any, error) {
			return a.catalog.Open(domain.BackendArray, domain.CacheNamespace, 0)
		})
	}
	a.registry.SetDefinition(id, def)
	return nil
}

// SetLogLevel changes the logger verbosity when the logger supports it.
func (a *App) SetLogLevel(level string) error {
	leveled, ok := a.logger.(interface{ SetLevel(level string) error })
	if !ok {
		return nil
	}
	return leveled.SetLevel(level)
}

// WriteMetrics writes the collected metrics to path.
func (a *App) WriteMetrics(path string) error {
	return a.metrics.WriteTextfile(path)
}
