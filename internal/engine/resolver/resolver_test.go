package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swap/internal/adapters/pool"
	"go.trai.ch/swap/internal/adapters/registry"
	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/swap/internal/core/ports/mocks"
	"go.trai.ch/swap/internal/engine/resolver"
	"go.trai.ch/swap/internal/engine/wirer"
	"go.uber.org/mock/gomock"
)

func config(cacheType string) *domain.Config {
	return &domain.Config{
		Cache: domain.CacheConfig{TTL: 60, Type: cacheType},
		Providers: []domain.Provider{
			{Name: "fixer", Options: domain.Options{"access_key": "abc"}},
			{Name: "ecb", Options: domain.Options{}},
		},
	}
}

func wire(t *testing.T, reg *registry.Registry, catalog ports.BackendCatalog, cfg *domain.Config) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	_, err := wirer.New(catalog, log).Wire(cfg, reg)
	require.NoError(t, err)
}

func TestResolver_EndToEnd(t *testing.T) {
	for _, cacheType := range []string{"array", "apcu", "filesystem"} {
		t.Run(cacheType, func(t *testing.T) {
			reg := registry.NewDefault()
			catalog := pool.DefaultCatalog(t.TempDir())
			cfg := config(cacheType)
			wire(t, reg, catalog, cfg)

			s, err := resolver.New(reg, catalog, nil).Swap()
			require.NoError(t, err)

			assert.Equal(t, cfg.Providers, s.Providers())
			assert.Equal(t, 60, int(s.TTL().Seconds()))
			require.NotNil(t, s.CachePool())

			ctx := context.Background()
			key := "resolver-end-to-end-" + cacheType
			require.NoError(t, s.CachePool().Set(ctx, key, []byte("1.08")))
			got, ok, err := s.CachePool().Get(ctx, key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("1.08"), got)
		})
	}
}

func TestResolver_NoCache(t *testing.T) {
	reg := registry.NewDefault()
	catalog := pool.DefaultCatalog(t.TempDir())
	wire(t, reg, catalog, config(""))

	s, err := resolver.New(reg, catalog, nil).Swap()
	require.NoError(t, err)
	assert.Nil(t, s.CachePool())
	assert.Zero(t, s.TTL())
	assert.Len(t, s.Providers(), 2)
}

func TestResolver_HostServicePool(t *testing.T) {
	hostPool := pool.NewArray(0)
	reg := registry.NewDefault()
	reg.SetDefinition("acme.pool", domain.NewDefinition("acme.Pool").
		WithCapabilities(domain.CapabilityCachePool).
		WithFactory(func() (any, error) { return hostPool, nil }))

	catalog := pool.DefaultCatalog(t.TempDir())
	wire(t, reg, catalog, config("acme.pool"))

	s, err := resolver.New(reg, catalog, nil).Swap()
	require.NoError(t, err)
	assert.Same(t, hostPool, s.CachePool())
}

func TestResolver_HostServiceIsNotAPool(t *testing.T) {
	reg := registry.NewDefault()
	reg.SetDefinition("acme.pool", domain.NewDefinition("acme.Pool").
		WithCapabilities(domain.CapabilityCachePool).
		WithFactory(func() (any, error) { return "not a pool", nil }))

	catalog := pool.DefaultCatalog(t.TempDir())
	wire(t, reg, catalog, config("acme.pool"))

	_, err := resolver.New(reg, catalog, nil).Swap()
	require.ErrorIs(t, err, domain.ErrCapabilityMismatch)
}

func TestResolver_HostServiceWithoutFactory(t *testing.T) {
	reg := registry.NewDefault()
	reg.SetDefinition("acme.pool", domain.NewDefinition("acme.Pool").WithCapabilities(domain.CapabilityCachePool))

	_, err := resolver.New(reg, pool.DefaultCatalog(t.TempDir()), nil).CachePool("acme.pool")
	require.ErrorIs(t, err, domain.ErrCapabilityMismatch)
}

func TestResolver_FactoryError(t *testing.T) {
	boom := errors.New("connection refused")
	reg := registry.New()
	reg.SetDefinition("acme.pool", domain.NewDefinition("acme.Pool").
		WithCapabilities(domain.CapabilityCachePool).
		WithFactory(func() (any, error) { return nil, boom }))

	_, err := resolver.New(reg, pool.DefaultCatalog(t.TempDir()), nil).CachePool("acme.pool")
	require.ErrorIs(t, err, boom)
}

func TestResolver_CachePoolIsMemoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().InstrumentPool("array", gomock.Any()).
		DoAndReturn(func(_ string, p ports.CachePool) ports.CachePool { return p }).
		Times(1)

	reg := registry.NewDefault()
	catalog := pool.DefaultCatalog(t.TempDir())
	wire(t, reg, catalog, config("array"))

	r := resolver.New(reg, catalog, metrics)
	first, err := r.CachePool(domain.CacheID)
	require.NoError(t, err)
	second, err := r.CachePool(domain.CacheID)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestResolver_BackendMissingFromCatalog(t *testing.T) {
	reg := registry.NewDefault()
	wire(t, reg, pool.DefaultCatalog(t.TempDir()), config("apcu"))

	_, err := resolver.New(reg, pool.NewCatalog(), nil).Swap()
	require.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestResolver_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *domain.Definition
		wantErr error
	}{
		{
			name:    "unsupported call",
			builder: domain.NewDefinition(domain.BuilderClass, domain.Options{}).AddMethodCall("removeProvider", "ecb"),
			wantErr: domain.ErrUnsupportedCall,
		},
		{
			name:    "malformed add",
			builder: domain.NewDefinition(domain.BuilderClass, domain.Options{}).AddMethodCall("add", "ecb"),
			wantErr: domain.ErrInvalidType,
		},
		{
			name:    "malformed useCachePool",
			builder: domain.NewDefinition(domain.BuilderClass, domain.Options{}).AddMethodCall("useCachePool", "swap.cache"),
			wantErr: domain.ErrInvalidType,
		},
		{
			name:    "options are not a mapping",
			builder: domain.NewDefinition(domain.BuilderClass, 3600),
			wantErr: domain.ErrInvalidType,
		},
		{
			name:    "no providers",
			builder: domain.NewDefinition(domain.BuilderClass, domain.Options{}),
			wantErr: domain.ErrNoProviders,
		},
		{
			name: "unknown pool reference",
			builder: domain.NewDefinition(domain.BuilderClass, domain.Options{}).
				AddMethodCall("add", "ecb", domain.Options{}).
				AddMethodCall("useCachePool", domain.Reference("missing")),
			wantErr: domain.ErrDefinitionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			reg.SetDefinition(domain.BuilderID, tt.builder)

			_, err := resolver.New(reg, pool.DefaultCatalog(t.TempDir()), nil).Swap()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolver_MissingBuilder(t *testing.T) {
	_, err := resolver.New(registry.New(), pool.NewCatalog(), nil).Builder()
	require.ErrorIs(t, err, domain.ErrDefinitionNotFound)
}
