package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swap/cmd/swap/commands"
	"go.trai.ch/swap/internal/adapters/config"
	"go.trai.ch/swap/internal/adapters/pool"
	"go.trai.ch/swap/internal/adapters/registry"
	"go.trai.ch/swap/internal/adapters/telemetry"
	"go.trai.ch/swap/internal/app"
	"go.trai.ch/swap/internal/build"
	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports/mocks"
	"go.trai.ch/swap/internal/engine/resolver"
	"go.trai.ch/swap/internal/engine/wirer"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

type harness struct {
	registry *registry.Registry
	dir      string
	out      *bytes.Buffer
	cli      *commands.CLI
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	reg := registry.NewDefault()
	catalog := pool.DefaultCatalog(filepath.Join(dir, "pools"))
	metrics := telemetry.NewMetrics()
	a := app.New(
		config.NewLoader(log),
		reg,
		wirer.New(catalog, log),
		resolver.New(reg, catalog, metrics),
		catalog,
		metrics,
		log,
	)

	out := &bytes.Buffer{}
	cli := commands.New(a)
	cli.SetOutput(out)
	return &harness{registry: reg, dir: dir, out: out, cli: cli}
}

func (h *harness) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(h.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func (h *harness) run(args ...string) error {
	h.cli.SetArgs(args)
	return h.cli.Execute(context.Background())
}

const arrayConfig = `
cache:
  ttl: 60
  type: array
providers:
  fixer:
    access_key: abc
  ecb: ~
`

func TestValidate_Success(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "swap.yaml", arrayConfig)

	require.NoError(t, h.run("validate", "-c", path))
	assert.Contains(t, h.out.String(), "configuration is valid")
	assert.Contains(t, h.out.String(), "providers: fixer, ecb")
	assert.Contains(t, h.out.String(), "cache: array (ttl 60s)")
}

func TestValidate_MergesRepeatedConfigFlags(t *testing.T) {
	h := newHarness(t)
	base := h.write(t, "base.yaml", "providers:\n  ecb: ~\n")
	extra := h.write(t, "extra.yaml", "providers:\n  fixer: {}\n")

	require.NoError(t, h.run("validate", "-c", base, "--config", extra))
	assert.Contains(t, h.out.String(), "providers: ecb, fixer")
	assert.Contains(t, h.out.String(), "cache: disabled")
}

func TestValidate_Invalid(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "swap.yaml", "cache:\n  lifetime: 60\nproviders:\n  ecb: ~\n")

	err := h.run("validate", "-c", path)
	require.ErrorIs(t, err, domain.ErrUnknownKey)
}

func TestPlan_PrintsYAML(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "swap.yaml", arrayConfig)

	require.NoError(t, h.run("plan", "-c", path))

	var plan struct {
		Cache struct {
			Kind string `yaml:"kind"`
			ID   string `yaml:"id"`
			TTL  int    `yaml:"ttl"`
		} `yaml:"cache"`
		Calls []struct {
			Method string `yaml:"method"`
			Name   string `yaml:"name"`
		} `yaml:"calls"`
	}
	require.NoError(t, yaml.Unmarshal(h.out.Bytes(), &plan))

	assert.Equal(t, "array", plan.Cache.Kind)
	assert.Equal(t, domain.CacheID, plan.Cache.ID)
	assert.Equal(t, 60, plan.Cache.TTL)
	require.Len(t, plan.Calls, 4)
	assert.Equal(t, "add", plan.Calls[0].Method)
	assert.Equal(t, "fixer", plan.Calls[0].Name)
	assert.Equal(t, "useCachePool", plan.Calls[3].Method)
	assert.Contains(t, h.out.String(), "# fingerprint: ")

	def, err := h.registry.Definition(domain.BuilderID)
	require.NoError(t, err)
	assert.Empty(t, def.Calls)
}

func TestCheck_WritesMetrics(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "swap.yaml", arrayConfig)
	metricsOut := filepath.Join(h.dir, "swap.prom")

	require.NoError(t, h.run("check", "-c", path, "--metrics-out", metricsOut))
	assert.Contains(t, h.out.String(), "cache: array (ttl 60s, round trip ok)")

	data, err := os.ReadFile(metricsOut)
	require.NoError(t, err)
	assert.Contains(t, string(data), "swap_wirings_total")
}

func TestCheck_MetricsWrittenOnFailure(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "swap.yaml", "cache:\n  type: redis\nproviders:\n  ecb: ~\n")
	metricsOut := filepath.Join(h.dir, "swap.prom")

	err := h.run("check", "-c", path, "--metrics-out", metricsOut)
	require.ErrorIs(t, err, domain.ErrUnknownCacheType)

	data, err := os.ReadFile(metricsOut)
	require.NoError(t, err)
	assert.Contains(t, string(data), `result="wiring_error"`)
}

func TestCheck_HostService(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "swap.yaml", "cache:\n  type: app.cache\nproviders:\n  ecb: ~\n")

	require.NoError(t, h.run("check", "-c", path, "--service", "app.cache=cache_pool"))
	assert.Contains(t, h.out.String(), "cache: reference")
}

func TestCheck_HostServiceWithoutCapability(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "swap.yaml", "cache:\n  type: app.mailer\nproviders:\n  ecb: ~\n")

	err := h.run("check", "-c", path, "--service", "app.mailer")
	require.ErrorIs(t, err, domain.ErrCapabilityMismatch)
}

func TestRoot_InvalidServiceDeclaration(t *testing.T) {
	h := newHarness(t)

	err := h.run("validate", "--service", "=cache_pool")
	require.ErrorIs(t, err, domain.ErrMissingRequired)
}

func TestRoot_ReservedServiceID(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "swap.yaml", arrayConfig)

	err := h.run("check", "-c", path, "--service", domain.BuilderID)
	require.ErrorIs(t, err, domain.ErrReservedID)

	def, err := h.registry.Definition(domain.BuilderID)
	require.NoError(t, err)
	assert.Equal(t, domain.BuilderClass, def.Class)
	assert.Empty(t, def.Calls)
}

func TestGraph(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("graph", "--mermaid"))
	assert.Contains(t, h.out.String(), "graph TD")
	assert.Contains(t, h.out.String(), "adapter.logger --> app.components")
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("version"))
	assert.Equal(t, "swap version "+build.Version+" (commit "+build.Commit+")\n", h.out.String())
}
