package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swap/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func samplePlan() *domain.Plan {
	return &domain.Plan{
		Cache: &domain.CacheRegistration{
			Kind:      domain.BackendArray,
			ID:        domain.CacheID,
			Namespace: domain.CacheNamespace,
			TTL:       60,
		},
		Calls: []domain.BuilderCall{
			domain.AddCall(domain.Provider{Name: "fixer", Options: domain.Options{"access_key": "abc"}}),
			domain.AddCall(domain.Provider{Name: "ecb"}),
			domain.ConfigureCall(60),
			domain.UseCachePoolCall(domain.CacheID),
		},
	}
}

func TestBuiltinBackend(t *testing.T) {
	tests := []struct {
		name string
		kind domain.BackendKind
		ok   bool
	}{
		{name: "array", kind: domain.BackendArray, ok: true},
		{name: "apcu", kind: domain.BackendAPCu, ok: true},
		{name: "filesystem", kind: domain.BackendFilesystem, ok: true},
		{name: "Array", ok: false},
		{name: "redis", ok: false},
		{name: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := domain.BuiltinBackend(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestBackendKind_Class(t *testing.T) {
	assert.Equal(t, "swap.pool.filesystem", domain.BackendFilesystem.Class())
	assert.Empty(t, domain.BackendReference.Class())

	kind, ok := domain.BackendForClass("swap.pool.apcu")
	require.True(t, ok)
	assert.Equal(t, domain.BackendAPCu, kind)

	_, ok = domain.BackendForClass("app.cache")
	assert.False(t, ok)
}

func TestCacheRegistration_Args(t *testing.T) {
	reg := domain.CacheRegistration{Kind: domain.BackendAPCu, ID: domain.CacheID, Namespace: "swap", TTL: 30}
	assert.Equal(t, []any{"swap", 30}, reg.Args())

	ref := domain.CacheRegistration{Kind: domain.BackendReference, ID: "app.cache", TTL: 30}
	assert.Nil(t, ref.Args())
}

func TestPlan_CallsFor(t *testing.T) {
	plan := samplePlan()

	adds := plan.CallsFor(domain.MethodAdd)
	require.Len(t, adds, 2)
	assert.Equal(t, "fixer", adds[0].Name)
	assert.Equal(t, "ecb", adds[1].Name)

	configure := plan.CallsFor(domain.MethodConfigure)
	require.Len(t, configure, 1)
	ttl, ok := configure[0].Options.TTL()
	require.True(t, ok)
	assert.Equal(t, 60, ttl)
}

func TestPlan_Fingerprint(t *testing.T) {
	a, b := samplePlan(), samplePlan()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)

	b.Cache.TTL = 61
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c := samplePlan()
	c.Calls[0].Options["access_key"] = "xyz"
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	d := samplePlan()
	d.Calls[0], d.Calls[1] = d.Calls[1], d.Calls[0]
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}

func TestPlan_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(samplePlan())
	require.NoError(t, err)

	assert.Contains(t, string(out), "kind: array")
	assert.Contains(t, string(out), "method: useCachePool")
	assert.Contains(t, string(out), "reference: swap.cache")
}

func TestAddCall_CopiesOptions(t *testing.T) {
	opts := domain.Options{"access_key": "abc"}
	call := domain.AddCall(domain.Provider{Name: "fixer", Options: opts})

	opts["access_key"] = "changed"
	assert.Equal(t, "abc", call.Options["access_key"])
}

func TestOptions(t *testing.T) {
	var nilOpts domain.Options
	assert.NotNil(t, nilOpts.Clone())

	opts := domain.Options{"b": 1, "a": "x", "ttl": "60"}
	assert.Equal(t, []string{"a", "b", "ttl"}, opts.Keys())

	_, ok := opts.TTL()
	assert.False(t, ok, "string ttl is not an integer")
}

func TestDefinition_ReplaceArgument(t *testing.T) {
	def := domain.NewDefinition(domain.BuilderClass, domain.Options{})

	require.NoError(t, def.ReplaceArgument(0, domain.Options{"ttl": 60}))
	assert.Equal(t, domain.Options{"ttl": 60}, def.Args[0])

	err := def.ReplaceArgument(1, domain.Options{})
	require.ErrorIs(t, err, domain.ErrArgumentOutOfRange)
	assert.True(t, domain.IsWiringError(err))
}

func TestDefinition_Clone(t *testing.T) {
	def := domain.NewDefinition("app.cache", "ns").
		WithCapabilities(domain.CapabilityCachePool, domain.CapabilityCachePool).
		AddMethodCall("add", "ecb", domain.Options{})
	require.Len(t, def.Capabilities, 1)

	clone := def.Clone()
	clone.Args[0] = "other"
	clone.AddMethodCall("add", "fixer", domain.Options{})
	clone.Calls[0].Args[0] = "changed"

	assert.Equal(t, "ns", def.Args[0])
	require.Len(t, def.Calls, 1)
	assert.Equal(t, "ecb", def.Calls[0].Args[0])
	assert.True(t, clone.Provides(domain.CapabilityCachePool))

	empty := domain.NewDefinition(domain.BuilderClass).Clone()
	assert.Nil(t, empty.Calls)
}

func TestReserved(t *testing.T) {
	assert.True(t, domain.Reserved(domain.BuilderID))
	assert.True(t, domain.Reserved(domain.CacheID))
	assert.False(t, domain.Reserved("app.cache"))
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, domain.IsValidationError(domain.ErrDuplicateKey))
	assert.False(t, domain.IsWiringError(domain.ErrDuplicateKey))
	assert.True(t, domain.IsWiringError(domain.ErrCapabilityMismatch))
	assert.False(t, domain.IsValidationError(domain.ErrNoProviders))
	assert.False(t, domain.IsWiringError(domain.ErrNoProviders))
}
