package pool_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swap/internal/adapters/pool"
	"go.trai.ch/swap/internal/core/ports"
)

type backend struct {
	name string
	open func(t *testing.T, namespace string, ttl time.Duration) ports.CachePool
}

func backends() []backend {
	return []backend{
		{
			name: "array",
			open: func(_ *testing.T, _ string, ttl time.Duration) ports.CachePool {
				return pool.NewArray(ttl)
			},
		},
		{
			name: "apcu",
			open: func(_ *testing.T, namespace string, ttl time.Duration) ports.CachePool {
				return pool.NewAPCu(namespace, ttl)
			},
		},
		{
			name: "filesystem",
			open: func(t *testing.T, namespace string, ttl time.Duration) ports.CachePool {
				t.Helper()
				p, err := pool.NewFilesystem(t.TempDir(), namespace, ttl)
				require.NoError(t, err)
				return p
			},
		},
	}
}

func TestPools_RoundTrip(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			p := b.open(t, "roundtrip-"+b.name, 0)

			_, ok, err := p.Get(ctx, "EUR/USD")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, p.Set(ctx, "EUR/USD", []byte("1.0842")))
			got, ok, err := p.Get(ctx, "EUR/USD")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("1.0842"), got)

			require.NoError(t, p.Set(ctx, "EUR/USD", []byte("1.0850")))
			got, ok, err = p.Get(ctx, "EUR/USD")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("1.0850"), got)

			require.NoError(t, p.Delete(ctx, "EUR/USD"))
			_, ok, err = p.Get(ctx, "EUR/USD")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, p.Delete(ctx, "EUR/USD"))
		})
	}
}

func TestPools_Clear(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			p := b.open(t, "clear-"+b.name, 0)

			require.NoError(t, p.Set(ctx, "a", []byte("1")))
			require.NoError(t, p.Set(ctx, "b", []byte("2")))
			require.NoError(t, p.Clear(ctx))

			for _, key := range []string{"a", "b"} {
				_, ok, err := p.Get(ctx, key)
				require.NoError(t, err)
				assert.False(t, ok, key)
			}
		})
	}
}

func TestPools_ValuesAreCopied(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			p := b.open(t, "copy-"+b.name, 0)

			value := []byte("abc")
			require.NoError(t, p.Set(ctx, "k", value))
			value[0] = 'x'

			got, ok, err := p.Get(ctx, "k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("abc"), got)

			got[1] = 'y'
			again, _, err := p.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("abc"), again)
		})
	}
}

func TestPools_Expiry(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				ctx := context.Background()
				p := b.open(t, "expiry-"+b.name, time.Minute)

				require.NoError(t, p.Set(ctx, "k", []byte("v")))

				time.Sleep(59 * time.Second)
				_, ok, err := p.Get(ctx, "k")
				require.NoError(t, err)
				assert.True(t, ok)

				time.Sleep(time.Second)
				_, ok, err = p.Get(ctx, "k")
				require.NoError(t, err)
				assert.False(t, ok)
			})
		})
	}
}

func TestPools_ZeroTTLNeverExpires(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				ctx := context.Background()
				p := b.open(t, "forever-"+b.name, 0)

				require.NoError(t, p.Set(ctx, "k", []byte("v")))
				time.Sleep(24 * 365 * time.Hour)

				got, ok, err := p.Get(ctx, "k")
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, []byte("v"), got)
			})
		})
	}
}

func TestArray_InstancesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a, b := pool.NewArray(0), pool.NewArray(0)

	require.NoError(t, a.Set(ctx, "k", []byte("v")))
	_, ok, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAPCu_SharedByNamespace(t *testing.T) {
	ctx := context.Background()
	first := pool.NewAPCu("shared", 0)
	second := pool.NewAPCu("shared", 0)
	other := pool.NewAPCu("other", 0)

	require.NoError(t, first.Set(ctx, "k", []byte("v")))
	require.NoError(t, other.Set(ctx, "k", []byte("o")))

	got, ok, err := second.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, second.Clear(ctx))
	_, ok, err = first.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err = other.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("o"), got)
}
