package exchange

import (
	"context"
	"slices"
	"time"

	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Swap is the configured conversion facade.
type Swap struct {
	providers []domain.Provider
	ttl       int
	pool      ports.CachePool
}

// Providers returns the providers in registration order.
func (s *Swap) Providers() []domain.Provider {
	return slices.Clone(s.providers)
}

// TTL returns the configured cache lifetime, or zero when none was configured.
func (s *Swap) TTL() time.Duration {
	return time.Duration(s.ttl) * time.Second
}

// CachePool returns the pool in use, or nil.
func (s *Swap) CachePool() ports.CachePool {
	return s.pool
}

// Remember returns the cached value for key, calling fetch and storing its result on a miss.
// Without a pool fetch is always called.
func (s *Swap) Remember(ctx context.Context, key string, fetch func(context.Context) ([]byte, error)) ([]byte, error) {
	if s.pool == nil {
		return fetch(ctx)
	}

	value, ok, err := s.pool.Get(ctx, key)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache pool"), "key", key)
	}
	if ok {
		return value, nil
	}

	value, err = fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.pool.Set(ctx, key, value); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to write cache pool"), "key", key)
	}
	return value, nil
}
