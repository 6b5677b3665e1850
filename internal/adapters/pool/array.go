package pool

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Array is an in-memory pool owned by a single instance.
type Array struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]entry
}

// NewArray returns an empty Array pool.
func NewArray(ttl time.Duration) *Array {
	return &Array{ttl: ttl, entries: make(map[string]entry)}
}

// Get returns the value stored under key.
func (a *Array) Get(_ context.Context, key string) ([]byte, bool, error) {
	a.mu.RLock()
	e, ok := a.entries[key]
	a.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if e.expired(time.Now()) {
		a.mu.Lock()
		if cur, ok := a.entries[key]; ok && cur.expired(time.Now()) {
			delete(a.entries, key)
		}
		a.mu.Unlock()
		return nil, false, nil
	}
	return slices.Clone(e.value), true, nil
}

// Set stores value under key.
func (a *Array) Set(_ context.Context, key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries[key] = newEntry(value, a.ttl)
	return nil
}

// Delete removes key.
func (a *Array) Delete(_ context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entries, key)
	return nil
}

// Clear removes every entry.
func (a *Array) Clear(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.entries)
	return nil
}
