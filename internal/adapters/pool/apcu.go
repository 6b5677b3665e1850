package pool

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"
)

// segment is shared by every APCu pool in the process.
var segment = struct {
	mu      sync.RWMutex
	entries map[string]entry
}{entries: make(map[string]entry)}

// APCu is a pool backed by the process-wide shared segment.
// Pools with the same namespace see each other's entries.
type APCu struct {
	prefix string
	ttl    time.Duration
}

// NewAPCu returns a pool over the shared segment partitioned by namespace.
func NewAPCu(namespace string, ttl time.Duration) *APCu {
	return &APCu{prefix: namespace + ":", ttl: ttl}
}

// Get returns the value stored under key.
func (a *APCu) Get(_ context.Context, key string) ([]byte, bool, error) {
	k := a.prefix + key

	segment.mu.RLock()
	e, ok := segment.entries[k]
	segment.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if e.expired(time.Now()) {
		segment.mu.Lock()
		if cur, ok := segment.entries[k]; ok && cur.expired(time.Now()) {
			delete(segment.entries, k)
		}
		segment.mu.Unlock()
		return nil, false, nil
	}
	return slices.Clone(e.value), true, nil
}

// Set stores value under key.
func (a *APCu) Set(_ context.Context, key string, value []byte) error {
	segment.mu.Lock()
	defer segment.mu.Unlock()
	segment.entries[a.prefix+key] = newEntry(value, a.ttl)
	return nil
}

// Delete removes key.
func (a *APCu) Delete(_ context.Context, key string) error {
	segment.mu.Lock()
	defer segment.mu.Unlock()
	delete(segment.entries, a.prefix+key)
	return nil
}

// Clear removes the entries of this namespace only.
func (a *APCu) Clear(_ context.Context) error {
	segment.mu.Lock()
	defer segment.mu.Unlock()
	for k := range segment.entries {
		if strings.HasPrefix(k, a.prefix) {
			delete(segment.entries, k)
		}
	}
	return nil
}
