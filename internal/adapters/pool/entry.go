package pool

import (
	"slices"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func newEntry(value []byte, ttl time.Duration) entry {
	e := entry{value: slices.Clone(value)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	return e
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
