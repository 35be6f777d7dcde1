package ratelimit

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps entries in process. Each entry expires at its ResetAt and
// is removed by the cache janitor.
type MemoryStore struct {
	cache *cache.Cache
	now   func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(cache.NoExpiration, cleanupInterval),
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	v, found := s.cache.Get(key)
	if !found {
		return Entry{}, false, nil
	}
	return v.(Entry), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry) error {
	s.cache.Set(key, entry, ttlUntil(entry.ResetAt, s.now()))
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// Len reports how many entries are currently held, including expired ones
// the janitor has not yet removed.
func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}

// ttlUntil never returns zero or a negative duration, which the caches treat
// as "default" or "never".
func ttlUntil(resetAt, now time.Time) time.Duration {
	ttl := resetAt.Sub(now)
	if ttl < time.Millisecond {
		ttl = time.Millisecond
	}
	return ttl
}
