package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// MemcachedStore shares entries between instances through memcached.
// Memcached expirations have one second granularity, so entries may outlive
// their ResetAt by up to a second; Limiter compares ResetAt itself.
type MemcachedStore struct {
	client *memcache.Client
	prefix string
	now    func() time.Time
}

var _ Store = (*MemcachedStore)(nil)

func NewMemcached(server string) *memcache.Client {
	return memcache.New(server)
}

func NewMemcachedStore(client *memcache.Client, prefix string) *MemcachedStore {
	return &MemcachedStore{client: client, prefix: prefix, now: time.Now}
}

func (s *MemcachedStore) Get(_ context.Context, key string) (Entry, bool, error) {
	item, err := s.client.Get(s.prefix + key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("getting key from memcached: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(item.Value, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("decoding entry: %w", err)
	}
	return entry, true, nil
}

func (s *MemcachedStore) Set(_ context.Context, key string, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding entry: %w", err)
	}

	seconds := int32(math.Ceil(ttlUntil(entry.ResetAt, s.now()).Seconds()))
	if err := s.client.Set(&memcache.Item{
		Key:        s.prefix + key,
		Value:      raw,
		Expiration: seconds,
	}); err != nil {
		return fmt.Errorf("setting key in memcached: %w", err)
	}
	return nil
}

func (s *MemcachedStore) Delete(_ context.Context, key string) error {
	err := s.client.Delete(s.prefix + key)
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return fmt.Errorf("deleting key from memcached: %w", err)
	}
	return nil
}
