// Package ratelimit implements fixed-window request counting keyed by an
// identity string, over a pluggable entry store.
package ratelimit

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"
)

// Entry is the counter state for one key.
type Entry struct {
	Count   int       `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

// Store holds entries by key. Implementations should drop entries once their
// ResetAt has passed so that idle keys do not accumulate.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
	Delete(ctx context.Context, key string) error
}

// Result is the outcome of a single Check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

const lockStripes = 64

// Limiter admits at most limit requests per key per window.
// Updates for a key are serialized within the process; when the store is
// shared between instances each instance still counts independently of the
// others' in-flight updates, so cross-instance limits are approximate.
type Limiter struct {
	store Store
	now   func() time.Time
	locks [lockStripes]sync.Mutex
}

func New(store Store) *Limiter {
	return &Limiter{store: store, now: time.Now}
}

// NewWithClock is New with an injectable clock.
func NewWithClock(store Store, now func() time.Time) *Limiter {
	return &Limiter{store: store, now: now}
}

// Check records a request for key and reports whether it is within the limit.
func (l *Limiter) Check(ctx context.Context, key string, limit int, window time.Duration) (Result, error) {
	mu := l.lockFor(key)
	mu.Lock()
	defer mu.Unlock()

	now := l.now()

	entry, found, err := l.store.Get(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("reading rate limit entry: %w", err)
	}

	if !found || !now.Before(entry.ResetAt) {
		entry = Entry{Count: 1, ResetAt: now.Add(window)}
		if err := l.store.Set(ctx, key, entry); err != nil {
			return Result{}, fmt.Errorf("resetting rate limit entry: %w", err)
		}
		return Result{Allowed: true, Remaining: max(limit-1, 0), ResetAt: entry.ResetAt}, nil
	}

	if entry.Count >= limit {
		return Result{Allowed: false, Remaining: 0, ResetAt: entry.ResetAt}, nil
	}

	entry.Count++
	if err := l.store.Set(ctx, key, entry); err != nil {
		return Result{}, fmt.Errorf("incrementing rate limit entry: %w", err)
	}

	return Result{Allowed: true, Remaining: limit - entry.Count, ResetAt: entry.ResetAt}, nil
}

// Reset forgets the counter for key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	mu := l.lockFor(key)
	mu.Lock()
	defer mu.Unlock()

	return l.store.Delete(ctx, key)
}

func (l *Limiter) lockFor(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &l.locks[h.Sum32()%lockStripes]
}
