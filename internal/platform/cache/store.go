package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Stats counts lookups since the store was created.
type Stats struct {
	Hits          uint64
	Misses        uint64
	Invalidations uint64
	Entries       int
}

// Store is a TTL cache keyed by string with single-flight loading.
//
// Every invalidation bumps an epoch. A load that started before an
// invalidation returns its value to the caller but never writes it back, so a
// mutation followed by a read always observes the store of record.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	epoch   uint64
	flight  singleflight.Group

	hits          atomic.Uint64
	misses        atomic.Uint64
	invalidations atomic.Uint64
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(time.Now()) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && current.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: s.expiry()}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, keys ...string) {
	s.mu.Lock()
	s.epoch++
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		s.flight.Forget(key)
	}
	s.invalidations.Add(1)
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	forgotten := make([]string, 0)
	s.mu.Lock()
	s.epoch++
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
			forgotten = append(forgotten, key)
		}
	}
	s.mu.Unlock()

	for _, key := range forgotten {
		s.flight.Forget(key)
	}
	s.invalidations.Add(1)
}

func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		s.hits.Add(1)
		return value, nil
	}
	s.misses.Add(1)

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		s.mu.RLock()
		startEpoch := s.epoch
		s.mu.RUnlock()

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}

		s.mu.Lock()
		if s.epoch == startEpoch {
			s.entries[key] = entry{value: loaded, expiresAt: s.expiry()}
		}
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	size := len(s.entries)
	s.mu.RUnlock()

	return Stats{
		Hits:          s.hits.Load(),
		Misses:        s.misses.Load(),
		Invalidations: s.invalidations.Load(),
		Entries:       size,
	}
}

func (s *Store) expiry() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(s.ttl)
}
