// pkg/memcache/ttl_store.go
package mem

import (
	"errors"
	"sync"
	"time"
)

var ErrMissing = errors.New("entry missing or expired")

type Store[V any] interface {
	Set(key string, value V, ttl time.Duration)

	// Get returns a copy of the value if present and not expired.
	Get(key string) (V, bool)

	// Update applies fn to the stored value under the write lock. The TTL is
	// left unchanged. Returns ErrMissing if the key is absent or expired, or
	// fn's error, in which case the stored value is not modified.
	Update(key string, fn func(*V) error) error

	Delete(key string)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLStore is an in-memory Store. Values are copied on the way in and out
// with the clone function so callers never share state with the cache.
type TTLStore[V any] struct {
	mu    sync.RWMutex
	data  map[string]entry[V]
	clone func(V) V
	now   func() time.Time
}

// NewTTLStore creates a store. A nil clone stores values as-is.
func NewTTLStore[V any](clone func(V) V) *TTLStore[V] {
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return &TTLStore[V]{
		data:  make(map[string]entry[V]),
		clone: clone,
		now:   time.Now,
	}
}

func (s *TTLStore[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     s.clone(value),
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero V
	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		return zero, false
	}
	return s.clone(e.value), true
}

func (s *TTLStore[V]) Update(key string, fn func(*V) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return ErrMissing
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		return ErrMissing
	}

	v := s.clone(e.value)
	if err := fn(&v); err != nil {
		return err
	}
	e.value = v
	s.data[key] = e
	return nil
}

func (s *TTLStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Sweep drops expired entries and returns how many were removed.
func (s *TTLStore[V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			n++
		}
	}
	return n
}
