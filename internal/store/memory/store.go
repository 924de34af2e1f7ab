// Package memory holds the five entity repositories. Each one is a keyed
// in-memory store guarded by its own lock; insertion order is preserved so
// listings are deterministic.
package memory

import (
	"fmt"
	"sync"
	"time"
)

// store is the shared backing for every repository: a map keyed by the
// entity's natural key plus the key order of first insertion. Adding an
// existing key overwrites the entity but keeps its original position.
type store[T any] struct {
	mu      sync.RWMutex
	key     func(T) string
	missing error
	items   map[string]T
	order   []string
}

func newStore[T any](key func(T) string, missing error) *store[T] {
	return &store[T]{
		key:     key,
		missing: missing,
		items:   make(map[string]T),
	}
}

func (s *store[T]) add(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := s.key(v)
	_, exists := s.items[k]
	s.items[k] = v
	if !exists {
		s.order = append(s.order, k)
	}
	return !exists
}

func (s *store[T]) get(k string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[k]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%q: %w", k, s.missing)
	}
	return v, nil
}

func (s *store[T]) update(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := s.key(v)
	if _, ok := s.items[k]; !ok {
		return fmt.Errorf("%q: %w", k, s.missing)
	}
	s.items[k] = v
	return nil
}

func (s *store[T]) remove(k string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; !ok {
		return fmt.Errorf("%q: %w", k, s.missing)
	}
	delete(s.items, k)
	for i, key := range s.order {
		if key == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *store[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}

func (s *store[T]) filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []T
	for _, k := range s.order {
		if v := s.items[k]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
