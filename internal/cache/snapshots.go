// Package cache memoizes computed values by name until they are explicitly
// invalidated. Entries never expire on their own.
package cache

import (
	"sort"
	"sync"
)

type Snapshots[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

func NewSnapshots[V any]() *Snapshots[V] {
	return &Snapshots[V]{entries: make(map[string]V)}
}

func (s *Snapshots[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *Snapshots[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. compute runs under the write lock, so concurrent misses compute once.
func (s *Snapshots[V]) GetOrCompute(key string, compute func() V) (V, bool) {
	if v, ok := s.Get(key); ok {
		return v, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.entries[key]; ok {
		return v, true
	}
	v := compute()
	s.entries[key] = v
	return v, false
}

// Delete reports whether an entry was removed.
func (s *Snapshots[V]) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// Clear drops every entry and returns how many were held.
func (s *Snapshots[V]) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	clear(s.entries)
	return n
}

func (s *Snapshots[V]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.entries))
	for k := range s.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s *Snapshots[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
