// Package store provides the in-memory record collections backing each
// record type. A store is exclusively owned by the server session; all
// mutation is serialized through its mutex so newest-first ordering and
// at-most-one-record-per-id hold under concurrent requests.
package store

import (
	"sync"
)

// Record is anything a Store can hold.
type Record interface {
	RecordID() string
}

// Store is an ordered in-memory collection with newest-first semantics.
type Store[T Record] struct {
	mu    sync.RWMutex
	items []T
}

func New[T Record]() *Store[T] {
	return &Store[T]{}
}

// Add prepends the record. The most recent add is always index 0.
func (s *Store[T]) Add(r T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T{r}, s.items...)
}

// AddWithLimit prepends the record unless the store already holds limit
// records. Check and insert happen under one lock, so concurrent adds can
// never push the store past the limit.
func (s *Store[T]) AddWithLimit(r T, limit int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) >= limit {
		return false
	}
	s.items = append([]T{r}, s.items...)
	return true
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.items {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Update swaps the record with the given id for the one fn returns.
// Records handed out by Get and List are never written in place, so
// readers holding them stay race-free; fn must copy, change the copy and
// return it. Returns false if no record matches; ordering is unaffected
// either way.
func (s *Store[T]) Update(id string, fn func(T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.items {
		if r.RecordID() == id {
			s.items[i] = fn(r)
			return true
		}
	}
	return false
}

// Delete removes the record with the given id and reports whether it was
// present. Deleting an absent id is a no-op: delete is idempotent by design.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.items {
		if r.RecordID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the records newest-first. The returned slice is a copy;
// callers must not mutate the records themselves.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
