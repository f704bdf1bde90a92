package ratelimit

import (
	"context"
	"sync"
	"time"
)

// UpdateFunc receives the current entry (nil when absent) and returns the
// entry to persist. Returning nil leaves the stored state untouched.
// A store may call it more than once when a concurrent write is detected.
type UpdateFunc func(current *Entry) *Entry

type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Delete(ctx context.Context, key string) error
	// Sweep removes entries whose last attempt is before cutoff and reports
	// how many were removed.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)
}

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemoryStore) Update(_ context.Context, key string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *Entry
	if e, ok := s.entries[key]; ok {
		current = &e
	}
	if next := fn(current); next != nil {
		s.entries[key] = *next
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) Sweep(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if e.LastAttempt.Before(cutoff) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
