// Package inmem is an in-process cache.Store backed by a mutex-guarded map,
// grounded on the teacher's server/dao/inmem repositories.
package inmem

import (
	"context"
	"sync"

	"github.com/folidity/folidity/cache"
)

type store struct {
	mu      sync.RWMutex
	entries map[string]cache.Entry
}

// NewStore returns an empty in-memory cache.Store.
func NewStore() cache.Store {
	return &store{entries: make(map[string]cache.Entry)}
}

func (s *store) Get(ctx context.Context, key string) (cache.Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok, nil
}

func (s *store) Put(ctx context.Context, entry cache.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Key] = entry
	return nil
}

func (s *store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
