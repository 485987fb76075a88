package memory

import (
	"context"
	"sync"
)

// Store is an in-memory implementation of app.RecordStore (useful for tests
// and demos).
type Store struct {
	mu      sync.RWMutex
	records map[string]string
}

func NewStore() *Store {
	return &Store{records: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.records[name]
	return value, ok, nil
}

func (s *Store) Set(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[name] = value
	return nil
}

func (s *Store) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, name)
	return nil
}
