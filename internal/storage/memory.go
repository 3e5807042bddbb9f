package storage

import (
	"context"
	"sync"
)

// MemoryStore хранит значения в памяти процесса
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	value, ok := s.values[key]
	s.mu.RUnlock()

	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()

	return nil
}
