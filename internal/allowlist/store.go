package allowlist

import (
	"context"
	"sync"

	id "attestry/pkg/domain"
)

type entryKey struct {
	schema    id.SchemaUID
	principal id.Address
}

// InMemory stores allowlist entries in memory for the demo environment.
type InMemory struct {
	mu      sync.RWMutex
	entries map[entryKey]struct{}
}

// NewInMemory creates an in-memory allowlist store.
func NewInMemory() *InMemory {
	return &InMemory{entries: make(map[entryKey]struct{})}
}

// Set records the entry; returns false when it already existed.
func (s *InMemory) Set(_ context.Context, schema id.SchemaUID, principal id.Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entryKey{schema: schema, principal: principal}
	if _, exists := s.entries[key]; exists {
		return false, nil
	}
	s.entries[key] = struct{}{}
	return true, nil
}

// Unset removes the entry; returns false when it did not exist.
func (s *InMemory) Unset(_ context.Context, schema id.SchemaUID, principal id.Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entryKey{schema: schema, principal: principal}
	if _, exists := s.entries[key]; !exists {
		return false, nil
	}
	delete(s.entries, key)
	return true, nil
}

// Has reports whether the entry exists.
func (s *InMemory) Has(_ context.Context, schema id.SchemaUID, principal id.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.entries[entryKey{schema: schema, principal: principal}]
	return exists, nil
}
