package indexer

import (
	"context"
	"sync"

	id "attestry/pkg/domain"
)

// Store persists the (subject, schema) -> UID index mapping.
type Store interface {
	// Put overwrites the entry and reports whether a previous entry existed.
	Put(ctx context.Context, subject id.Address, schema id.SchemaUID, uid id.UID) (overwrote bool, err error)
	// Get returns the stored UID, or the zero UID when nothing is indexed.
	Get(ctx context.Context, subject id.Address, schema id.SchemaUID) (id.UID, error)
}

type indexKey struct {
	subject id.Address
	schema  id.SchemaUID
}

// InMemory stores index entries in memory for the demo environment.
type InMemory struct {
	mu      sync.RWMutex
	entries map[indexKey]id.UID
}

// NewInMemory creates an in-memory index store.
func NewInMemory() *InMemory {
	return &InMemory{entries: make(map[indexKey]id.UID)}
}

// Put overwrites the entry unconditionally. Entries are never deleted; a
// newer Put or nothing replaces them.
func (s *InMemory) Put(_ context.Context, subject id.Address, schema id.SchemaUID, uid id.UID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := indexKey{subject: subject, schema: schema}
	_, existed := s.entries[key]
	s.entries[key] = uid
	return existed, nil
}

// Get returns the stored UID or the zero UID.
func (s *InMemory) Get(_ context.Context, subject id.Address, schema id.SchemaUID) (id.UID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[indexKey{subject: subject, schema: schema}], nil
}
