package store

import (
	"context"
	"sync"

	"attestry/pkg/platform/audit"
)

// InMemory keeps audit events in memory for the demo environment and tests.
type InMemory struct {
	mu     sync.RWMutex
	events []audit.Event
}

// NewInMemory creates an in-memory audit store.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// Append records an event. Events are append-only; nothing removes them.
func (s *InMemory) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// List returns a copy of all recorded events in append order.
func (s *InMemory) List(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]audit.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}
