package relay

import (
	"context"
	"sync"

	id "attestry/pkg/domain"
)

// Internal permanent keys for the templated claim shapes. The ledger schema
// bound to a key can rotate without changing caller-facing keys.
const (
	KeyVerifiedAccount = "verified-account"
	KeyVerifiedCountry = "verified-country"
)

// SchemaRegistry persists the internal key -> ledger schema binding.
type SchemaRegistry interface {
	Bind(ctx context.Context, key string, schema id.SchemaUID) error
	Resolve(ctx context.Context, key string) (id.SchemaUID, bool, error)
}

// InMemorySchemas stores schema bindings in memory for the demo environment.
type InMemorySchemas struct {
	mu       sync.RWMutex
	bindings map[string]id.SchemaUID
}

// NewInMemorySchemas creates an in-memory schema registry.
func NewInMemorySchemas() *InMemorySchemas {
	return &InMemorySchemas{bindings: make(map[string]id.SchemaUID)}
}

// Bind sets or replaces the binding for key.
func (s *InMemorySchemas) Bind(_ context.Context, key string, schema id.SchemaUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[key] = schema
	return nil
}

// Resolve returns the bound schema and whether a binding exists.
func (s *InMemorySchemas) Resolve(_ context.Context, key string) (id.SchemaUID, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	schema, ok := s.bindings[key]
	return schema, ok, nil
}
