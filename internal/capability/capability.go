// Package capability holds the explicit capability-store value shared by the
// core components. Authorization is a pure lookup; there is no ambient
// global role state.
package capability

import (
	"context"
	"sync"

	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// Capability names a class of privileged operations.
type Capability string

const (
	// Admin manages allowlists, schema bindings, and capability holders.
	Admin Capability = "admin"
	// Attester may submit issuance and revocation through the relay.
	Attester Capability = "attester"
	// Indexer may call the index operation directly.
	Indexer Capability = "indexer"
	// Pauser may pause and unpause gated components.
	Pauser Capability = "pauser"
)

// IsValid reports whether the capability is one of the known classes.
func (c Capability) IsValid() bool {
	switch c {
	case Admin, Attester, Indexer, Pauser:
		return true
	default:
		return false
	}
}

func (c Capability) String() string {
	return string(c)
}

// Store maintains capability holder sets. All methods are safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	holders map[Capability]map[id.Address]struct{}
}

// NewStore creates an empty capability store.
func NewStore() *Store {
	return &Store{holders: make(map[Capability]map[id.Address]struct{})}
}

// Grant adds a principal to a capability's holder set. Fails with
// InvalidPrincipal for the zero principal and Unchanged when the principal
// already holds the capability.
func (s *Store) Grant(_ context.Context, c Capability, principal id.Address) error {
	if !c.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown capability")
	}
	if principal.IsZero() {
		return dErrors.New(dErrors.CodeInvalidPrincipal, "principal cannot be the zero address")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.holders[c]
	if !ok {
		set = make(map[id.Address]struct{})
		s.holders[c] = set
	}
	if _, exists := set[principal]; exists {
		return dErrors.New(dErrors.CodeUnchanged, "principal already holds capability")
	}
	set[principal] = struct{}{}
	return nil
}

// Revoke removes a principal from a capability's holder set. Fails with
// InvalidPrincipal for the zero principal and Unchanged when the principal
// does not hold the capability.
func (s *Store) Revoke(_ context.Context, c Capability, principal id.Address) error {
	if !c.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown capability")
	}
	if principal.IsZero() {
		return dErrors.New(dErrors.CodeInvalidPrincipal, "principal cannot be the zero address")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.holders[c]
	if !ok {
		return dErrors.New(dErrors.CodeUnchanged, "principal does not hold capability")
	}
	if _, exists := set[principal]; !exists {
		return dErrors.New(dErrors.CodeUnchanged, "principal does not hold capability")
	}
	delete(set, principal)
	return nil
}

// Rotate atomically replaces one holder with another, so a capability is
// never left without its holder mid-change.
func (s *Store) Rotate(_ context.Context, c Capability, old, next id.Address) error {
	if !c.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown capability")
	}
	if old.IsZero() || next.IsZero() {
		return dErrors.New(dErrors.CodeInvalidPrincipal, "principal cannot be the zero address")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.holders[c]
	if !ok {
		return dErrors.New(dErrors.CodeUnchanged, "principal does not hold capability")
	}
	if _, exists := set[old]; !exists {
		return dErrors.New(dErrors.CodeUnchanged, "principal does not hold capability")
	}
	if _, exists := set[next]; exists && old != next {
		return dErrors.New(dErrors.CodeUnchanged, "principal already holds capability")
	}
	delete(set, old)
	set[next] = struct{}{}
	return nil
}

// Authorized is the pure decision function consulted by every gate.
func (s *Store) Authorized(principal id.Address, c Capability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.holders[c]
	if !ok {
		return false
	}
	_, exists := set[principal]
	return exists
}
