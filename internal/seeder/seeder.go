// Package seeder provisions the demo environment: service capabilities,
// templated claim schemas, and the relay's allowlist entries. Production
// deployments replace this with real provisioning.
package seeder

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"attestry/internal/capability"
	"attestry/internal/ledger"
	"attestry/internal/relay"
	id "attestry/pkg/domain"
)

// CapabilityStore defines methods for seeding capabilities.
type CapabilityStore interface {
	Grant(ctx context.Context, c capability.Capability, principal id.Address) error
}

// HookRegistrar defines methods for gating schemas with a resolver.
type HookRegistrar interface {
	RegisterHook(schema id.SchemaUID, hook ledger.Hook)
}

// AllowlistWriter defines methods for seeding allowlist entries.
type AllowlistWriter interface {
	Add(ctx context.Context, actor string, schema id.SchemaUID, principal id.Address) error
}

// SchemaBinder defines methods for binding internal keys to schemas.
type SchemaBinder interface {
	Bind(ctx context.Context, key string, schema id.SchemaUID) error
}

// Seeder populates in-memory components with demo wiring.
type Seeder struct {
	caps     CapabilityStore
	hooks    HookRegistrar
	allow    AllowlistWriter
	schemas  SchemaBinder
	gate     ledger.Hook
	resolver id.Address
	relay    id.Address
	logger   *slog.Logger
}

func New(caps CapabilityStore, hooks HookRegistrar, allow AllowlistWriter, schemas SchemaBinder, gate ledger.Hook, resolverAddr, relayAddr id.Address, logger *slog.Logger) *Seeder {
	return &Seeder{
		caps:     caps,
		hooks:    hooks,
		allow:    allow,
		schemas:  schemas,
		gate:     gate,
		resolver: resolverAddr,
		relay:    relayAddr,
		logger:   logger,
	}
}

// SchemaFor derives the demo schema identifier for an internal key.
func SchemaFor(key string) id.SchemaUID {
	return id.SchemaUID(sha256.Sum256([]byte("attestry/schema/" + key)))
}

// SeedAll provisions capabilities, schemas, and allowlist entries.
func (s *Seeder) SeedAll(ctx context.Context) error {
	s.logger.Info("seeding demo wiring...")

	if err := s.caps.Grant(ctx, capability.Indexer, s.resolver); err != nil {
		return fmt.Errorf("failed to grant indexer capability: %w", err)
	}
	if err := s.caps.Grant(ctx, capability.Attester, s.relay); err != nil {
		return fmt.Errorf("failed to grant attester capability: %w", err)
	}

	for _, key := range []string{relay.KeyVerifiedAccount, relay.KeyVerifiedCountry} {
		schema := SchemaFor(key)
		s.hooks.RegisterHook(schema, s.gate)
		if err := s.schemas.Bind(ctx, key, schema); err != nil {
			return fmt.Errorf("failed to bind schema for %s: %w", key, err)
		}
		if err := s.allow.Add(ctx, "seeder", schema, s.relay); err != nil {
			return fmt.Errorf("failed to allowlist relay for %s: %w", key, err)
		}
		s.logger.Info("seeded templated schema", "key", key, "schema", schema)
	}

	s.logger.Info("demo wiring seeded",
		"resolver", s.resolver,
		"relay", s.relay,
	)
	return nil
}
