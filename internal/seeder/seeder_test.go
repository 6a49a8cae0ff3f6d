package seeder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attestry/internal/allowlist"
	"attestry/internal/capability"
	"attestry/internal/indexer"
	"attestry/internal/ledger"
	"attestry/internal/relay"
	"attestry/internal/resolver"
	"attestry/pkg/testutil"
)

func TestSeedAll_ProvisionsDemoWiring(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	caps := capability.NewStore()
	lgr := ledger.NewInMemory(testutil.TestIDs.Subject1)
	allowStore := allowlist.NewInMemory()
	allow := allowlist.NewService(allowStore)
	index := indexer.NewService(indexer.NewInMemory(), lgr, caps)
	gate := resolver.NewService(testutil.TestIDs.Subject1, testutil.TestIDs.Issuer2, allow, index)
	schemas := relay.NewInMemorySchemas()

	s := New(caps, lgr, allow, schemas, gate, testutil.TestIDs.Issuer2, testutil.TestIDs.Issuer1, log)
	require.NoError(t, s.SeedAll(ctx))

	assert.True(t, caps.Authorized(testutil.TestIDs.Issuer2, capability.Indexer))
	assert.True(t, caps.Authorized(testutil.TestIDs.Issuer1, capability.Attester))

	for _, key := range []string{relay.KeyVerifiedAccount, relay.KeyVerifiedCountry} {
		schema, ok, err := schemas.Resolve(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, "schema for %s should be bound", key)
		assert.Equal(t, SchemaFor(key), schema)

		allowed, err := allow.Check(ctx, schema, testutil.TestIDs.Issuer1)
		require.NoError(t, err)
		assert.True(t, allowed, "relay should be allowlisted for %s", key)
	}
}

func TestSchemaFor_IsStablePerKey(t *testing.T) {
	assert.Equal(t, SchemaFor("verified-account"), SchemaFor("verified-account"))
	assert.NotEqual(t, SchemaFor("verified-account"), SchemaFor("verified-country"))
}
