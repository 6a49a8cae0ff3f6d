package capability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/testutil"
)

func TestGrantAndAuthorized(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Grant(ctx, Attester, testutil.TestIDs.Issuer1))

	assert.True(t, store.Authorized(testutil.TestIDs.Issuer1, Attester))
	assert.False(t, store.Authorized(testutil.TestIDs.Issuer1, Admin))
	assert.False(t, store.Authorized(testutil.TestIDs.Issuer2, Attester))
}

func TestGrant_ZeroPrincipal(t *testing.T) {
	store := NewStore()

	err := store.Grant(context.Background(), Attester, id.ZeroAddress)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidPrincipal))
}

func TestGrant_DuplicateUnchanged(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Grant(ctx, Attester, testutil.TestIDs.Issuer1))

	err := store.Grant(ctx, Attester, testutil.TestIDs.Issuer1)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnchanged))
}

func TestRevoke_RemovesAuthorization(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Grant(ctx, Pauser, testutil.TestIDs.Admin))
	require.NoError(t, store.Revoke(ctx, Pauser, testutil.TestIDs.Admin))

	assert.False(t, store.Authorized(testutil.TestIDs.Admin, Pauser))
}

func TestRevoke_NeverGrantedUnchanged(t *testing.T) {
	store := NewStore()

	err := store.Revoke(context.Background(), Pauser, testutil.TestIDs.Admin)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnchanged))
}

func TestRotate_ReplacesHolder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Grant(ctx, Admin, testutil.TestIDs.Issuer1))
	require.NoError(t, store.Rotate(ctx, Admin, testutil.TestIDs.Issuer1, testutil.TestIDs.Issuer2))

	assert.False(t, store.Authorized(testutil.TestIDs.Issuer1, Admin))
	assert.True(t, store.Authorized(testutil.TestIDs.Issuer2, Admin))
}

func TestRotate_OldNotHolder(t *testing.T) {
	store := NewStore()

	err := store.Rotate(context.Background(), Admin, testutil.TestIDs.Issuer1, testutil.TestIDs.Issuer2)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnchanged))
}

func TestCapability_IsValid(t *testing.T) {
	assert.True(t, Admin.IsValid())
	assert.True(t, Attester.IsValid())
	assert.True(t, Indexer.IsValid())
	assert.True(t, Pauser.IsValid())
	assert.False(t, Capability("root").IsValid())
}
