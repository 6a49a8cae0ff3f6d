package guard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attestry/internal/attestation"
	"attestry/internal/capability"
	"attestry/internal/indexer"
	"attestry/internal/ledger"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/requestcontext"
	"attestry/pkg/testutil"
)

type fixture struct {
	guard  *Guard
	ledger *ledger.InMemory
	index  *indexer.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	l := ledger.NewInMemory(testutil.TestIDs.Ledger)
	caps := capability.NewStore()
	require.NoError(t, caps.Grant(context.Background(), capability.Indexer, testutil.TestIDs.Issuer1))
	idx := indexer.NewService(indexer.NewInMemory(), l, caps)
	return &fixture{guard: New(idx, l), ledger: l, index: idx}
}

func frozenCtx() context.Context {
	return requestcontext.WithNow(context.Background(), testutil.TestNow)
}

func (f *fixture) issueAndIndex(t *testing.T, req attestation.Request) id.UID {
	t.Helper()
	ctx := frozenCtx()
	uid, err := f.ledger.Attest(ctx, testutil.TestIDs.Issuer1, req)
	require.NoError(t, err)
	require.NoError(t, f.index.Index(ctx, testutil.TestIDs.Issuer1, uid))
	return uid
}

func validRequest() attestation.Request {
	return attestation.Request{
		Schema:    testutil.TestIDs.Schema1,
		Subject:   testutil.TestIDs.Subject1,
		Revocable: true,
	}
}

func TestRequireClaim_ValidIndexedClaim(t *testing.T) {
	f := newFixture(t)
	f.issueAndIndex(t, validRequest())

	err := f.guard.RequireClaim(frozenCtx(), testutil.TestIDs.Subject1, testutil.TestIDs.Schema1)
	require.NoError(t, err)
}

func TestRequireClaim_NeverIndexedPairNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.guard.RequireClaim(frozenCtx(), testutil.TestIDs.Subject1, testutil.TestIDs.Schema1)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

// A newer issuance overwrites the index; when that newer record is revoked,
// the guard fails with Revoked even though the older record is still valid
// somewhere on the ledger and indexed nowhere.
func TestRequireClaim_RevokedLatestFailsDespiteOlderValidRecord(t *testing.T) {
	f := newFixture(t)
	ctx := frozenCtx()
	_ = f.issueAndIndex(t, validRequest())
	uid2 := f.issueAndIndex(t, validRequest())

	require.NoError(t, f.ledger.Revoke(ctx, testutil.TestIDs.Issuer1, uid2, 0))

	err := f.guard.RequireClaim(ctx, testutil.TestIDs.Subject1, testutil.TestIDs.Schema1)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeRevoked))
}

func TestRequireClaim_ExpiredIndexedClaimFails(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.ExpirationTime = testutil.TestNow.Add(time.Minute)
	f.issueAndIndex(t, req)

	laterCtx := requestcontext.WithNow(context.Background(), testutil.TestNow.Add(time.Hour))
	err := f.guard.RequireClaim(laterCtx, testutil.TestIDs.Subject1, testutil.TestIDs.Schema1)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeExpired))
}

func TestRequireAll_AllValid(t *testing.T) {
	f := newFixture(t)
	f.issueAndIndex(t, validRequest())
	second := validRequest()
	second.Schema = testutil.TestIDs.Schema2
	f.issueAndIndex(t, second)

	err := f.guard.RequireAll(frozenCtx(), testutil.TestIDs.Subject1,
		testutil.TestIDs.Schema1, testutil.TestIDs.Schema2)
	require.NoError(t, err)
}

func TestRequireAll_OneMissingFails(t *testing.T) {
	f := newFixture(t)
	f.issueAndIndex(t, validRequest())

	err := f.guard.RequireAll(frozenCtx(), testutil.TestIDs.Subject1,
		testutil.TestIDs.Schema1, testutil.TestIDs.Schema2)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestRequireAll_NoSchemasSucceeds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.guard.RequireAll(frozenCtx(), testutil.TestIDs.Subject1))
}
