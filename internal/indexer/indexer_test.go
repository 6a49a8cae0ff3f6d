package indexer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attestry/internal/attestation"
	"attestry/internal/capability"
	"attestry/internal/ledger"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/audit"
	"attestry/pkg/platform/audit/publisher"
	auditstore "attestry/pkg/platform/audit/store"
	"attestry/pkg/requestcontext"
	"attestry/pkg/testutil"
)

type fixture struct {
	svc    *Service
	ledger *ledger.InMemory
	caps   *capability.Store
	sink   *auditstore.InMemory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	l := ledger.NewInMemory(testutil.TestIDs.Ledger)
	caps := capability.NewStore()
	require.NoError(t, caps.Grant(context.Background(), capability.Indexer, testutil.TestIDs.Issuer1))
	sink := auditstore.NewInMemory()
	svc := NewService(NewInMemory(), l, caps, WithPublisher(publisher.New(sink)))
	return &fixture{svc: svc, ledger: l, caps: caps, sink: sink}
}

func frozenCtx() context.Context {
	return requestcontext.WithNow(context.Background(), testutil.TestNow)
}

func (f *fixture) attest(t *testing.T, req attestation.Request) id.UID {
	t.Helper()
	uid, err := f.ledger.Attest(frozenCtx(), testutil.TestIDs.Issuer1, req)
	require.NoError(t, err)
	return uid
}

func validRequest() attestation.Request {
	return attestation.Request{
		Schema:    testutil.TestIDs.Schema1,
		Subject:   testutil.TestIDs.Subject1,
		Revocable: true,
	}
}

func TestIndex_ThenLookup(t *testing.T) {
	f := newFixture(t)
	ctx := frozenCtx()
	uid := f.attest(t, validRequest())

	require.NoError(t, f.svc.Index(ctx, testutil.TestIDs.Issuer1, uid))

	got, err := f.svc.Lookup(ctx, testutil.TestIDs.Subject1, testutil.TestIDs.Schema1)
	require.NoError(t, err)
	assert.Equal(t, uid, got)
}

func TestIndex_CallerWithoutCapability(t *testing.T) {
	f := newFixture(t)
	uid := f.attest(t, validRequest())

	err := f.svc.Index(frozenCtx(), testutil.TestIDs.Issuer2, uid)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeAccessDenied))
}

func TestIndex_UnknownUID(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Index(frozenCtx(), testutil.TestIDs.Issuer1, testutil.TestIDs.UID1)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestIndex_ExpiredRecordRejected(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.ExpirationTime = testutil.TestNow.Add(time.Minute)
	uid := f.attest(t, req)

	laterCtx := requestcontext.WithNow(context.Background(), testutil.TestNow.Add(time.Hour))
	err := f.svc.Index(laterCtx, testutil.TestIDs.Issuer1, uid)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeExpired))
}

func TestIndex_MissingSubjectRejected(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.Subject = id.ZeroAddress
	uid := f.attest(t, req)

	err := f.svc.Index(frozenCtx(), testutil.TestIDs.Issuer1, uid)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeMissingSubject))
}

func TestIndex_IdempotentForSameUID(t *testing.T) {
	f := newFixture(t)
	ctx := frozenCtx()
	uid := f.attest(t, validRequest())

	require.NoError(t, f.svc.Index(ctx, testutil.TestIDs.Issuer1, uid))
	require.NoError(t, f.svc.Index(ctx, testutil.TestIDs.Issuer1, uid))

	got, err := f.svc.Lookup(ctx, testutil.TestIDs.Subject1, testutil.TestIDs.Schema1)
	require.NoError(t, err)
	assert.Equal(t, uid, got)
}

// Last successful index call wins for the same (subject, schema), no matter
// how the two records compare on validity or issuance time. This pins the
// documented "last call wins" policy rather than assuming it.
func TestIndex_LastCallWins(t *testing.T) {
	f := newFixture(t)
	ctx := frozenCtx()
	uid1 := f.attest(t, validRequest())
	uid2 := f.attest(t, validRequest())

	require.NoError(t, f.svc.Index(ctx, testutil.TestIDs.Issuer1, uid2))
	require.NoError(t, f.svc.Index(ctx, testutil.TestIDs.Issuer1, uid1))

	got, err := f.svc.Lookup(ctx, testutil.TestIDs.Subject1, testutil.TestIDs.Schema1)
	require.NoError(t, err)
	assert.Equal(t, uid1, got)
}

// A later revocation does not un-index the entry; staleness is resolved by
// the guard's live re-verification, never by the index.
func TestIndex_RevokedEntryRemainsIndexed(t *testing.T) {
	f := newFixture(t)
	ctx := frozenCtx()
	uid := f.attest(t, validRequest())
	require.NoError(t, f.svc.Index(ctx, testutil.TestIDs.Issuer1, uid))

	require.NoError(t, f.ledger.Revoke(ctx, testutil.TestIDs.Issuer1, uid, 0))

	got, err := f.svc.Lookup(ctx, testutil.TestIDs.Subject1, testutil.TestIDs.Schema1)
	require.NoError(t, err)
	assert.Equal(t, uid, got)
}

func TestLookup_NeverIndexedReturnsSentinel(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.Lookup(frozenCtx(), testutil.TestIDs.Subject2, testutil.TestIDs.Schema2)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestIndex_EmitsIndexUpdated(t *testing.T) {
	f := newFixture(t)
	ctx := frozenCtx()
	uid := f.attest(t, validRequest())

	require.NoError(t, f.svc.Index(ctx, testutil.TestIDs.Issuer1, uid))

	events, err := f.sink.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionIndexUpdated, events[0].Action)
	assert.Equal(t, uid, events[0].UID)
	assert.Equal(t, testutil.TestIDs.Subject1, events[0].Subject)
}

// recordSource implements only Get; indexing needs no more from the ledger.
type recordSource struct {
	att attestation.Attestation
}

func (r recordSource) Get(context.Context, id.UID) (attestation.Attestation, error) {
	return r.att, nil
}

func TestIndex_ReadOnlyLedgerSourceSuffices(t *testing.T) {
	caps := capability.NewStore()
	require.NoError(t, caps.Grant(context.Background(), capability.Indexer, testutil.TestIDs.Issuer1))
	att := testutil.NewAttestationBuilder().Build()
	svc := NewService(NewInMemory(), recordSource{att: att}, caps)
	ctx := frozenCtx()

	require.NoError(t, svc.Index(ctx, testutil.TestIDs.Issuer1, att.UID))

	got, err := svc.Lookup(ctx, att.Subject, att.Schema)
	require.NoError(t, err)
	assert.Equal(t, att.UID, got)
}

func TestIndex_RejectionEmitsNothing(t *testing.T) {
	f := newFixture(t)

	_ = f.svc.Index(frozenCtx(), testutil.TestIDs.Issuer1, testutil.TestIDs.UID1)

	events, err := f.sink.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}
