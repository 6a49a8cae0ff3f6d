package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attestry/internal/attestation"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/requestcontext"
	"attestry/pkg/testutil"
)

// acceptAll is a hook that records invocations and accepts everything.
type acceptAll struct {
	attests int
	revokes int
	caller  id.Address
}

func (h *acceptAll) OnAttest(_ context.Context, caller id.Address, _ attestation.Attestation, _ uint64) error {
	h.attests++
	h.caller = caller
	return nil
}

func (h *acceptAll) OnRevoke(_ context.Context, caller id.Address, _ attestation.Attestation, _ uint64) error {
	h.revokes++
	h.caller = caller
	return nil
}

func (h *acceptAll) MultiOnAttest(_ context.Context, caller id.Address, atts []attestation.Attestation, _ []uint64, _ uint64) error {
	h.attests += len(atts)
	h.caller = caller
	return nil
}

func (h *acceptAll) MultiOnRevoke(_ context.Context, caller id.Address, atts []attestation.Attestation, _ []uint64, _ uint64) error {
	h.revokes += len(atts)
	h.caller = caller
	return nil
}

// rejectAll rejects every operation.
type rejectAll struct{}

func (rejectAll) OnAttest(context.Context, id.Address, attestation.Attestation, uint64) error {
	return dErrors.New(dErrors.CodeAccessDenied, "rejected")
}

func (rejectAll) OnRevoke(context.Context, id.Address, attestation.Attestation, uint64) error {
	return dErrors.New(dErrors.CodeAccessDenied, "rejected")
}

func (rejectAll) MultiOnAttest(context.Context, id.Address, []attestation.Attestation, []uint64, uint64) error {
	return dErrors.New(dErrors.CodeAccessDenied, "rejected")
}

func (rejectAll) MultiOnRevoke(context.Context, id.Address, []attestation.Attestation, []uint64, uint64) error {
	return dErrors.New(dErrors.CodeAccessDenied, "rejected")
}

func frozenCtx() context.Context {
	return requestcontext.WithNow(context.Background(), testutil.TestNow)
}

func validRequest() attestation.Request {
	return attestation.Request{
		Schema:    testutil.TestIDs.Schema1,
		Subject:   testutil.TestIDs.Subject1,
		Revocable: true,
		Data:      []byte{1},
	}
}

func TestAttest_PersistsRecord(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	ctx := frozenCtx()

	uid, err := l.Attest(ctx, testutil.TestIDs.Issuer1, validRequest())
	require.NoError(t, err)
	require.False(t, uid.IsZero())

	att, err := l.Get(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, uid, att.UID)
	assert.Equal(t, testutil.TestIDs.Issuer1, att.Attester)
	assert.Equal(t, testutil.TestNow, att.Time)
}

func TestAttest_HookReceivesLedgerIdentity(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	hook := &acceptAll{}
	l.RegisterHook(testutil.TestIDs.Schema1, hook)

	_, err := l.Attest(frozenCtx(), testutil.TestIDs.Issuer1, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, hook.attests)
	assert.Equal(t, testutil.TestIDs.Ledger, hook.caller)
}

// readBack fetches the attestation it is offered through the ledger itself,
// the way the resolver's index forward does.
type readBack struct {
	ledger  *InMemory
	seen    []attestation.Attestation
	getErrs []error
	reject  error
}

func (h *readBack) OnAttest(ctx context.Context, _ id.Address, att attestation.Attestation, _ uint64) error {
	got, err := h.ledger.Get(ctx, att.UID)
	h.seen = append(h.seen, got)
	h.getErrs = append(h.getErrs, err)
	return h.reject
}

func (h *readBack) OnRevoke(context.Context, id.Address, attestation.Attestation, uint64) error {
	return h.reject
}

func (h *readBack) MultiOnAttest(ctx context.Context, caller id.Address, atts []attestation.Attestation, values []uint64, _ uint64) error {
	for i, att := range atts {
		if err := h.OnAttest(ctx, caller, att, values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (h *readBack) MultiOnRevoke(context.Context, id.Address, []attestation.Attestation, []uint64, uint64) error {
	return h.reject
}

func TestAttest_HookSeesStagedRecord(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	hook := &readBack{ledger: l}
	l.RegisterHook(testutil.TestIDs.Schema1, hook)

	uid, err := l.Attest(frozenCtx(), testutil.TestIDs.Issuer1, validRequest())
	require.NoError(t, err)
	require.Len(t, hook.seen, 1)
	require.NoError(t, hook.getErrs[0])
	assert.Equal(t, uid, hook.seen[0].UID)
	assert.False(t, hook.seen[0].IsZero())
}

func TestAttest_ReadingHookRejectionUnstages(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	hook := &readBack{ledger: l, reject: dErrors.New(dErrors.CodeAccessDenied, "rejected")}
	l.RegisterHook(testutil.TestIDs.Schema1, hook)
	ctx := frozenCtx()

	uid, err := l.Attest(ctx, testutil.TestIDs.Issuer1, validRequest())
	require.Error(t, err)
	assert.True(t, uid.IsZero())

	// The hook saw the staged record, but rejection removed it again.
	require.Len(t, hook.seen, 1)
	att, err := l.Get(ctx, hook.seen[0].UID)
	require.NoError(t, err)
	assert.True(t, att.IsZero())
}

func TestMultiAttest_HookSeesAllStagedRecords(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	hook := &readBack{ledger: l}
	l.RegisterHook(testutil.TestIDs.Schema1, hook)

	uids, err := l.MultiAttest(frozenCtx(), testutil.TestIDs.Issuer1,
		[]attestation.Request{validRequest(), validRequest()},
		[]uint64{0, 0}, 0)
	require.NoError(t, err)
	require.Len(t, hook.seen, 2)
	for i, uid := range uids {
		require.NoError(t, hook.getErrs[i])
		assert.Equal(t, uid, hook.seen[i].UID)
	}
}

func TestAttest_HookRejectionLeavesNoTrace(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	l.RegisterHook(testutil.TestIDs.Schema1, rejectAll{})
	ctx := frozenCtx()

	uid, err := l.Attest(ctx, testutil.TestIDs.Issuer1, validRequest())
	require.Error(t, err)
	assert.True(t, uid.IsZero())

	// Nothing persisted: an arbitrary Get still returns the zero record.
	att, err := l.Get(ctx, testutil.TestIDs.UID1)
	require.NoError(t, err)
	assert.True(t, att.IsZero())
}

func TestAttest_PastExpirationRejected(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	req := validRequest()
	req.ExpirationTime = testutil.TestNow.Add(-time.Minute)

	_, err := l.Attest(frozenCtx(), testutil.TestIDs.Issuer1, req)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeExpired))
}

func TestAttest_MissingSchemaRejected(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	req := validRequest()
	req.Schema = id.ZeroSchema

	_, err := l.Attest(frozenCtx(), testutil.TestIDs.Issuer1, req)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestMultiAttest_AllOrNothing(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	l.RegisterHook(testutil.TestIDs.Schema1, rejectAll{})
	ctx := frozenCtx()

	uids, err := l.MultiAttest(ctx, testutil.TestIDs.Issuer1,
		[]attestation.Request{validRequest(), validRequest()},
		[]uint64{0, 0}, 0)
	require.Error(t, err)
	assert.Nil(t, uids)
}

func TestMultiAttest_LengthMismatch(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)

	_, err := l.MultiAttest(frozenCtx(), testutil.TestIDs.Issuer1,
		[]attestation.Request{validRequest(), validRequest()},
		[]uint64{0}, 0)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeLengthMismatch))
}

func TestMultiAttest_MixedSchemasRejected(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	second := validRequest()
	second.Schema = testutil.TestIDs.Schema2

	_, err := l.MultiAttest(frozenCtx(), testutil.TestIDs.Issuer1,
		[]attestation.Request{validRequest(), second},
		[]uint64{0, 0}, 0)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestMultiAttest_Success(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	hook := &acceptAll{}
	l.RegisterHook(testutil.TestIDs.Schema1, hook)
	ctx := frozenCtx()

	uids, err := l.MultiAttest(ctx, testutil.TestIDs.Issuer1,
		[]attestation.Request{validRequest(), validRequest()},
		[]uint64{1, 2}, 3)
	require.NoError(t, err)
	require.Len(t, uids, 2)
	assert.NotEqual(t, uids[0], uids[1])
	assert.Equal(t, 2, hook.attests)
}

func TestRevoke_SetsRevocationTime(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	ctx := frozenCtx()
	uid, err := l.Attest(ctx, testutil.TestIDs.Issuer1, validRequest())
	require.NoError(t, err)

	laterCtx := requestcontext.WithNow(context.Background(), testutil.TestNow.Add(time.Hour))
	require.NoError(t, l.Revoke(laterCtx, testutil.TestIDs.Issuer1, uid, 0))

	att, err := l.Get(ctx, uid)
	require.NoError(t, err)
	assert.True(t, att.Revoked())
	assert.Equal(t, testutil.TestNow.Add(time.Hour), att.RevocationTime)
}

func TestRevoke_OnlyOriginalAttester(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	ctx := frozenCtx()
	uid, err := l.Attest(ctx, testutil.TestIDs.Issuer1, validRequest())
	require.NoError(t, err)

	err = l.Revoke(ctx, testutil.TestIDs.Issuer2, uid, 0)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeAccessDenied))
}

func TestRevoke_Irrevocable(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	ctx := frozenCtx()
	req := validRequest()
	req.Revocable = false
	uid, err := l.Attest(ctx, testutil.TestIDs.Issuer1, req)
	require.NoError(t, err)

	err = l.Revoke(ctx, testutil.TestIDs.Issuer1, uid, 0)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestRevoke_AlreadyRevoked(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	ctx := frozenCtx()
	uid, err := l.Attest(ctx, testutil.TestIDs.Issuer1, validRequest())
	require.NoError(t, err)
	require.NoError(t, l.Revoke(ctx, testutil.TestIDs.Issuer1, uid, 0))

	err = l.Revoke(ctx, testutil.TestIDs.Issuer1, uid, 0)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeRevoked))
}

func TestRevoke_HookRejectionRollsBack(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)
	ctx := frozenCtx()
	uid, err := l.Attest(ctx, testutil.TestIDs.Issuer1, validRequest())
	require.NoError(t, err)

	l.RegisterHook(testutil.TestIDs.Schema1, rejectAll{})
	err = l.Revoke(ctx, testutil.TestIDs.Issuer1, uid, 0)
	require.Error(t, err)

	att, err := l.Get(ctx, uid)
	require.NoError(t, err)
	assert.False(t, att.Revoked())
}

func TestGet_UnknownUIDReturnsZeroRecord(t *testing.T) {
	l := NewInMemory(testutil.TestIDs.Ledger)

	att, err := l.Get(context.Background(), testutil.TestIDs.UID1)
	require.NoError(t, err)
	assert.True(t, att.IsZero())
}
