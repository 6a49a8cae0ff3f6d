package httptransport

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"attestry/internal/relay"
	"attestry/internal/transport/http/mocks"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/middleware/auth"
	"attestry/pkg/testutil"
)

func packedHex(p relay.Packed) string {
	return "0x" + hex.EncodeToString(p[:])
}

//go:generate mockgen -source=handlers_attest.go -destination=mocks/handlers_attest_mocks.go -package=mocks

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req = req.WithContext(auth.WithPrincipal(req.Context(), testutil.TestIDs.Issuer1))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleAttest_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	mockRelay.EXPECT().
		Attest(gomock.Any(), testutil.TestIDs.Issuer1, gomock.Any()).
		Return(testutil.TestIDs.UID1, nil).
		Times(1)

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleAttest, "/attest", attestRequest{
		Key:       "custom-claim",
		Subject:   testutil.TestIDs.Subject1.String(),
		Revocable: true,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp uidResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testutil.TestIDs.UID1.String(), resp.UID)
}

func TestHandleAttest_MalformedSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleAttest, "/attest", attestRequest{
		Key:     "custom-claim",
		Subject: "not-hex",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAttest_PausedMapsTo503(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	mockRelay.EXPECT().
		Attest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(testutil.TestIDs.UID1, dErrors.New(dErrors.CodePaused, "relay is paused"))

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleAttest, "/attest", attestRequest{
		Key:     "custom-claim",
		Subject: testutil.TestIDs.Subject1.String(),
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "paused")
}

func TestHandleAttestBatch_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	mockRelay.EXPECT().
		MultiAttest(gomock.Any(), testutil.TestIDs.Issuer1, "bulk-claim", gomock.Len(2), uint64(5)).
		Return([]id.UID{testutil.TestIDs.UID1, testutil.TestIDs.UID2}, nil)

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleAttestBatch, "/attest/batch", attestBatchRequest{
		Key: "bulk-claim",
		Items: []attestBatchItem{
			{Subject: testutil.TestIDs.Subject1.String(), Value: 2},
			{Subject: testutil.TestIDs.Subject2.String(), Value: 3},
		},
		Total: 5,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp uidsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.UIDs, 2)
}

func TestHandleAttestBatch_InsufficientValueMapsTo422(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	mockRelay.EXPECT().
		MultiAttest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeInsufficientValue, "declared value exceeds remaining batch value"))

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleAttestBatch, "/attest/batch", attestBatchRequest{
		Key:   "bulk-claim",
		Items: []attestBatchItem{{Subject: testutil.TestIDs.Subject1.String(), Value: 9}},
		Total: 1,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient_value")
}

func TestHandleAccountClaim_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	mockRelay.EXPECT().
		IssueAccountClaim(gomock.Any(), testutil.TestIDs.Issuer1, testutil.TestIDs.Subject1).
		Return(testutil.TestIDs.UID1, nil)

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleAccountClaim, "/attest/account", accountClaimRequest{
		Subject: testutil.TestIDs.Subject1.String(),
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleCountryClaim_BadPackedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleCountryClaim, "/attest/country", countryClaimRequest{
		Packed: "0xdead",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCountryClaim_InvalidCountryMapsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	mockRelay.EXPECT().
		IssueCountryClaim(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(testutil.TestIDs.UID1, dErrors.New(dErrors.CodeInvalidCountry, "country code must be two uppercase letters"))

	packed, err := relay.Pack(testutil.TestIDs.Subject1, "DE")
	require.NoError(t, err)

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleCountryClaim, "/attest/country", countryClaimRequest{
		Packed: packedHex(packed),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_country")
}

func TestHandleRevoke_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	mockRelay.EXPECT().
		Revoke(gomock.Any(), testutil.TestIDs.Issuer1, testutil.TestIDs.UID1, uint64(0)).
		Return(nil)

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleRevoke, "/revoke", revokeRequest{
		UID: testutil.TestIDs.UID1.String(),
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandleRevokeBatch_AccessDeniedMapsTo403(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRelay := mocks.NewMockRelayService(ctrl)
	mockRelay.EXPECT().
		MultiRevoke(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dErrors.New(dErrors.CodeAccessDenied, "caller lacks the attester capability"))

	h := NewAttestHandler(mockRelay, nil)
	rec := postJSON(t, h.handleRevokeBatch, "/revoke/batch", revokeBatchRequest{
		UIDs:   []string{testutil.TestIDs.UID1.String()},
		Values: []uint64{0},
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
