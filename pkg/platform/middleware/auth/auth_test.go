package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/testutil"
)

type stubValidator struct {
	principal id.Address
	err       error
}

func (s stubValidator) PrincipalFromToken(string) (id.Address, error) {
	if s.err != nil {
		return id.ZeroAddress, s.err
	}
	return s.principal, nil
}

func serve(t *testing.T, validator TokenValidator, header string) (*httptest.ResponseRecorder, id.Address) {
	t.Helper()
	var seen id.Address
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = Principal(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireToken(validator, nil)(inner)

	req := httptest.NewRequest(http.MethodPost, "/attestations", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func TestRequireToken_ValidToken(t *testing.T) {
	rec, seen := serve(t, stubValidator{principal: testutil.TestIDs.Issuer1}, "Bearer good-token")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testutil.TestIDs.Issuer1, seen)
}

func TestRequireToken_MissingHeader(t *testing.T) {
	rec, _ := serve(t, stubValidator{principal: testutil.TestIDs.Issuer1}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireToken_InvalidToken(t *testing.T) {
	rec, _ := serve(t, stubValidator{err: dErrors.New(dErrors.CodeUnauthorized, "invalid token")}, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireToken_NonBearerScheme(t *testing.T) {
	rec, _ := serve(t, stubValidator{principal: testutil.TestIDs.Issuer1}, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
