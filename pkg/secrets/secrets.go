// Package secrets mints and verifies the shared secrets the operator
// surface runs on. Minted values are random; deployments are meant to store
// only the bcrypt digest, never the secret itself.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"

	dErrors "attestry/pkg/domain-errors"
)

const secretBytes = 32

// Generate mints a fresh 256-bit secret as URL-safe base64 without padding.
func Generate() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "reading randomness for secret")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Hash derives the bcrypt digest a deployment stores in place of the
// secret.
func Hash(secret string) (string, error) {
	if secret == "" {
		return "", dErrors.New(dErrors.CodeValidation, "secret cannot be empty")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "secret exceeds the bcrypt input limit")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "hashing secret")
	}
	return string(digest), nil
}

// Verify reports whether secret matches the stored bcrypt digest. A
// mismatch is an Unauthorized error, so callers map it straight to a 401.
func Verify(secret, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return dErrors.New(dErrors.CodeUnauthorized, "secret does not match")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "comparing secret against digest")
	}
}
