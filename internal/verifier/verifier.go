// Package verifier decides whether an attestation record is usable right now.
//
// Domain purity: no I/O, no context.Context, no time.Now() calls. Callers
// supply the observation time (normally requestcontext.Now), which keeps the
// predicate deterministic and trivially testable.
package verifier

import (
	"time"

	"attestry/internal/attestation"
	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// Check applies the base validity predicate to a record.
//
// Failure order: NotFound (sentinel UID), InvariantViolation (a found record
// missing its attester or schema is corrupt), Expired, Revoked. A nil return
// means the record was valid at the supplied instant; it says nothing about
// any later instant.
func Check(att attestation.Attestation, now time.Time) error {
	if att.IsZero() {
		return dErrors.New(dErrors.CodeNotFound, "attestation not found")
	}
	if att.Attester.IsZero() {
		return dErrors.New(dErrors.CodeInvariantViolation, "attestation has no attester")
	}
	if att.Schema.IsZero() {
		return dErrors.New(dErrors.CodeInvariantViolation, "attestation has no schema")
	}
	if att.Expired(now) {
		return dErrors.New(dErrors.CodeExpired, "attestation has expired")
	}
	if att.Revoked() {
		return dErrors.New(dErrors.CodeRevoked, "attestation has been revoked")
	}
	return nil
}

// CheckFor verifies a record against an expected subject and schema before
// applying the base predicate. The pinning checks run first so a mismatched
// record reports the mismatch even when it is also expired or revoked.
func CheckFor(att attestation.Attestation, subject id.Address, schema id.SchemaUID, now time.Time) error {
	if att.Subject != subject {
		return dErrors.New(dErrors.CodeSubjectMismatch, "attestation subject mismatch")
	}
	if att.Schema != schema {
		return dErrors.New(dErrors.CodeClaimTypeMismatch, "attestation schema mismatch")
	}
	return Check(att, now)
}
