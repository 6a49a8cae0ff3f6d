// Package ledger is the append-only service of record for attestations. It
// assigns identifiers, tracks expiration and revocation, and invokes the
// resolver hook registered for a schema on every issuance and revocation.
package ledger

import (
	"context"

	"attestry/internal/attestation"
	id "attestry/pkg/domain"
)

// Hook is the contract a resolver implements to gate issuance and revocation
// for a schema. The ledger passes its own identity as caller; hooks reject
// any other caller. A non-nil error rejects the operation and the ledger
// rolls back every effect of the enclosing request.
type Hook interface {
	OnAttest(ctx context.Context, caller id.Address, att attestation.Attestation, value uint64) error
	OnRevoke(ctx context.Context, caller id.Address, att attestation.Attestation, value uint64) error
	MultiOnAttest(ctx context.Context, caller id.Address, atts []attestation.Attestation, values []uint64, total uint64) error
	MultiOnRevoke(ctx context.Context, caller id.Address, atts []attestation.Attestation, values []uint64, total uint64) error
}

// Ledger is the interface the core consumes. Batched operations are
// all-or-nothing at the request boundary.
type Ledger interface {
	// Attest issues one attestation and returns its UID.
	Attest(ctx context.Context, attester id.Address, req attestation.Request) (id.UID, error)
	// MultiAttest issues a batch sharing one schema, with declared values
	// drawn from a single total pool.
	MultiAttest(ctx context.Context, attester id.Address, reqs []attestation.Request, values []uint64, total uint64) ([]id.UID, error)
	// Revoke marks an attestation revoked.
	Revoke(ctx context.Context, attester id.Address, uid id.UID, value uint64) error
	// MultiRevoke revokes a batch sharing one schema.
	MultiRevoke(ctx context.Context, attester id.Address, uids []id.UID, values []uint64, total uint64) error
	// Get returns the record for uid, or the zero record when none exists.
	// Callers apply the verifier to interpret the result.
	Get(ctx context.Context, uid id.UID) (attestation.Attestation, error)
}
