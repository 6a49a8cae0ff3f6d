// Package attestation defines the record shape shared by the ledger, the
// verifier, the indexer, and the resolver. The ledger owns these records;
// everything else reads them.
package attestation

import (
	"time"

	id "attestry/pkg/domain"
)

// Attestation is a single typed claim about a subject, as stored on the
// ledger. A record with the zero UID never exists; any non-sentinel record
// returned by the ledger must carry a non-zero schema and attester.
type Attestation struct {
	UID            id.UID
	Schema         id.SchemaUID
	Subject        id.Address
	Attester       id.Address
	Time           time.Time
	ExpirationTime time.Time // zero = never expires
	RevocationTime time.Time // zero = not revoked
	Data           []byte
	Value          uint64
	Revocable      bool
}

// IsZero reports whether this is the sentinel "no attestation" record.
func (a Attestation) IsZero() bool {
	return a.UID.IsZero()
}

// Expired reports whether the record's expiration is set and has passed.
func (a Attestation) Expired(now time.Time) bool {
	return !a.ExpirationTime.IsZero() && !a.ExpirationTime.After(now)
}

// Revoked reports whether the record carries a revocation time.
func (a Attestation) Revoked() bool {
	return !a.RevocationTime.IsZero()
}

// Request describes one attestation to be issued. The ledger fills in the
// UID, attester, and issuance time.
type Request struct {
	Schema         id.SchemaUID
	Subject        id.Address
	ExpirationTime time.Time
	Revocable      bool
	Data           []byte
	Value          uint64
}
