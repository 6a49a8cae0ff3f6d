package testutil

import (
	"time"

	"attestry/internal/attestation"
	id "attestry/pkg/domain"
)

// TestIDs provides convenient pre-generated identifiers for tests.
// Use these for deterministic test data.
var TestIDs = struct {
	UID1     id.UID
	UID2     id.UID
	Schema1  id.SchemaUID
	Schema2  id.SchemaUID
	Subject1 id.Address
	Subject2 id.Address
	Issuer1  id.Address
	Issuer2  id.Address
	Ledger   id.Address
	Admin    id.Address
}{
	UID1:     mustUID("1111111111111111111111111111111111111111111111111111111111111111"),
	UID2:     mustUID("2222222222222222222222222222222222222222222222222222222222222222"),
	Schema1:  mustSchema("aaaa000000000000000000000000000000000000000000000000000000000001"),
	Schema2:  mustSchema("aaaa000000000000000000000000000000000000000000000000000000000002"),
	Subject1: mustAddress("5555000000000000000000000000000000000001"),
	Subject2: mustAddress("5555000000000000000000000000000000000002"),
	Issuer1:  mustAddress("1550000000000000000000000000000000000001"),
	Issuer2:  mustAddress("1550000000000000000000000000000000000002"),
	Ledger:   mustAddress("1ed6000000000000000000000000000000000000"),
	Admin:    mustAddress("ad00000000000000000000000000000000000000"),
}

// TestNow is a fixed observation time for deterministic validity checks.
var TestNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// AttestationBuilder provides a fluent interface for building test records.
type AttestationBuilder struct {
	att attestation.Attestation
}

// NewAttestationBuilder creates a builder with sensible valid defaults.
func NewAttestationBuilder() *AttestationBuilder {
	return &AttestationBuilder{
		att: attestation.Attestation{
			UID:       TestIDs.UID1,
			Schema:    TestIDs.Schema1,
			Subject:   TestIDs.Subject1,
			Attester:  TestIDs.Issuer1,
			Time:      TestNow.Add(-time.Hour),
			Revocable: true,
		},
	}
}

func (b *AttestationBuilder) WithUID(uid id.UID) *AttestationBuilder {
	b.att.UID = uid
	return b
}

func (b *AttestationBuilder) WithSchema(schema id.SchemaUID) *AttestationBuilder {
	b.att.Schema = schema
	return b
}

func (b *AttestationBuilder) WithSubject(subject id.Address) *AttestationBuilder {
	b.att.Subject = subject
	return b
}

func (b *AttestationBuilder) WithAttester(attester id.Address) *AttestationBuilder {
	b.att.Attester = attester
	return b
}

func (b *AttestationBuilder) WithExpiration(t time.Time) *AttestationBuilder {
	b.att.ExpirationTime = t
	return b
}

func (b *AttestationBuilder) WithRevocation(t time.Time) *AttestationBuilder {
	b.att.RevocationTime = t
	return b
}

func (b *AttestationBuilder) WithData(data []byte) *AttestationBuilder {
	b.att.Data = data
	return b
}

func (b *AttestationBuilder) WithValue(value uint64) *AttestationBuilder {
	b.att.Value = value
	return b
}

func (b *AttestationBuilder) Build() attestation.Attestation {
	return b.att
}

func mustUID(s string) id.UID {
	uid, err := id.ParseUID(s)
	if err != nil {
		panic(err)
	}
	return uid
}

func mustSchema(s string) id.SchemaUID {
	uid, err := id.ParseSchemaUID(s)
	if err != nil {
		panic(err)
	}
	return uid
}

func mustAddress(s string) id.Address {
	addr, err := id.ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}
