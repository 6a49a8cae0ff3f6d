// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"encoding/hex"
	"strings"

	dErrors "attestry/pkg/domain-errors"
)

// UID identifies a single attestation on the ledger. The all-zero value is
// the sentinel meaning "no attestation".
type UID [32]byte

// SchemaUID identifies a claim type (schema) on the ledger.
type SchemaUID [32]byte

// Address identifies a principal (issuer, subject, service identity).
type Address [20]byte

// Zero values double as sentinels across the core.
var (
	ZeroUID     UID
	ZeroSchema  SchemaUID
	ZeroAddress Address
)

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseUID(s string) (UID, error) {
	var uid UID
	if err := parseHex(s, uid[:], "attestation UID"); err != nil {
		return ZeroUID, err
	}
	return uid, nil
}

func ParseSchemaUID(s string) (SchemaUID, error) {
	var uid SchemaUID
	if err := parseHex(s, uid[:], "schema UID"); err != nil {
		return ZeroSchema, err
	}
	return uid, nil
}

func ParseAddress(s string) (Address, error) {
	var addr Address
	if err := parseHex(s, addr[:], "address"); err != nil {
		return ZeroAddress, err
	}
	return addr, nil
}

// String methods - for logging and debugging.

func (u UID) String() string       { return "0x" + hex.EncodeToString(u[:]) }
func (u SchemaUID) String() string { return "0x" + hex.EncodeToString(u[:]) }
func (a Address) String() string   { return "0x" + hex.EncodeToString(a[:]) }

// IsZero checks - used for service-layer validation and sentinel handling.

func (u UID) IsZero() bool       { return u == ZeroUID }
func (u SchemaUID) IsZero() bool { return u == ZeroSchema }
func (a Address) IsZero() bool   { return a == ZeroAddress }

// parseHex is the shared validation logic. Accepts an optional 0x prefix and
// requires the exact byte length of the destination identifier.
// Note: all-zero values are allowed here. Use IsZero() at the service layer
// for business validation, which allows store lookups to return proper
// "not found" errors for consistency.
func parseHex(s string, dst []byte, label string) error {
	if s == "" {
		return dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	if len(raw) != len(dst) {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" length")
	}
	copy(dst, raw)
	return nil
}
