package relay

import (
	"encoding/hex"
	"strings"

	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// Packed combines a subject address and a 2-letter country code in one
// 32-byte wide value, the bandwidth-optimized wire shape for country
// claims. The address occupies the low 20 bytes; the country code sits in
// the two bytes directly above it.
type Packed [32]byte

const (
	countryHigh = 10
	addressLow  = 12
)

// ParsePacked decodes the hex wire form of a packed value.
func ParsePacked(s string) (Packed, error) {
	var p Packed
	if s == "" {
		return p, dErrors.New(dErrors.CodeInvalidInput, "packed value cannot be empty")
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil || len(raw) != len(p) {
		return p, dErrors.New(dErrors.CodeInvalidInput, "invalid packed value")
	}
	copy(p[:], raw)
	return p, nil
}

// Pack builds the wide value from its components. Used by tests and by
// callers that assemble requests locally.
func Pack(subject id.Address, country string) (Packed, error) {
	var p Packed
	if len(country) != 2 {
		return p, dErrors.New(dErrors.CodeInvalidCountry, "country code must be two letters")
	}
	copy(p[addressLow:], subject[:])
	copy(p[countryHigh:addressLow], country)
	return p, nil
}

// Unpack splits the value into subject and country, validating both are
// present and the country is a two-letter uppercase code.
func (p Packed) Unpack() (id.Address, string, error) {
	var subject id.Address
	copy(subject[:], p[addressLow:])
	if subject.IsZero() {
		return id.ZeroAddress, "", dErrors.New(dErrors.CodeInvalidRecipient, "packed subject is the zero address")
	}

	c0, c1 := p[countryHigh], p[countryHigh+1]
	if c0 == 0 && c1 == 0 {
		return id.ZeroAddress, "", dErrors.New(dErrors.CodeInvalidCountry, "packed country code is empty")
	}
	if !isCountryLetter(c0) || !isCountryLetter(c1) {
		return id.ZeroAddress, "", dErrors.New(dErrors.CodeInvalidCountry, "country code must be two uppercase letters")
	}
	return subject, string([]byte{c0, c1}), nil
}

func isCountryLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
