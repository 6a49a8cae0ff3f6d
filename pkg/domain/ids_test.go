package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "attestry/pkg/domain-errors"
)

func TestParseUID_RoundTrip(t *testing.T) {
	in := "0x" + strings.Repeat("ab", 32)
	uid, err := ParseUID(in)
	require.NoError(t, err)
	assert.Equal(t, in, uid.String())
	assert.False(t, uid.IsZero())
}

func TestParseUID_NoPrefix(t *testing.T) {
	uid, err := ParseUID(strings.Repeat("01", 32))
	require.NoError(t, err)
	assert.False(t, uid.IsZero())
}

func TestParseUID_AllZeroIsSentinel(t *testing.T) {
	uid, err := ParseUID("0x" + strings.Repeat("00", 32))
	require.NoError(t, err)
	assert.True(t, uid.IsZero())
	assert.Equal(t, ZeroUID, uid)
}

func TestParseUID_Empty(t *testing.T) {
	_, err := ParseUID("")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestParseUID_WrongLength(t *testing.T) {
	_, err := ParseUID("0xabcd")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestParseUID_NotHex(t *testing.T) {
	_, err := ParseUID("0x" + strings.Repeat("zz", 32))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestParseAddress_RoundTrip(t *testing.T) {
	in := "0x" + strings.Repeat("1f", 20)
	addr, err := ParseAddress(in)
	require.NoError(t, err)
	assert.Equal(t, in, addr.String())
}

func TestParseAddress_UIDLengthRejected(t *testing.T) {
	_, err := ParseAddress("0x" + strings.Repeat("1f", 32))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestParseSchemaUID_RoundTrip(t *testing.T) {
	in := "0x" + strings.Repeat("c3", 32)
	uid, err := ParseSchemaUID(in)
	require.NoError(t, err)
	assert.Equal(t, in, uid.String())
}
