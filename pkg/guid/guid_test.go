package guid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsUniqueAndValid(t *testing.T) {
	seen := make(map[Guid]bool)
	for i := 0; i < 1000; i++ {
		g := New()
		assert.True(t, g.IsValid())
		assert.False(t, seen[g], "duplicate guid %s", g)
		seen[g] = true
	}
}

func TestZeroGuidIsInvalid(t *testing.T) {
	var g Guid
	assert.False(t, g.IsValid())
	assert.Equal(t, Invalid, g)
	assert.Equal(t, "00000000-00000000-00000000-00000000", g.String())
}

func TestBytesRoundTrip(t *testing.T) {
	g := NewGuid(0x01234567, 0x89ABCDEF, 0xDEADBEEF, 0xCAFEBABE)
	b := g.Bytes()

	// Big-endian word layout.
	assert.Equal(t, byte(0x01), b[0])
	assert.Equal(t, byte(0x67), b[3])
	assert.Equal(t, byte(0xCA), b[12])

	assert.Equal(t, g, FromBytes(b))
}

func TestStringParseRoundTrip(t *testing.T) {
	g := NewGuid(0x01234567, 0x89ABCDEF, 0xDEADBEEF, 0xCAFEBABE)
	s := g.String()
	assert.Equal(t, "01234567-89ABCDEF-DEADBEEF-CAFEBABE", s)

	parsed, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, g, parsed)

	// Lowercase input parses too.
	parsed, err = Parse("01234567-89abcdef-deadbeef-cafebabe")
	require.NoError(t, err)
	assert.Equal(t, g, parsed)
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"01234567",
		"01234567-89ABCDEF-DEADBEEF",
		"01234567-89ABCDEF-DEADBEEF-CAFEBABE-FF",
		"0123456-89ABCDEF-DEADBEEF-CAFEBABE",   // short segment
		"012345678-9ABCDEF0-DEADBEEF-CAFEBABE", // long segment
		"0123456G-89ABCDEF-DEADBEEF-CAFEBABE",  // non-hex digit
	}
	for _, input := range inputs {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrMalformedGuid, "input %q", input)
	}
}

func TestTextMarshaling(t *testing.T) {
	g := New()

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var back Guid
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g, back)

	var bad Guid
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &bad))
}
