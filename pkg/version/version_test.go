package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, New(1, 2, 3), v)

	v, err = Parse("1.2.3.44556")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 1, Minor: 2, Patch: 3, Changelist: 44556}, v)
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"1",
		"1.2",
		"1.2.3.4.5",
		"1.x.3",
		"-1.2.3",
		"1.2.99999", // overflows uint16
		"v1.2.3",
	}
	for _, input := range inputs {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrMalformedVersion, "input %q", input)
	}
}

func TestStringOmitsZeroChangelist(t *testing.T) {
	assert.Equal(t, "2.4.1", New(2, 4, 1).String())
	assert.Equal(t, "2.4.1.900", Version{Major: 2, Minor: 4, Patch: 1, Changelist: 900}.String())
}

func TestStringParseRoundTrip(t *testing.T) {
	for _, v := range []Version{
		New(0, 0, 1),
		New(10, 20, 30),
		{Major: 1, Minor: 0, Patch: 0, Changelist: 123456},
	} {
		parsed, err := Parse(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, New(1, 2, 3).Compare(New(1, 2, 3)))
	assert.Equal(t, -1, New(1, 2, 3).Compare(New(2, 0, 0)))
	assert.Equal(t, 1, New(1, 3, 0).Compare(New(1, 2, 9)))
	assert.Equal(t, -1, New(1, 2, 3).Compare(New(1, 2, 4)))

	// Changelist breaks patch-level ties.
	a := Version{Major: 1, Minor: 2, Patch: 3, Changelist: 100}
	b := Version{Major: 1, Minor: 2, Patch: 3, Changelist: 200}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}

func TestIsCompatibleWith(t *testing.T) {
	assert.True(t, New(1, 9, 9).IsCompatibleWith(New(1, 0, 0)))
	assert.False(t, New(2, 0, 0).IsCompatibleWith(New(1, 9, 9)))
}
