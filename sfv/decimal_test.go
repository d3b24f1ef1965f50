package sfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalRoundingHalfEven(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4.5", "4.5"},
		{"4.1", "4.1"},
		{"1.0", "1.0"},
		{"-1.0", "-1.0"},
		{"0.0001", "0.0"},
		{"1.2345", "1.234"},  // tie broken by rounding to even: 4 is even
		{"1.2355", "1.236"},  // rounds up since candidate digit 5 is odd -> even 6
		{"-1.2345", "-1.234"},
		{"100.0", "100.0"},
	}
	for _, c := range cases {
		d, err := DecimalFromString(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, d.String(), "input %s", c.in)
	}
}

func TestDecimalMagnitudeBoundary(t *testing.T) {
	d, err := DecimalFromString("999999999999.999")
	require.NoError(t, err)
	assert.True(t, d.magnitudeOK())

	over, err := DecimalFromString("1000000000000.0")
	require.NoError(t, err)
	assert.False(t, over.magnitudeOK())
}

func TestDecimalEqualAcrossConstruction(t *testing.T) {
	a := NewDecimal(9, 2)
	b, err := DecimalFromString("4.5")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
