package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	a, err := FromString("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", a.String())

	_, err = FromString("not a number")
	assert.Error(t, err)
}

func TestRoundsToTwoPlaces(t *testing.T) {
	a, err := FromString("1.005")
	require.NoError(t, err)
	assert.Equal(t, "1.01", a.String())

	assert.Equal(t, "0.10", FromFloat(0.1).String())
}

func TestMulRounds(t *testing.T) {
	// 3.33 shares at 3.33 each is 11.0889, which rounds to 11.09.
	q := MustFromString("3.33")
	p := MustFromString("3.33")
	assert.Equal(t, "11.09", q.Mul(p).String())
}

func TestNoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3 under decimal semantics.
	sum := MustFromString("0.1").Add(MustFromString("0.2"))
	assert.True(t, sum.Equal(MustFromString("0.3")))
}

func TestComparisons(t *testing.T) {
	assert.True(t, MustFromString("100.00").GreaterThan(MustFromString("99.99")))
	assert.False(t, MustFromString("100.00").GreaterThan(MustFromString("100.00")))
	assert.True(t, MustFromString("-1").LessThan(Zero()))
	assert.Equal(t, 0, Zero().Sign())
	assert.Equal(t, -1, MustFromString("5").Neg().Sign())
}

func TestUSD(t *testing.T) {
	assert.Equal(t, "$1,234.56", MustFromString("1234.56").USD())
	assert.Equal(t, "$0.00", Zero().USD())
}
