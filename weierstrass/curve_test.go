package weierstrass

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walterschell/jacobiancurves/field"
)

func TestDiscriminant(t *testing.T) {
	c := long103(t)
	assert.Equal(t, uint64(53), c.Discriminant())
	assert.True(t, c.IsElliptic())
	assert.False(t, c.IsShort())

	// b2 = 1 + 8, b4 = 10 + 3, b6 = 9 + 28
	assert.Equal(t, uint64(9), c.B2())
	assert.Equal(t, uint64(13), c.B4())
	assert.Equal(t, uint64(37), c.B6())
}

func TestShortDiscriminantMatchesFormula(t *testing.T) {
	// for short curves the discriminant is -16(4a^3 + 27b^2)
	q := field.Rationals{}
	c := NewShortCurve[*big.Rat](q, big.NewRat(-1, 1), big.NewRat(1, 1))
	expected := big.NewRat(-16*(4*-1+27*1), 1)
	assert.Equal(t, 0, c.Discriminant().Cmp(expected))
}

func TestSingularCurve(t *testing.T) {
	// Y^2 = X^3 has a cusp at the origin
	f := smallField(t, 103)
	c := NewShortCurve[uint64](f, 0, 0)
	assert.False(t, c.IsElliptic())

	_, err := c.NewPoint(0, 0)
	assert.ErrorIs(t, err, SingularPointError{})

	// other points of the cuspidal cubic are nonsingular
	p, err := c.NewPoint(4, 8)
	require.NoError(t, err)
	assert.False(t, p.IsInfinity())

	_, err = c.NewPoint(1, 2)
	assert.ErrorIs(t, err, NotOnCurveError{})
}

func TestMapCurve(t *testing.T) {
	q := field.Rationals{}
	c := NewCurve[*big.Rat](q, big.NewRat(1, 1), big.NewRat(2, 1), big.NewRat(3, 1), big.NewRat(5, 1), big.NewRat(7, 1))
	f := field.MustPrimeField("103")

	mapped, err := MapCurve[*big.Rat, *big.Int](field.ReduceRationals(f), c)
	require.NoError(t, err)
	assert.Equal(t, int64(53), mapped.Discriminant().Int64())

	half := NewShortCurve[*big.Rat](q, big.NewRat(1, 103), big.NewRat(1, 1))
	_, err = MapCurve[*big.Rat, *big.Int](field.ReduceRationals(f), half)
	assert.ErrorIs(t, err, field.ErrNotInDomain)
}

func TestCurveEqual(t *testing.T) {
	a := long103(t)
	b := long103(t)
	assert.True(t, a.Equal(b))
	other := NewCurve[uint64](a.Field(), 1, 2, 3, 5, 8)
	assert.False(t, a.Equal(other))
	assert.Equal(t, "E[F_103](1, 2, 3, 5, 7)", a.String())
}
