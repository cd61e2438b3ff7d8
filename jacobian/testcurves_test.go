package jacobian

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walterschell/jacobiancurves/field"
	"github.com/walterschell/jacobiancurves/weierstrass"
)

func smallField(t testing.TB, p uint64) *field.SmallField {
	f, err := field.NewSmallField(p)
	require.NoError(t, err)
	return f
}

// long103 is Y^2 + XY + 3Y = X^3 + 2X^2 + 5X + 7 over F_103, 90 points.
func long103(t testing.TB, opts ...Option) *Curve[uint64] {
	return NewCurve(weierstrass.NewCurve[uint64](smallField(t, 103), 1, 2, 3, 5, 7), opts...)
}

// tiny is Y^2 = X^3 + 63X + 33 over F_103, prime order 97.
func tiny(t testing.TB, opts ...Option) *Curve[uint64] {
	return NewCurve(weierstrass.NewShortCurve[uint64](smallField(t, 103), 63, 33), opts...)
}

// rationalCurve is Y^2 = X^3 + 1 over Q.
func rationalCurve(opts ...Option) *Curve[*big.Rat] {
	q := field.Rationals{}
	return NewCurve(weierstrass.NewShortCurve[*big.Rat](q, q.Zero(), q.One()), opts...)
}

// affinePoints enumerates the affine group of a curve over a small field,
// infinity first.
func affinePoints(t testing.TB, c *Curve[uint64]) []*weierstrass.Point[uint64] {
	w := c.Weierstrass()
	f := c.Field().(*field.SmallField)
	result := []*weierstrass.Point[uint64]{w.Infinity()}
	for _, x := range f.Elements() {
		for _, y := range f.Elements() {
			if w.Nonsingular(x, y) {
				p, err := w.NewPoint(x, y)
				require.NoError(t, err)
				result = append(result, p)
			}
		}
	}
	return result
}

func randomUnit(rng *rand.Rand, f *field.SmallField) uint64 {
	return 1 + uint64(rng.Int63n(int64(f.P()-1)))
}

// scaledTriples lifts every affine point and rescales it by a random unit so
// that no test depends on the canonical representative.
func scaledTriples(t testing.TB, c *Curve[uint64], rng *rand.Rand) []Triple[uint64] {
	f := c.Field().(*field.SmallField)
	points := affinePoints(t, c)
	result := make([]Triple[uint64], len(points))
	for i, p := range points {
		result[i] = c.Smul(randomUnit(rng, f), c.FromAffine(p))
	}
	return result
}

func mustPoint[E any](t testing.TB, c *Curve[E], P Triple[E]) *Point[E] {
	p, err := c.NewPoint(P)
	require.NoError(t, err, c.FormatTriple(P))
	return p
}

func rat(a, b int64) *big.Rat {
	return big.NewRat(a, b)
}
