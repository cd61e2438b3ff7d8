package weierstrass

import (
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walterschell/jacobiancurves/field"
)

// P256 Curve Parameters in JSON format
// Note that a is -3 mod p
const p256json = `
{
	"p": "0xffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
	"a": "0xffffffff00000001000000000000000000000000fffffffffffffffffffffffc",
	"b": "0x5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
	"gx": "0x6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
	"gy": "0x4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
	"n": "0xffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
	"name": "p256"
}
`

func p256Params(t testing.TB) *CurveParams {
	curvemap := make(map[string]string)
	err := json.Unmarshal([]byte(p256json), &curvemap)
	require.NoError(t, err, "p256: invalid json")
	result, err := NewCurveParams(curvemap["p"], curvemap["a"], curvemap["b"],
		curvemap["gx"], curvemap["gy"], curvemap["n"], curvemap["name"])
	require.NoError(t, err, "p256: invalid curve params")
	return result
}

// tinyParams: Y^2 = X^3 + 63X + 33 over F_103, prime order 97.
func tinyParams(t testing.TB) *CurveParams {
	cp, err := NewCurveParams("103", "63", "33", "90", "2", "97", "tiny")
	require.NoError(t, err)
	return cp
}

// long103Params: all five coefficients nonzero, base point of order 5.
func long103Params(t testing.TB) *CurveParams {
	coeffs := Coefficients{
		A1: big.NewInt(1),
		A2: big.NewInt(2),
		A3: big.NewInt(3),
		A4: big.NewInt(5),
		A6: big.NewInt(7),
	}
	cp, err := NewLongCurveParams(big.NewInt(103), coeffs, big.NewInt(20), big.NewInt(39), big.NewInt(5), "long103")
	require.NoError(t, err)
	return cp
}

func smallField(t testing.TB, p uint64) *field.SmallField {
	f, err := field.NewSmallField(p)
	require.NoError(t, err)
	return f
}

// long103 is the long103 curve over the uint64 backend.
func long103(t testing.TB) *Curve[uint64] {
	return NewCurve[uint64](smallField(t, 103), 1, 2, 3, 5, 7)
}

// allPoints enumerates every point of a curve over a small field, the point
// at infinity first.
func allPoints(t testing.TB, c *Curve[uint64]) []*Point[uint64] {
	f := c.Field().(*field.SmallField)
	result := []*Point[uint64]{c.Infinity()}
	for _, x := range f.Elements() {
		for _, y := range f.Elements() {
			if c.Nonsingular(x, y) {
				p, err := c.NewPoint(x, y)
				require.NoError(t, err)
				result = append(result, p)
			}
		}
	}
	return result
}

func mustPoint[E any](t testing.TB, c *Curve[E], x, y E) *Point[E] {
	p, err := c.NewPoint(x, y)
	require.NoError(t, err, fmt.Sprintf("(%v, %v)", x, y))
	return p
}
