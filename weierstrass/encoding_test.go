package weierstrass

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigPoints enumerates the points of a curve over a small prime field given
// by CurveParams.
func bigPoints(t *testing.T, cp *CurveParams) []*Point[*big.Int] {
	c := cp.Curve()
	result := []*Point[*big.Int]{c.Infinity()}
	p := cp.P().Int64()
	for x := int64(0); x < p; x++ {
		for y := int64(0); y < p; y++ {
			bx, by := big.NewInt(x), big.NewInt(y)
			if c.Nonsingular(bx, by) {
				result = append(result, mustPoint(t, c, bx, by))
			}
		}
	}
	return result
}

func TestBitstreamRoundTripSmallCurves(t *testing.T) {
	for _, cp := range []*CurveParams{tinyParams(t), long103Params(t)} {
		for _, p := range bigPoints(t, cp) {
			bs := cp.MarshalPointBitstream(p)
			require.Equal(t, uint(cp.PointBitstreamSize()), bs.Size())
			decoded, err := cp.UnmarshalPointBitstream(bs)
			require.NoError(t, err, "%s %v", cp.Name(), p)
			require.True(t, decoded.Equal(p), "%s: %v decoded as %v", cp.Name(), p, decoded)
		}
	}
}

func TestBinaryRoundTripSmallCurves(t *testing.T) {
	for _, cp := range []*CurveParams{tinyParams(t), long103Params(t)} {
		for _, p := range bigPoints(t, cp) {
			data, err := cp.MarshalPoint(p)
			require.NoError(t, err)
			decoded, err := cp.UnmarshalPoint(data)
			require.NoError(t, err, "%s %v", cp.Name(), p)
			require.True(t, decoded.Equal(p), "%s: %v decoded as %v", cp.Name(), p, decoded)
		}
	}
}

func TestLongCurveSelector(t *testing.T) {
	cp := long103Params(t)
	// 2*39 + 20 + 3 = 101 and 2*41 + 20 + 3 = 105 = 2 mod 103
	assert.Equal(t, uint(1), cp.ySelector(big.NewInt(20), big.NewInt(39)))
	assert.Equal(t, uint(0), cp.ySelector(big.NewInt(20), big.NewInt(41)))

	p, err := cp.NewPointCompressed(big.NewInt(20), 0)
	require.NoError(t, err)
	assert.Equal(t, "(20, 41)", p.String())
}

func TestP256Encoding(t *testing.T) {
	cp := p256Params(t)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 8; i++ {
		k := new(big.Int).Rand(rng, cp.N())
		p := cp.G().Mul(k)

		bs := cp.MarshalPointBitstream(p)
		decoded, err := cp.UnmarshalPointBitstream(bs)
		require.NoError(t, err)
		assert.True(t, decoded.Equal(p))

		data, err := cp.MarshalPoint(p)
		require.NoError(t, err)
		decoded, err = cp.UnmarshalPoint(data)
		require.NoError(t, err)
		assert.True(t, decoded.Equal(p))
	}
}

func TestUnmarshalPointWrongCurve(t *testing.T) {
	tiny := tinyParams(t)
	long := long103Params(t)
	data, err := tiny.MarshalPoint(tiny.G())
	require.NoError(t, err)
	_, err = long.UnmarshalPoint(data)
	assert.Error(t, err)
}

func TestUnmarshalPointInvalid(t *testing.T) {
	cp := tinyParams(t)
	_, err := cp.UnmarshalPoint([]byte{0x07})
	assert.Error(t, err)
	_, err = cp.UnmarshalPoint(nil)
	assert.Error(t, err)

	data, err := cp.MarshalPoint(cp.G())
	require.NoError(t, err)
	_, err = cp.UnmarshalPoint(data[:len(data)-1])
	assert.Error(t, err)
}

func TestNewPointCompressedOffCurve(t *testing.T) {
	cp := tinyParams(t)
	found := false
	for x := int64(0); x < 103; x++ {
		if _, err := cp.NewPointCompressed(big.NewInt(x), 0); err != nil {
			assert.ErrorIs(t, err, NotOnCurveError{})
			found = true
		}
	}
	assert.True(t, found)
	_, err := cp.NewPointCompressed(big.NewInt(103), 0)
	assert.ErrorIs(t, err, NotOnCurveError{})
}
