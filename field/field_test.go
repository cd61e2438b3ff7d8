package field

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secp256k1P = "0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"

func TestPrimeFieldRejectsComposite(t *testing.T) {
	_, err := NewPrimeField(big.NewInt(91))
	require.ErrorIs(t, err, ErrNotPrime)
	_, err = NewPrimeField(big.NewInt(-7))
	require.ErrorIs(t, err, ErrNotPrime)
	require.Panics(t, func() { MustPrimeField("0x10") })
}

func TestPrimeFieldArithmetic(t *testing.T) {
	f := MustPrimeField("103")
	a := f.FromInt64(-5)
	assert.Equal(t, "98", f.Format(a))
	assert.True(t, f.IsZero(f.Add(a, big.NewInt(5))))
	assert.Equal(t, int64(1), f.Mul(a, f.Inv(a)).Int64())
	assert.True(t, f.Equal(f.Sub(f.Zero(), f.One()), f.Neg(f.One())))
	assert.True(t, f.Contains(a))
	assert.False(t, f.Contains(big.NewInt(103)))
	assert.Equal(t, int64(8), pow[*big.Int](f, big.NewInt(2), 3).Int64())
	assert.Equal(t, int64(81), Cube[*big.Int](f, a).Int64())
	assert.Equal(t, int64(3), MulInt[*big.Int](f, 3, f.One()).Int64())
	assert.Equal(t, int64(6), Sum[*big.Int](f, f.One(), big.NewInt(2), big.NewInt(3)).Int64())
	assert.True(t, f.Equal(Div[*big.Int](f, big.NewInt(6), big.NewInt(3)), big.NewInt(2)))
	require.Panics(t, func() { f.Inv(f.Zero()) })
}

func TestPrimeFieldAgreesWithSmallField(t *testing.T) {
	bf := MustPrimeField("103")
	sf, err := NewSmallField(103)
	require.NoError(t, err)
	for _, a := range sf.Elements() {
		ba := bf.FromBig(sf.ToBig(a))
		assert.Equal(t, sf.IsSquare(a), bf.IsSquare(ba), "a=%d", a)
		assert.Equal(t, sf.IsCube(a), bf.IsCube(ba), "a=%d", a)
		r, ok := bf.Sqrt(ba)
		if ok {
			assert.Equal(t, 0, bf.Mul(r, r).Cmp(ba))
		}
	}
}

func TestCubesWhenPIsTwoModThree(t *testing.T) {
	// every element is a cube when 3 does not divide p-1
	f := MustPrimeField("101")
	for i := int64(0); i < 101; i++ {
		assert.True(t, f.IsCube(f.FromInt64(i)))
	}
}

func TestFp256AgreesWithPrimeField(t *testing.T) {
	bf := MustPrimeField(secp256k1P)
	wf, err := NewFp256(bf.Modulus())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	random := func() *big.Int {
		return new(big.Int).Rand(rng, bf.Modulus())
	}
	for i := 0; i < 200; i++ {
		a, b := random(), random()
		wa, wb := wf.FromBig(a), wf.FromBig(b)
		require.Equal(t, 0, bf.Add(a, b).Cmp(wf.ToBig(wf.Add(wa, wb))))
		require.Equal(t, 0, bf.Sub(a, b).Cmp(wf.ToBig(wf.Sub(wa, wb))))
		require.Equal(t, 0, bf.Mul(a, b).Cmp(wf.ToBig(wf.Mul(wa, wb))))
		require.Equal(t, 0, bf.Neg(a).Cmp(wf.ToBig(wf.Neg(wa))))
		if a.Sign() != 0 {
			require.Equal(t, 0, bf.Inv(a).Cmp(wf.ToBig(wf.Inv(wa))))
		}
		require.Equal(t, bf.IsSquare(a), wf.IsSquare(wa))
	}
	require.True(t, wf.IsZero(wf.FromInt64(0)))
	require.Equal(t, 0, bf.FromInt64(-1).Cmp(wf.ToBig(wf.FromInt64(-1))))
	require.Panics(t, func() { wf.Inv(wf.Zero()) })
}

func TestFp256RejectsWideModulus(t *testing.T) {
	p := new(big.Int).Lsh(big.NewInt(1), 300)
	_, err := NewFp256(p)
	require.ErrorIs(t, err, ErrModulusTooLarge)
}

func TestRationals(t *testing.T) {
	q := Rationals{}
	half := big.NewRat(1, 2)
	assert.Equal(t, "1/2", q.Format(half))
	assert.True(t, q.Equal(q.Add(half, half), q.One()))
	assert.True(t, q.Equal(q.Inv(half), q.FromInt64(2)))
	assert.True(t, q.IsZero(q.Sub(half, half)))
	require.Panics(t, func() { q.Inv(q.Zero()) })

	assert.True(t, q.IsSquare(big.NewRat(9, 4)))
	assert.False(t, q.IsSquare(big.NewRat(2, 1)))
	assert.False(t, q.IsSquare(big.NewRat(-1, 1)))
	assert.True(t, q.IsCube(big.NewRat(-27, 8)))
	assert.False(t, q.IsCube(big.NewRat(9, 1)))
	assert.True(t, q.IsCube(q.Zero()))

	r, ok := q.FromString("3/6")
	require.True(t, ok)
	assert.True(t, q.Equal(r, half))
}

func TestIntRoot(t *testing.T) {
	for n := int64(1); n < 2000; n++ {
		r := intRoot(big.NewInt(n), 3).Int64()
		assert.True(t, r*r*r <= n && (r+1)*(r+1)*(r+1) > n, "n=%d r=%d", n, r)
	}
	big3 := new(big.Int).Exp(big.NewInt(1234567891011), big.NewInt(3), nil)
	assert.True(t, isPerfectPower(big3, 3))
	assert.False(t, isPerfectPower(new(big.Int).Add(big3, big.NewInt(1)), 3))
}
