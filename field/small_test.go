package field

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModmul(t *testing.T) {
	require.Equal(t, uint64(1), modmul(2, 3, 5))
	require.Equal(t, uint64(0), modmul(2, 3, 6))
	// operands whose product overflows 64 bits
	require.Equal(t, uint64(1), modmul(1<<63, 2, (1<<64)-1))
}

func TestModexp(t *testing.T) {
	var expected [][]uint64 = [][]uint64{
		{1, 0, 5, 1},
		{2, 0, 5, 1},
		{2, 1, 5, 2},
		{2, 2, 5, 4},
		{2, 3, 5, 3},
		{0x037a7e95e6abf6, 2, 0x0388cde6d6a9eb, 0x13a358525d8c7},
	}
	for _, e := range expected {
		actual := modexp(e[0], e[1], e[2])
		t.Logf("%v^%v mod %v = %v (got %v)\n", e[0], e[1], e[2], e[3], actual)
		require.Equal(t, e[3], actual)
	}
}

func TestModsum(t *testing.T) {
	max := uint64(1<<64 - 1)
	require.Equal(t, uint64(0), modsum(3, max, max, max))
	require.Equal(t, uint64(6), modsum(7, 1, 2, 3))
}

func TestJacobi(t *testing.T) {
	require.Equal(t, 1, Jacobi(5, 41))
	require.Equal(t, -1, Jacobi(3, 41))
	require.Equal(t, 0, Jacobi(9, 15))
	require.Panics(t, func() { Jacobi(3, 4) })
}

func TestModSqrt(t *testing.T) {
	r, ok := ModSqrt(5, 41)
	require.True(t, ok)
	require.Equal(t, uint64(5), r*r%41)

	_, ok = ModSqrt(3, 41)
	require.False(t, ok)

	// C50 modulus
	p := uint64(0x0388cde6d6a9eb)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		x := rng.Uint64() % p
		sq := modmul(x, x, p)
		r, ok := ModSqrt(sq, p)
		require.True(t, ok)
		require.Equal(t, sq, modmul(r, r, p))
	}
}

func TestModSqrtExhaustive(t *testing.T) {
	for _, p := range []uint64{3, 5, 7, 17, 41, 97, 103, 257} {
		squares := map[uint64]bool{}
		for x := uint64(0); x < p; x++ {
			squares[x*x%p] = true
		}
		for n := uint64(0); n < p; n++ {
			r, ok := ModSqrt(n, p)
			require.Equal(t, squares[n], ok, "p=%d n=%d", p, n)
			if ok {
				require.Equal(t, n, r*r%p, "p=%d n=%d", p, n)
			}
		}
	}
}

func TestSmallFieldRejectsComposite(t *testing.T) {
	_, err := NewSmallField(91)
	require.ErrorIs(t, err, ErrNotPrime)
	_, err = NewSmallField(2)
	require.ErrorIs(t, err, ErrNotPrime)
}

func TestSmallFieldArithmetic(t *testing.T) {
	f, err := NewSmallField(103)
	require.NoError(t, err)

	require.Equal(t, uint64(102), f.FromInt64(-1))
	require.Equal(t, uint64(0), f.FromInt64(-103))
	require.Equal(t, uint64(1), f.FromInt64(104))
	for _, a := range f.Elements() {
		require.Equal(t, uint64(0), f.Add(a, f.Neg(a)))
		if a != 0 {
			require.Equal(t, uint64(1), f.Mul(a, f.Inv(a)))
		}
	}
	require.Panics(t, func() { f.Inv(0) })
}

func TestSmallFieldResidues(t *testing.T) {
	for _, p := range []uint64{97, 101, 103} {
		f, err := NewSmallField(p)
		require.NoError(t, err)
		squares := map[uint64]bool{}
		cubes := map[uint64]bool{}
		for _, x := range f.Elements() {
			squares[f.Mul(x, x)] = true
			cubes[Cube[uint64](f, x)] = true
		}
		for _, a := range f.Elements() {
			require.Equal(t, squares[a], f.IsSquare(a), "p=%d a=%d", p, a)
			require.Equal(t, cubes[a], f.IsCube(a), "p=%d a=%d", p, a)
		}
	}
}
