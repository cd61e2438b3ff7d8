package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceRationals(t *testing.T) {
	f := MustPrimeField("103")
	h := ReduceRationals(f)

	v, err := h.Map(big.NewRat(1, 2))
	require.NoError(t, err)
	require.Equal(t, int64(52), v.Int64())

	v, err = h.Map(big.NewRat(-3, 1))
	require.NoError(t, err)
	require.Equal(t, int64(100), v.Int64())

	_, err = h.Map(big.NewRat(1, 206))
	require.ErrorIs(t, err, ErrNotInDomain)
}

// A homomorphism must respect the ring operations.
func TestReduceRationalsIsHomomorphism(t *testing.T) {
	f := MustPrimeField("103")
	h := ReduceRationals(f)
	q := Rationals{}
	values := []*big.Rat{big.NewRat(1, 2), big.NewRat(-7, 3), big.NewRat(5, 1), big.NewRat(0, 1), big.NewRat(22, 7)}
	for _, a := range values {
		for _, b := range values {
			ha, _ := h.Map(a)
			hb, _ := h.Map(b)
			sum, err := h.Map(q.Add(a, b))
			require.NoError(t, err)
			prod, err := h.Map(q.Mul(a, b))
			require.NoError(t, err)
			require.True(t, f.Equal(sum, f.Add(ha, hb)))
			require.True(t, f.Equal(prod, f.Mul(ha, hb)))
		}
	}
}

func TestRepresentationIsomorphisms(t *testing.T) {
	bf := MustPrimeField("103")
	sf, err := NewSmallField(103)
	require.NoError(t, err)
	wf, err := NewFp256(bf.Modulus())
	require.NoError(t, err)

	toPrime, err := NewSmallToPrime(sf, bf)
	require.NoError(t, err)
	toSmall, err := NewPrimeToSmall(bf, sf)
	require.NoError(t, err)
	toWide, err := NewPrimeToFp256(bf, wf)
	require.NoError(t, err)

	for _, a := range sf.Elements() {
		b, err := toPrime.Map(a)
		require.NoError(t, err)
		back, err := toSmall.Map(b)
		require.NoError(t, err)
		require.Equal(t, a, back)
		w, err := toWide.Map(b)
		require.NoError(t, err)
		require.Equal(t, a, w.Uint64())
	}

	_, err = toSmall.Map(big.NewInt(500))
	require.ErrorIs(t, err, ErrNotInField)

	other, err := NewSmallField(97)
	require.NoError(t, err)
	_, err = NewSmallToPrime(other, bf)
	require.Error(t, err)
}

func TestMapAll(t *testing.T) {
	f := MustPrimeField("7")
	h := ReduceRationals(f)
	out, err := MapAll[*big.Rat, *big.Int](h, big.NewRat(1, 1), big.NewRat(8, 1))
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, int64(1), out[1].Int64())

	_, err = MapAll[*big.Rat, *big.Int](h, big.NewRat(1, 7))
	require.ErrorIs(t, err, ErrNotInDomain)

	id := Identity[*big.Int](f)
	v, err := id.Map(big.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, int64(3), v.Int64())
}
