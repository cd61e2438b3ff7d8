package field

import (
	"math/big"
)

// Rationals is the field Q with elements stored as *big.Rat.
type Rationals struct{}

var _ Field[*big.Rat] = Rationals{}

func (Rationals) Name() string { return "Q" }

func (Rationals) Zero() *big.Rat { return new(big.Rat) }
func (Rationals) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rationals) FromInt64(v int64) *big.Rat {
	return new(big.Rat).SetInt64(v)
}

// FromString parses "a/b", "a" or a decimal such as "1.5".
func (Rationals) FromString(s string) (*big.Rat, bool) {
	return new(big.Rat).SetString(s)
}

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rationals) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rationals) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (Rationals) Inv(a *big.Rat) *big.Rat {
	if a.Sign() == 0 {
		panic("division by zero in Q")
	}
	return new(big.Rat).Inv(a)
}

func (Rationals) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }
func (Rationals) IsZero(a *big.Rat) bool   { return a.Sign() == 0 }

// IsSquare checks numerator and denominator, which big.Rat keeps coprime.
func (Rationals) IsSquare(a *big.Rat) bool {
	if a.Sign() < 0 {
		return false
	}
	return isPerfectPower(a.Num(), 2) && isPerfectPower(a.Denom(), 2)
}

func (Rationals) IsCube(a *big.Rat) bool {
	return isPerfectPower(new(big.Int).Abs(a.Num()), 3) && isPerfectPower(a.Denom(), 3)
}

func (Rationals) Format(a *big.Rat) string {
	return a.RatString()
}

// isPerfectPower reports whether the non-negative integer n is an exact k-th
// power, for k in {2, 3}.
func isPerfectPower(n *big.Int, k uint) bool {
	if n.Sign() == 0 {
		return true
	}
	r := intRoot(n, k)
	return new(big.Int).Exp(r, big.NewInt(int64(k)), nil).Cmp(n) == 0
}

// intRoot returns floor(n^(1/k)) for n > 0 by bisection.
func intRoot(n *big.Int, k uint) *big.Int {
	if k == 2 {
		return new(big.Int).Sqrt(n)
	}
	exp := big.NewInt(int64(k))
	lo := big.NewInt(0)
	hi := new(big.Int).Lsh(one, uint(n.BitLen())/k+1)
	mid := new(big.Int)
	pow := new(big.Int)
	for new(big.Int).Sub(hi, lo).Cmp(one) > 0 {
		mid.Add(lo, hi)
		mid.Rsh(mid, 1)
		pow.Exp(mid, exp, nil)
		if pow.Cmp(n) <= 0 {
			lo.Set(mid)
		} else {
			hi.Set(mid)
		}
	}
	return lo
}
