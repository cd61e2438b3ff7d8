package field

import (
	"fmt"
	"math/big"
	"math/bits"
)

// SmallField is a prime field small enough for 64 bit math. Products are
// reduced through 128 bit intermediates, so any odd prime below 2^64 works.
type SmallField struct {
	p uint64
}

var _ Prime[uint64] = (*SmallField)(nil)

func NewSmallField(p uint64) (*SmallField, error) {
	if p < 3 || !new(big.Int).SetUint64(p).ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: %d", ErrNotPrime, p)
	}
	return &SmallField{p: p}, nil
}

// Jacobi computes the Jacobi symbol (n/k) for odd k.
func Jacobi(n, k uint64) int {
	if k%2 == 0 {
		panic("Jacobi: k must be odd")
	}
	n %= k
	t := 1
	for n != 0 {
		for n%2 == 0 {
			n /= 2
			r := k % 8
			if r == 3 || r == 5 {
				t = -t
			}
		}
		n, k = k, n
		if n%4 == 3 && k%4 == 3 {
			t = -t
		}
		n %= k
	}
	if k == 1 {
		return t
	}
	return 0
}

func modmul(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}

func modsum(m uint64, terms ...uint64) uint64 {
	var hi, lo uint64
	for _, num := range terms {
		var carry uint64
		lo, carry = bits.Add64(lo, num, 0)
		hi += carry
	}
	return bits.Rem64(hi, lo, m)
}

func modsub(x, y, m uint64) uint64 {
	if x < y {
		return m - (y - x)
	}
	return x - y
}

func modexp(x, y, m uint64) uint64 {
	z := uint64(1)
	xprime := x % m
	for y > 0 {
		if y%2 == 1 {
			z = modmul(z, xprime, m)
		}
		xprime = modmul(xprime, xprime, m)
		y /= 2
	}
	return z
}

// ModSqrt implements the Tonelli-Shanks algorithm. ok is false when n is not
// a quadratic residue modulo the odd prime p.
func ModSqrt(n, p uint64) (root uint64, ok bool) {
	n %= p
	if n == 0 {
		return 0, true
	}
	if modexp(n, (p-1)/2, p) != 1 {
		return 0, false
	}

	// p - 1 = Q * 2^S with Q odd
	Q := p - 1
	S := uint64(0)
	for Q%2 == 0 {
		Q /= 2
		S++
	}

	z := uint64(2)
	for Jacobi(z, p) != -1 {
		z++
	}

	M := S
	c := modexp(z, Q, p)
	t := modexp(n, Q, p)
	R := modexp(n, (Q+1)/2, p)
	for t != 1 {
		// least i with t^(2^i) = 1
		i := uint64(0)
		for t2 := t; t2 != 1; i++ {
			t2 = modmul(t2, t2, p)
		}
		b := c
		for j := uint64(0); j < M-i-1; j++ {
			b = modmul(b, b, p)
		}
		M = i
		c = modmul(b, b, p)
		t = modmul(t, c, p)
		R = modmul(R, b, p)
	}
	return R, true
}

func (f *SmallField) Name() string {
	return fmt.Sprintf("F_%d", f.p)
}

func (f *SmallField) P() uint64 {
	return f.p
}

func (f *SmallField) Modulus() *big.Int {
	return new(big.Int).SetUint64(f.p)
}

func (f *SmallField) Zero() uint64 { return 0 }
func (f *SmallField) One() uint64  { return 1 }

func (f *SmallField) FromInt64(v int64) uint64 {
	if v < 0 {
		return f.FromBig(big.NewInt(v))
	}
	return uint64(v) % f.p
}

func (f *SmallField) FromBig(v *big.Int) uint64 {
	return new(big.Int).Mod(v, f.Modulus()).Uint64()
}

func (f *SmallField) ToBig(a uint64) *big.Int {
	return new(big.Int).SetUint64(a)
}

func (f *SmallField) Add(a, b uint64) uint64 { return modsum(f.p, a, b) }
func (f *SmallField) Sub(a, b uint64) uint64 { return modsub(a, b, f.p) }
func (f *SmallField) Mul(a, b uint64) uint64 { return modmul(a, b, f.p) }

func (f *SmallField) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.p - a
}

// Inv uses Fermat's little theorem.
func (f *SmallField) Inv(a uint64) uint64 {
	if a%f.p == 0 {
		panic(fmt.Sprintf("0 has no modular inverse mod %d", f.p))
	}
	return modexp(a, f.p-2, f.p)
}

func (f *SmallField) Equal(a, b uint64) bool { return a == b }
func (f *SmallField) IsZero(a uint64) bool   { return a == 0 }

func (f *SmallField) IsSquare(a uint64) bool {
	return a == 0 || modexp(a, (f.p-1)/2, f.p) == 1
}

func (f *SmallField) IsCube(a uint64) bool {
	if a == 0 || f.p%3 != 1 {
		return true
	}
	return modexp(a, (f.p-1)/3, f.p) == 1
}

func (f *SmallField) Sqrt(a uint64) (uint64, bool) {
	return ModSqrt(a, f.p)
}

func (f *SmallField) Format(a uint64) string {
	return fmt.Sprintf("%d", a)
}

// Elements enumerates the field, which tests use for exhaustive checks.
func (f *SmallField) Elements() []uint64 {
	result := make([]uint64, f.p)
	for i := range result {
		result[i] = uint64(i)
	}
	return result
}
