package field

import (
	"fmt"
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// PrimeField is the field of integers modulo a prime p, with elements stored
// as *big.Int in [0, p).
type PrimeField struct {
	p *big.Int
	// (p-1)/2 and (p-1)/3, cached for the residue tests.
	halfOrder  *big.Int
	thirdOrder *big.Int
}

var _ Prime[*big.Int] = (*PrimeField)(nil)

// NewPrimeField constructs the field of integers modulo p.
// do not modify p after calling this function
func NewPrimeField(p *big.Int) (*PrimeField, error) {
	if p.Sign() <= 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: %s", ErrNotPrime, p)
	}
	pm1 := new(big.Int).Sub(p, one)
	f := &PrimeField{
		p:         p,
		halfOrder: new(big.Int).Rsh(pm1, 1),
	}
	if new(big.Int).Mod(p, three).Cmp(one) == 0 {
		f.thirdOrder = new(big.Int).Div(pm1, three)
	}
	return f, nil
}

// MustPrimeField is like NewPrimeField but panics on a composite modulus.
// Intended for package level curve constants.
func MustPrimeField(p string) *PrimeField {
	ip, ok := new(big.Int).SetString(p, 0)
	if !ok {
		panic(fmt.Sprintf("invalid Number for p: %s", p))
	}
	f, err := NewPrimeField(ip)
	if err != nil {
		panic(err)
	}
	return f
}

func modMul(a, b, p *big.Int) *big.Int {
	res := new(big.Int).Mul(a, b)
	res.Mod(res, p)
	return res
}

func modAdd(a, b, p *big.Int) *big.Int {
	res := new(big.Int).Add(a, b)
	res.Mod(res, p)
	return res
}

func modSub(a, b, p *big.Int) *big.Int {
	res := new(big.Int).Sub(a, b)
	res.Mod(res, p)
	return res
}

func (f *PrimeField) Name() string {
	return fmt.Sprintf("F_%s", f.p)
}

// Modulus returns a copy of p.
func (f *PrimeField) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

func (f *PrimeField) BitSize() int {
	return f.p.BitLen()
}

func (f *PrimeField) Zero() *big.Int { return new(big.Int) }
func (f *PrimeField) One() *big.Int  { return big.NewInt(1) }

func (f *PrimeField) FromInt64(v int64) *big.Int {
	return new(big.Int).Mod(big.NewInt(v), f.p)
}

func (f *PrimeField) FromBig(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, f.p)
}

func (f *PrimeField) ToBig(a *big.Int) *big.Int {
	return new(big.Int).Set(a)
}

// Contains reports whether v is a canonical element, i.e. 0 <= v < p.
func (f *PrimeField) Contains(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(f.p) < 0
}

func (f *PrimeField) Add(a, b *big.Int) *big.Int { return modAdd(a, b, f.p) }
func (f *PrimeField) Sub(a, b *big.Int) *big.Int { return modSub(a, b, f.p) }
func (f *PrimeField) Mul(a, b *big.Int) *big.Int { return modMul(a, b, f.p) }

func (f *PrimeField) Neg(a *big.Int) *big.Int {
	res := new(big.Int).Neg(a)
	return res.Mod(res, f.p)
}

func (f *PrimeField) Inv(a *big.Int) *big.Int {
	res := new(big.Int).ModInverse(a, f.p)
	if res == nil {
		panic(fmt.Sprintf("%s has no modular inverse mod %s", a, f.p))
	}
	return res
}

func (f *PrimeField) Equal(a, b *big.Int) bool {
	return a.Cmp(b) == 0
}

func (f *PrimeField) IsZero(a *big.Int) bool {
	return a.Sign() == 0
}

// IsSquare uses Euler's criterion.
func (f *PrimeField) IsSquare(a *big.Int) bool {
	if a.Sign() == 0 || f.p.Cmp(two) == 0 {
		return true
	}
	return new(big.Int).Exp(a, f.halfOrder, f.p).Cmp(one) == 0
}

// IsCube: cubing is a bijection unless p = 1 mod 3, in which case a is a cube
// iff a^((p-1)/3) = 1.
func (f *PrimeField) IsCube(a *big.Int) bool {
	if a.Sign() == 0 || f.thirdOrder == nil {
		return true
	}
	return new(big.Int).Exp(a, f.thirdOrder, f.p).Cmp(one) == 0
}

func (f *PrimeField) Sqrt(a *big.Int) (*big.Int, bool) {
	r := new(big.Int).ModSqrt(a, f.p)
	if r == nil {
		return nil, false
	}
	return r, true
}

func (f *PrimeField) Format(a *big.Int) string {
	return a.String()
}

// EqualField compares two prime fields by modulus.
func (f *PrimeField) EqualField(other *PrimeField) bool {
	return f == other || f.p.Cmp(other.p) == 0
}
