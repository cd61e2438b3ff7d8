package field

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Fp256 is a prime field with modulus below 2^256 backed by fixed width
// uint256 arithmetic. Elements are uint256.Int values in [0, p).
type Fp256 struct {
	p        uint256.Int
	pm2      uint256.Int
	bigField *PrimeField
}

var _ Prime[uint256.Int] = (*Fp256)(nil)

func NewFp256(p *big.Int) (*Fp256, error) {
	if p.BitLen() > 256 {
		return nil, fmt.Errorf("%w: %d bits", ErrModulusTooLarge, p.BitLen())
	}
	bf, err := NewPrimeField(p)
	if err != nil {
		return nil, err
	}
	f := &Fp256{bigField: bf}
	f.p = *uint256.MustFromBig(p)
	f.pm2.Sub(&f.p, uint256.NewInt(2))
	return f, nil
}

// PrimeField returns the equivalent big.Int backed field.
func (f *Fp256) PrimeField() *PrimeField {
	return f.bigField
}

func (f *Fp256) Name() string {
	return f.bigField.Name()
}

func (f *Fp256) Modulus() *big.Int {
	return f.p.ToBig()
}

func (f *Fp256) Zero() uint256.Int { return uint256.Int{} }
func (f *Fp256) One() uint256.Int  { return *uint256.NewInt(1) }

func (f *Fp256) FromInt64(v int64) uint256.Int {
	return f.FromBig(big.NewInt(v))
}

func (f *Fp256) FromBig(v *big.Int) uint256.Int {
	return *uint256.MustFromBig(f.bigField.FromBig(v))
}

func (f *Fp256) ToBig(a uint256.Int) *big.Int {
	return a.ToBig()
}

func (f *Fp256) Add(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.AddMod(&a, &b, &f.p)
	return z
}

func (f *Fp256) Sub(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	if a.Lt(&b) {
		// p - b + a stays below p
		z.Sub(&f.p, &b)
		z.Add(&z, &a)
		return z
	}
	z.Sub(&a, &b)
	return z
}

func (f *Fp256) Neg(a uint256.Int) uint256.Int {
	if a.IsZero() {
		return a
	}
	var z uint256.Int
	z.Sub(&f.p, &a)
	return z
}

func (f *Fp256) Mul(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.MulMod(&a, &b, &f.p)
	return z
}

// exp computes a^e mod p, scanning e from the top bit.
func (f *Fp256) exp(a, e uint256.Int) uint256.Int {
	result := *uint256.NewInt(1)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result.MulMod(&result, &result, &f.p)
		if (e[i/64]>>(uint(i)%64))&1 == 1 {
			result.MulMod(&result, &a, &f.p)
		}
	}
	return result
}

// Inv uses Fermat's little theorem.
func (f *Fp256) Inv(a uint256.Int) uint256.Int {
	if a.IsZero() {
		panic(fmt.Sprintf("0 has no modular inverse mod %s", f.bigField.p))
	}
	return f.exp(a, f.pm2)
}

func (f *Fp256) Equal(a, b uint256.Int) bool {
	return a.Eq(&b)
}

func (f *Fp256) IsZero(a uint256.Int) bool {
	return a.IsZero()
}

func (f *Fp256) IsSquare(a uint256.Int) bool {
	return f.bigField.IsSquare(a.ToBig())
}

func (f *Fp256) IsCube(a uint256.Int) bool {
	return f.bigField.IsCube(a.ToBig())
}

func (f *Fp256) Sqrt(a uint256.Int) (uint256.Int, bool) {
	r, ok := f.bigField.Sqrt(a.ToBig())
	if !ok {
		return uint256.Int{}, false
	}
	return *uint256.MustFromBig(r), true
}

func (f *Fp256) Format(a uint256.Int) string {
	return a.ToBig().String()
}
