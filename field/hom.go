package field

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Hom is a ring homomorphism from the field with elements A to the field with
// elements B. Map may fail when the homomorphism is only defined on a subring
// of the domain, as with reduction of rationals modulo p.
type Hom[A, B any] interface {
	Domain() Field[A]
	Codomain() Field[B]
	Map(a A) (B, error)
}

// MapAll applies h to each element, stopping at the first failure.
func MapAll[A, B any](h Hom[A, B], values ...A) ([]B, error) {
	result := make([]B, len(values))
	for i, v := range values {
		b, err := h.Map(v)
		if err != nil {
			return nil, err
		}
		result[i] = b
	}
	return result, nil
}

type identity[E any] struct {
	f Field[E]
}

// Identity returns the identity homomorphism of f.
func Identity[E any](f Field[E]) Hom[E, E] {
	return identity[E]{f}
}

func (h identity[E]) Domain() Field[E]   { return h.f }
func (h identity[E]) Codomain() Field[E] { return h.f }
func (h identity[E]) Map(a E) (E, error) { return a, nil }

// RationalReduction maps the p-integral rationals a/b (p not dividing b) to
// a * b^-1 mod p.
type RationalReduction struct {
	target *PrimeField
}

func ReduceRationals(target *PrimeField) *RationalReduction {
	return &RationalReduction{target: target}
}

func (h *RationalReduction) Domain() Field[*big.Rat]   { return Rationals{} }
func (h *RationalReduction) Codomain() Field[*big.Int] { return h.target }

func (h *RationalReduction) Map(a *big.Rat) (*big.Int, error) {
	den := h.target.FromBig(a.Denom())
	if den.Sign() == 0 {
		return nil, fmt.Errorf("%w: denominator of %s is divisible by %s", ErrNotInDomain, a.RatString(), h.target.p)
	}
	return h.target.Mul(h.target.FromBig(a.Num()), h.target.Inv(den)), nil
}

// SmallToPrime is the isomorphism between the uint64 and big.Int
// representations of the same prime field.
type SmallToPrime struct {
	from *SmallField
	to   *PrimeField
}

func NewSmallToPrime(from *SmallField, to *PrimeField) (*SmallToPrime, error) {
	if from.Modulus().Cmp(to.p) != 0 {
		return nil, fmt.Errorf("moduli differ: %d and %s", from.p, to.p)
	}
	return &SmallToPrime{from: from, to: to}, nil
}

func (h *SmallToPrime) Domain() Field[uint64]     { return h.from }
func (h *SmallToPrime) Codomain() Field[*big.Int] { return h.to }

func (h *SmallToPrime) Map(a uint64) (*big.Int, error) {
	return h.to.FromBig(new(big.Int).SetUint64(a)), nil
}

// PrimeToSmall is the inverse of SmallToPrime.
type PrimeToSmall struct {
	from *PrimeField
	to   *SmallField
}

func NewPrimeToSmall(from *PrimeField, to *SmallField) (*PrimeToSmall, error) {
	if to.Modulus().Cmp(from.p) != 0 {
		return nil, fmt.Errorf("moduli differ: %s and %d", from.p, to.p)
	}
	return &PrimeToSmall{from: from, to: to}, nil
}

func (h *PrimeToSmall) Domain() Field[*big.Int] { return h.from }
func (h *PrimeToSmall) Codomain() Field[uint64] { return h.to }

func (h *PrimeToSmall) Map(a *big.Int) (uint64, error) {
	if !h.from.Contains(a) {
		return 0, fmt.Errorf("%w: %s", ErrNotInField, a)
	}
	return a.Uint64(), nil
}

// PrimeToFp256 moves elements from the big.Int backend to the fixed width
// backend of the same prime field.
type PrimeToFp256 struct {
	from *PrimeField
	to   *Fp256
}

func NewPrimeToFp256(from *PrimeField, to *Fp256) (*PrimeToFp256, error) {
	if !from.EqualField(to.bigField) {
		return nil, fmt.Errorf("moduli differ: %s and %s", from.p, to.bigField.p)
	}
	return &PrimeToFp256{from: from, to: to}, nil
}

func (h *PrimeToFp256) Domain() Field[*big.Int]      { return h.from }
func (h *PrimeToFp256) Codomain() Field[uint256.Int] { return h.to }

func (h *PrimeToFp256) Map(a *big.Int) (uint256.Int, error) {
	if !h.from.Contains(a) {
		return uint256.Int{}, fmt.Errorf("%w: %s", ErrNotInField, a)
	}
	return *uint256.MustFromBig(a), nil
}
