// Package field provides exact field arithmetic backends used by the curve
// packages. Elements are treated as immutable values: every operation returns
// a fresh element and never modifies its arguments.
//
// Floating point types are deliberately absent. The group law dispatches on
// exact equality tests, so only exact fields (prime fields and the rationals)
// are supported.
package field

import (
	"errors"
	"math/big"
)

var (
	ErrNotPrime        = errors.New("modulus is not prime")
	ErrModulusTooLarge = errors.New("modulus does not fit the backend")
	ErrNotInField      = errors.New("value is not an element of the field")
	ErrNotInDomain     = errors.New("value is outside the domain of the homomorphism")
)

// Field is the arithmetic of a field whose elements have type E.
type Field[E any] interface {
	Name() string

	Zero() E
	One() E
	FromInt64(v int64) E

	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	// Inv panics if a is zero.
	Inv(a E) E

	Equal(a, b E) bool
	IsZero(a E) bool

	// IsSquare reports whether a = r^2 for some r in the field.
	IsSquare(a E) bool
	// IsCube reports whether a = r^3 for some r in the field.
	IsCube(a E) bool

	Format(a E) string
}

// Prime is implemented by finite prime fields. It exposes the canonical
// integer representative of each element, which encodings rely on.
type Prime[E any] interface {
	Field[E]

	Modulus() *big.Int
	// ToBig returns the representative in [0, p).
	ToBig(a E) *big.Int
	// FromBig reduces v modulo p.
	FromBig(v *big.Int) E
	// Sqrt returns a square root of a, if one exists.
	Sqrt(a E) (E, bool)
}

func Square[E any](f Field[E], a E) E {
	return f.Mul(a, a)
}

func Cube[E any](f Field[E], a E) E {
	return pow(f, a, 3)
}

// pow computes a^n for n >= 0 by square and multiply.
func pow[E any](f Field[E], a E, n uint) E {
	result := f.One()
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		n >>= 1
	}
	return result
}

// Div computes a / b. It panics if b is zero.
func Div[E any](f Field[E], a, b E) E {
	return f.Mul(a, f.Inv(b))
}

func Sum[E any](f Field[E], terms ...E) E {
	result := f.Zero()
	for _, t := range terms {
		result = f.Add(result, t)
	}
	return result
}

// MulInt computes n * a for a small integer n.
func MulInt[E any](f Field[E], n int64, a E) E {
	return f.Mul(f.FromInt64(n), a)
}
