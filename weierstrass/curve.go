// Package weierstrass implements generic (non timing resistant) Weierstrass
// elliptic curves
//
//	Y^2 + a1*X*Y + a3*Y = X^3 + a2*X^2 + a4*X + a6
//
// over any exact field from package field, together with the affine group
// law. In particular it allows generic coefficients, where the golang
// standard library only supports short curves with A=-3.
package weierstrass

import (
	"fmt"

	"github.com/walterschell/jacobiancurves/field"
)

// Curve holds the Weierstrass coefficients over a field.
type Curve[E any] struct {
	f  field.Field[E]
	a1 E
	a2 E
	a3 E
	a4 E
	a6 E
}

// NewCurve constructs the curve with the given long Weierstrass coefficients.
// The curve may be singular; use IsElliptic to check.
func NewCurve[E any](f field.Field[E], a1, a2, a3, a4, a6 E) *Curve[E] {
	return &Curve[E]{f: f, a1: a1, a2: a2, a3: a3, a4: a4, a6: a6}
}

// NewShortCurve constructs Y^2 = X^3 + A*X + B.
func NewShortCurve[E any](f field.Field[E], a, b E) *Curve[E] {
	return NewCurve(f, f.Zero(), f.Zero(), f.Zero(), a, b)
}

// MapCurve applies h to every coefficient (base change).
func MapCurve[A, B any](h field.Hom[A, B], c *Curve[A]) (*Curve[B], error) {
	coeffs, err := field.MapAll(h, c.a1, c.a2, c.a3, c.a4, c.a6)
	if err != nil {
		return nil, fmt.Errorf("base change of curve: %w", err)
	}
	return NewCurve(h.Codomain(), coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4]), nil
}

func (c *Curve[E]) Field() field.Field[E] { return c.f }

func (c *Curve[E]) A1() E { return c.a1 }
func (c *Curve[E]) A2() E { return c.a2 }
func (c *Curve[E]) A3() E { return c.a3 }
func (c *Curve[E]) A4() E { return c.a4 }
func (c *Curve[E]) A6() E { return c.a6 }

// IsShort reports whether a1 = a2 = a3 = 0.
func (c *Curve[E]) IsShort() bool {
	return c.f.IsZero(c.a1) && c.f.IsZero(c.a2) && c.f.IsZero(c.a3)
}

// b2 = a1^2 + 4*a2
func (c *Curve[E]) B2() E {
	f := c.f
	return f.Add(field.Square(f, c.a1), field.MulInt(f, 4, c.a2))
}

// b4 = 2*a4 + a1*a3
func (c *Curve[E]) B4() E {
	f := c.f
	return f.Add(field.MulInt(f, 2, c.a4), f.Mul(c.a1, c.a3))
}

// b6 = a3^2 + 4*a6
func (c *Curve[E]) B6() E {
	f := c.f
	return f.Add(field.Square(f, c.a3), field.MulInt(f, 4, c.a6))
}

// b8 = a1^2*a6 + 4*a2*a6 - a1*a3*a4 + a2*a3^2 - a4^2
func (c *Curve[E]) B8() E {
	f := c.f
	return field.Sum(f,
		f.Mul(field.Square(f, c.a1), c.a6),
		field.MulInt(f, 4, f.Mul(c.a2, c.a6)),
		f.Neg(f.Mul(f.Mul(c.a1, c.a3), c.a4)),
		f.Mul(c.a2, field.Square(f, c.a3)),
		f.Neg(field.Square(f, c.a4)),
	)
}

// Discriminant = -b2^2*b8 - 8*b4^3 - 27*b6^2 + 9*b2*b4*b6
func (c *Curve[E]) Discriminant() E {
	f := c.f
	b2, b4, b6, b8 := c.B2(), c.B4(), c.B6(), c.B8()
	return field.Sum(f,
		f.Neg(f.Mul(field.Square(f, b2), b8)),
		field.MulInt(f, -8, field.Cube(f, b4)),
		field.MulInt(f, -27, field.Square(f, b6)),
		field.MulInt(f, 9, f.Mul(f.Mul(b2, b4), b6)),
	)
}

// IsElliptic reports whether the discriminant is nonzero, i.e. every point
// of the curve is nonsingular.
func (c *Curve[E]) IsElliptic() bool {
	return !c.f.IsZero(c.Discriminant())
}

// Equal compares field and coefficients.
func (c *Curve[E]) Equal(other *Curve[E]) bool {
	if c == other {
		return true
	}
	f := c.f
	return f.Name() == other.f.Name() &&
		f.Equal(c.a1, other.a1) &&
		f.Equal(c.a2, other.a2) &&
		f.Equal(c.a3, other.a3) &&
		f.Equal(c.a4, other.a4) &&
		f.Equal(c.a6, other.a6)
}

func (c *Curve[E]) String() string {
	f := c.f
	return fmt.Sprintf("E[%s](%s, %s, %s, %s, %s)", f.Name(),
		f.Format(c.a1), f.Format(c.a2), f.Format(c.a3), f.Format(c.a4), f.Format(c.a6))
}
