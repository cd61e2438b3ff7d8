package weierstrass

import (
	"github.com/walterschell/jacobiancurves/field"
)

// Affine formulas of the group law. The Jacobian layer evaluates the same
// quantities in weighted homogeneous form; these are the reference versions.

// Polynomial evaluates y^2 + a1*x*y + a3*y - (x^3 + a2*x^2 + a4*x + a6).
func (c *Curve[E]) Polynomial(x, y E) E {
	f := c.f
	lhs := field.Sum(f, field.Square(f, y), f.Mul(f.Mul(c.a1, x), y), f.Mul(c.a3, y))
	rhs := field.Sum(f, field.Cube(f, x), f.Mul(c.a2, field.Square(f, x)), f.Mul(c.a4, x), c.a6)
	return f.Sub(lhs, rhs)
}

// IsOnCurve tests if the coordinates satisfy the curve equation.
func (c *Curve[E]) IsOnCurve(x, y E) bool {
	return c.f.IsZero(c.Polynomial(x, y))
}

// PolynomialX is the partial derivative in x: a1*y - (3*x^2 + 2*a2*x + a4).
func (c *Curve[E]) PolynomialX(x, y E) E {
	f := c.f
	return f.Sub(f.Mul(c.a1, y),
		field.Sum(f, field.MulInt(f, 3, field.Square(f, x)), field.MulInt(f, 2, f.Mul(c.a2, x)), c.a4))
}

// PolynomialY is the partial derivative in y: 2*y + a1*x + a3.
func (c *Curve[E]) PolynomialY(x, y E) E {
	f := c.f
	return field.Sum(f, field.MulInt(f, 2, y), f.Mul(c.a1, x), c.a3)
}

// Nonsingular reports whether (x, y) is on the curve and one of the partial
// derivatives is nonzero there.
func (c *Curve[E]) Nonsingular(x, y E) bool {
	if !c.IsOnCurve(x, y) {
		return false
	}
	return !c.f.IsZero(c.PolynomialX(x, y)) || !c.f.IsZero(c.PolynomialY(x, y))
}

// NegY is the y-coordinate of -(x, y): -y - a1*x - a3.
func (c *Curve[E]) NegY(x, y E) E {
	f := c.f
	return f.Sub(f.Sub(f.Neg(y), f.Mul(c.a1, x)), c.a3)
}

// Slope of the line through (x1, y1) and (x2, y2): the secant slope when
// x1 != x2, the tangent slope when the points coincide, and 0 (a dummy value)
// when the line is vertical.
func (c *Curve[E]) Slope(x1, x2, y1, y2 E) E {
	f := c.f
	if f.Equal(x1, x2) {
		if f.Equal(y1, c.NegY(x2, y2)) {
			return f.Zero()
		}
		num := f.Sub(field.Sum(f, field.MulInt(f, 3, field.Square(f, x1)), field.MulInt(f, 2, f.Mul(c.a2, x1)), c.a4),
			f.Mul(c.a1, y1))
		return field.Div(f, num, f.Sub(y1, c.NegY(x1, y1)))
	}
	return field.Div(f, f.Sub(y1, y2), f.Sub(x1, x2))
}

// AddX = l^2 + a1*l - a2 - x1 - x2
func (c *Curve[E]) AddX(x1, x2, l E) E {
	f := c.f
	return f.Sub(f.Sub(f.Sub(f.Add(field.Square(f, l), f.Mul(c.a1, l)), c.a2), x1), x2)
}

// NegAddY is the y-coordinate of the third intersection of the line with the
// curve: l*(AddX - x1) + y1.
func (c *Curve[E]) NegAddY(x1, x2, y1, l E) E {
	f := c.f
	return f.Add(f.Mul(l, f.Sub(c.AddX(x1, x2, l), x1)), y1)
}

// AddY reflects NegAddY, giving the y-coordinate of the sum.
func (c *Curve[E]) AddY(x1, x2, y1, l E) E {
	return c.NegY(c.AddX(x1, x2, l), c.NegAddY(x1, x2, y1, l))
}
