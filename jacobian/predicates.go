package jacobian

import (
	"github.com/walterschell/jacobiancurves/field"
)

// The curve in Jacobian coordinates is the zero set of the weighted
// homogeneous polynomial
//
//	W = Y^2 + a1*X*Y*Z + a3*Y*Z^3 - (X^3 + a2*X^2*Z^2 + a4*X*Z^4 + a6*Z^6)

// Polynomial evaluates W at P.
func (c *Curve[E]) Polynomial(P Triple[E]) E {
	f, w := c.f, c.w
	X, Y, Z := P.X, P.Y, P.Z
	Z2 := f.Mul(Z, Z)
	Z3 := f.Mul(Z2, Z)
	Z4 := f.Mul(Z2, Z2)
	return field.Sum(f,
		f.Mul(Y, Y),
		f.Mul(w.A1(), f.Mul(f.Mul(X, Y), Z)),
		f.Mul(w.A3(), f.Mul(Y, Z3)),
		f.Neg(field.Cube(f, X)),
		f.Neg(f.Mul(w.A2(), f.Mul(f.Mul(X, X), Z2))),
		f.Neg(f.Mul(w.A4(), f.Mul(X, Z4))),
		f.Neg(f.Mul(w.A6(), f.Mul(Z4, Z2))),
	)
}

// PolynomialX is the partial derivative of W by X:
// a1*Y*Z - (3*X^2 + 2*a2*X*Z^2 + a4*Z^4)
func (c *Curve[E]) PolynomialX(P Triple[E]) E {
	f, w := c.f, c.w
	X, Y, Z := P.X, P.Y, P.Z
	Z2 := f.Mul(Z, Z)
	return field.Sum(f,
		f.Mul(w.A1(), f.Mul(Y, Z)),
		field.MulInt(f, -3, f.Mul(X, X)),
		field.MulInt(f, -2, f.Mul(w.A2(), f.Mul(X, Z2))),
		f.Neg(f.Mul(w.A4(), f.Mul(Z2, Z2))),
	)
}

// PolynomialY is the partial derivative of W by Y: 2*Y + a1*X*Z + a3*Z^3
func (c *Curve[E]) PolynomialY(P Triple[E]) E {
	f, w := c.f, c.w
	X, Y, Z := P.X, P.Y, P.Z
	return field.Sum(f,
		field.MulInt(f, 2, Y),
		f.Mul(w.A1(), f.Mul(X, Z)),
		f.Mul(w.A3(), field.Cube(f, Z)),
	)
}

// PolynomialZ is the partial derivative of W by Z:
// a1*X*Y + 3*a3*Y*Z^2 - (2*a2*X^2*Z + 4*a4*X*Z^3 + 6*a6*Z^5)
func (c *Curve[E]) PolynomialZ(P Triple[E]) E {
	f, w := c.f, c.w
	X, Y, Z := P.X, P.Y, P.Z
	Z2 := f.Mul(Z, Z)
	Z3 := f.Mul(Z2, Z)
	return field.Sum(f,
		f.Mul(w.A1(), f.Mul(X, Y)),
		field.MulInt(f, 3, f.Mul(w.A3(), f.Mul(Y, Z2))),
		field.MulInt(f, -2, f.Mul(w.A2(), f.Mul(f.Mul(X, X), Z))),
		field.MulInt(f, -4, f.Mul(w.A4(), f.Mul(X, Z3))),
		field.MulInt(f, -6, f.Mul(w.A6(), f.Mul(Z3, Z2))),
	)
}

// Equation reports whether P lies on the curve. The answer is the same for
// every representative of a class.
func (c *Curve[E]) Equation(P Triple[E]) bool {
	return c.f.IsZero(c.Polynomial(P))
}

// Nonsingular reports whether P lies on the curve and the partial
// derivatives of W do not all vanish there. In particular (0, 0, 0) is never
// nonsingular.
func (c *Curve[E]) Nonsingular(P Triple[E]) bool {
	f := c.f
	return c.Equation(P) &&
		(!f.IsZero(c.PolynomialX(P)) || !f.IsZero(c.PolynomialY(P)) || !f.IsZero(c.PolynomialZ(P)))
}
