package jacobian

import (
	"fmt"

	"github.com/walterschell/jacobiancurves/field"
)

// Triple is a representative (X, Y, Z) of a point class. Two triples are the
// same point exactly when Curve.Equivalent says so; never compare triples
// field by field.
type Triple[E any] struct {
	X, Y, Z E
}

// ZeroTriple is the representative (1, 1, 0) of the point at infinity.
func (c *Curve[E]) ZeroTriple() Triple[E] {
	one := c.f.One()
	return Triple[E]{X: one, Y: one, Z: c.f.Zero()}
}

// Smul computes the weighted scaling u•P = (u^2*X, u^3*Y, u*Z). It stays in
// the class of P only for nonzero u.
func (c *Curve[E]) Smul(u E, P Triple[E]) Triple[E] {
	f := c.f
	u2 := f.Mul(u, u)
	return Triple[E]{
		X: f.Mul(u2, P.X),
		Y: f.Mul(f.Mul(u2, u), P.Y),
		Z: f.Mul(u, P.Z),
	}
}

// Equivalent reports whether Q = u•P for some nonzero u.
func (c *Curve[E]) Equivalent(P, Q Triple[E]) bool {
	f := c.f
	if f.IsZero(P.Z) != f.IsZero(Q.Z) {
		return false
	}
	if !f.IsZero(P.Z) {
		return c.scaledBy(field.Div(f, Q.Z, P.Z), P, Q)
	}

	// Z = 0: u is only determined through X and Y
	if f.IsZero(P.X) != f.IsZero(Q.X) || f.IsZero(P.Y) != f.IsZero(Q.Y) {
		return false
	}
	switch {
	case f.IsZero(P.X) && f.IsZero(P.Y):
		return true
	case f.IsZero(P.X):
		return f.IsCube(field.Div(f, Q.Y, P.Y))
	case f.IsZero(P.Y):
		return f.IsSquare(field.Div(f, Q.X, P.X))
	}
	// Q.Y / Q.X = u * P.Y / P.X
	u := field.Div(f, f.Mul(Q.Y, P.X), f.Mul(Q.X, P.Y))
	return c.scaledBy(u, P, Q)
}

func (c *Curve[E]) scaledBy(u E, P, Q Triple[E]) bool {
	f := c.f
	S := c.Smul(u, P)
	return f.Equal(S.X, Q.X) && f.Equal(S.Y, Q.Y) && f.Equal(S.Z, Q.Z)
}

// FormatTriple renders the raw representative.
func (c *Curve[E]) FormatTriple(P Triple[E]) string {
	f := c.f
	return fmt.Sprintf("[%s : %s : %s]", f.Format(P.X), f.Format(P.Y), f.Format(P.Z))
}
