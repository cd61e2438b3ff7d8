package jacobian

import (
	"fmt"

	"github.com/walterschell/jacobiancurves/field"
	"github.com/walterschell/jacobiancurves/weierstrass"
)

// ToAffine maps P to the affine group. Singular triples and triples with
// Z = 0 map to the point at infinity; otherwise the result is
// (X/Z^2, Y/Z^3). The result depends only on the class of P.
func (c *Curve[E]) ToAffine(P Triple[E]) *weierstrass.Point[E] {
	f := c.f
	if !c.Nonsingular(P) || f.IsZero(P.Z) {
		return c.w.Infinity()
	}
	zInv := f.Inv(P.Z)
	zInv2 := f.Mul(zInv, zInv)
	x := f.Mul(P.X, zInv2)
	y := f.Mul(P.Y, f.Mul(zInv2, zInv))
	p, err := c.w.NewPoint(x, y)
	if err != nil {
		// nonsingularity does not depend on the representative
		panic(fmt.Sprintf("affine image of nonsingular %s: %v", c.FormatTriple(P), err))
	}
	return p
}

// FromAffine maps infinity to (1, 1, 0) and (x, y) to (x, y, 1).
func (c *Curve[E]) FromAffine(p *weierstrass.Point[E]) Triple[E] {
	if p.IsInfinity() {
		return c.ZeroTriple()
	}
	return Triple[E]{X: p.X(), Y: p.Y(), Z: c.f.One()}
}

// Normalize returns the canonical representative of the class of P:
// (x, y, 1) for finite points and (1, 1, 0) at infinity. Triples that are
// neither (including (0, 0, 0)) are returned unchanged.
func (c *Curve[E]) Normalize(P Triple[E]) Triple[E] {
	f := c.f
	if !f.IsZero(P.Z) {
		zInv := f.Inv(P.Z)
		zInv2 := f.Mul(zInv, zInv)
		return Triple[E]{X: f.Mul(P.X, zInv2), Y: f.Mul(P.Y, f.Mul(zInv2, zInv)), Z: f.One()}
	}
	if f.IsZero(P.X) || f.IsZero(P.Y) {
		return P
	}
	// (X, Y, 0) = (Y/X)•(1, 1, 0) exactly when X^3 = Y^2
	u := field.Div(f, P.Y, P.X)
	if zero := c.Smul(u, c.ZeroTriple()); f.Equal(zero.X, P.X) && f.Equal(zero.Y, P.Y) {
		return c.ZeroTriple()
	}
	return P
}
