package jacobian

// Doubling uses the tangent line. With d = Y - NegY(P) the slope at the
// affine point is -DblU / (Z*d), so every coordinate below is the affine
// formula multiplied through by a power of DblZ = Z*d.

// DblU is the partial derivative of W by X, the (negated) slope numerator.
func (c *Curve[E]) DblU(P Triple[E]) E {
	return c.PolynomialX(P)
}

// DblZ = Z * (Y - NegY(P))
func (c *Curve[E]) DblZ(P Triple[E]) E {
	f := c.f
	return f.Mul(P.Z, f.Sub(P.Y, c.NegY(P)))
}

// DblX = U^2 - a1*U*Z*d - a2*Z^2*d^2 - 2*X*d^2 with U = DblU, d = Y - NegY
func (c *Curve[E]) DblX(P Triple[E]) E {
	f, w := c.f, c.w
	U := c.DblU(P)
	d := f.Sub(P.Y, c.NegY(P))
	Zd := f.Mul(P.Z, d)
	d2 := f.Mul(d, d)
	return f.Sub(
		f.Sub(f.Mul(U, U), f.Mul(w.A1(), f.Mul(U, Zd))),
		f.Add(f.Mul(w.A2(), f.Mul(Zd, Zd)), f.Mul(f.Add(P.X, P.X), d2)),
	)
}

// NegDblY = -U*(DblX - X*d^2) + Y*d^3
func (c *Curve[E]) NegDblY(P Triple[E]) E {
	f := c.f
	U := c.DblU(P)
	d := f.Sub(P.Y, c.NegY(P))
	d2 := f.Mul(d, d)
	return f.Add(
		f.Neg(f.Mul(U, f.Sub(c.DblX(P), f.Mul(P.X, d2)))),
		f.Mul(P.Y, f.Mul(d2, d)),
	)
}

func (c *Curve[E]) DblY(P Triple[E]) E {
	return c.NegY(Triple[E]{X: c.DblX(P), Y: c.NegDblY(P), Z: c.DblZ(P)})
}

// DblXYZ doubles P. The formulas are total: a point at infinity (X, Y, 0)
// gives X^2•(1, 1, 0), and a point of order two gives DblU•(1, 1, 0).
func (c *Curve[E]) DblXYZ(P Triple[E]) Triple[E] {
	f, w := c.f, c.w
	U := c.DblU(P)
	d := f.Sub(P.Y, c.NegY(P))
	d2 := f.Mul(d, d)
	Z3 := f.Mul(P.Z, d)
	X3 := f.Sub(
		f.Sub(f.Mul(U, U), f.Mul(w.A1(), f.Mul(U, Z3))),
		f.Add(f.Mul(w.A2(), f.Mul(Z3, Z3)), f.Mul(f.Add(P.X, P.X), d2)),
	)
	negY3 := f.Add(
		f.Neg(f.Mul(U, f.Sub(X3, f.Mul(P.X, d2)))),
		f.Mul(P.Y, f.Mul(d2, d)),
	)
	return c.Neg(Triple[E]{X: X3, Y: negY3, Z: Z3})
}
