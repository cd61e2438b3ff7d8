package jacobian

// NegY is -Y - a1*X*Z - a3*Z^3, the Y coordinate of the negation.
func (c *Curve[E]) NegY(P Triple[E]) E {
	f, w := c.f, c.w
	Z3 := f.Mul(f.Mul(P.Z, P.Z), P.Z)
	return f.Sub(f.Sub(f.Neg(P.Y), f.Mul(w.A1(), f.Mul(P.X, P.Z))), f.Mul(w.A3(), Z3))
}

// Neg computes (X, NegY(P), Z). On Z = 0 this is (X, -Y, 0), the class of
// (1, 1, 0) again.
func (c *Curve[E]) Neg(P Triple[E]) Triple[E] {
	return Triple[E]{X: P.X, Y: c.NegY(P), Z: P.Z}
}
