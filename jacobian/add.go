package jacobian

import (
	"fmt"

	"github.com/walterschell/jacobiancurves/field"
	"go.uber.org/zap"
)

// AddCase names the branch taken by Add. The cases are tested in the order
// listed and exactly one applies to any pair of triples.
type AddCase int

const (
	// P and Q are the same class: tangent doubling.
	CaseEquivalent AddCase = iota
	// Both at infinity without being equivalent (only for triples off the curve).
	CaseBothInfinity
	// Only P at infinity.
	CaseLeftInfinity
	// Only Q at infinity.
	CaseRightInfinity
	// Same x, y(P) = NegY(Q): P = -Q.
	CaseInverse
	// Same x, y(P) neither y(Q) nor NegY(Q).
	CaseVerticalGeneric
	// Different x: secant line.
	CaseGeneric
)

func (ac AddCase) String() string {
	switch ac {
	case CaseEquivalent:
		return "equivalent"
	case CaseBothInfinity:
		return "both-infinity"
	case CaseLeftInfinity:
		return "left-infinity"
	case CaseRightInfinity:
		return "right-infinity"
	case CaseInverse:
		return "inverse"
	case CaseVerticalGeneric:
		return "vertical"
	case CaseGeneric:
		return "generic"
	}
	return fmt.Sprintf("AddCase(%d)", int(ac))
}

// crossTerms brings P and Q to the common denominator Z1^2*Z2^2 (for x) and
// Z1^3*Z2^3 (for y).
func (c *Curve[E]) crossTerms(P, Q Triple[E]) (U1, U2, S1, S2 E) {
	f := c.f
	Z1Z1 := f.Mul(P.Z, P.Z)
	Z2Z2 := f.Mul(Q.Z, Q.Z)
	U1 = f.Mul(P.X, Z2Z2)
	U2 = f.Mul(Q.X, Z1Z1)
	S1 = f.Mul(P.Y, f.Mul(Z2Z2, Q.Z))
	S2 = f.Mul(Q.Y, f.Mul(Z1Z1, P.Z))
	return U1, U2, S1, S2
}

// ClassifyAdd decides which branch Add takes for P and Q.
func (c *Curve[E]) ClassifyAdd(P, Q Triple[E]) AddCase {
	if c.Equivalent(P, Q) {
		return CaseEquivalent
	}
	return c.classifyDistinct(P, Q)
}

func (c *Curve[E]) classifyDistinct(P, Q Triple[E]) AddCase {
	f := c.f
	switch {
	case f.IsZero(P.Z) && f.IsZero(Q.Z):
		return CaseBothInfinity
	case f.IsZero(P.Z):
		return CaseLeftInfinity
	case f.IsZero(Q.Z):
		return CaseRightInfinity
	}
	U1, U2, S1, _ := c.crossTerms(P, Q)
	if !f.Equal(U1, U2) {
		return CaseGeneric
	}
	// y(P) = NegY(Q) / Z2^3, scaled by Z1^3*Z2^3
	if f.Equal(S1, f.Mul(c.NegY(Q), field.Cube(f, P.Z))) {
		return CaseInverse
	}
	return CaseVerticalGeneric
}

// AddU = -(Y1*Z2^3 - Y2*Z1^3) / (Z1*Z2), the scale of the point at infinity
// produced by two points with the same x. It panics if either Z is zero.
func (c *Curve[E]) AddU(P, Q Triple[E]) E {
	f := c.f
	_, _, S1, S2 := c.crossTerms(P, Q)
	return f.Neg(field.Div(f, f.Sub(S1, S2), f.Mul(P.Z, Q.Z)))
}

// AddZ = X1*Z2^2 - X2*Z1^2, the difference of x coordinates over the common
// denominator. The sum has Z coordinate Z1*Z2*AddZ.
func (c *Curve[E]) AddZ(P, Q Triple[E]) E {
	U1, U2, _, _ := c.crossTerms(P, Q)
	return c.f.Sub(U1, U2)
}

// AddX = R^2 + a1*R*Z3 - a2*Z3^2 - (U1 + U2)*H^2 with H = AddZ,
// R = Y1*Z2^3 - Y2*Z1^3 and Z3 = Z1*Z2*H.
func (c *Curve[E]) AddX(P, Q Triple[E]) E {
	X3, _, _ := c.secant(P, Q)
	return X3
}

// NegAddY = R*(AddX - U1*H^2) + S1*H^3
func (c *Curve[E]) NegAddY(P, Q Triple[E]) E {
	_, negY3, _ := c.secant(P, Q)
	return negY3
}

func (c *Curve[E]) AddY(P, Q Triple[E]) E {
	X3, negY3, Z3 := c.secant(P, Q)
	return c.NegY(Triple[E]{X: X3, Y: negY3, Z: Z3})
}

func (c *Curve[E]) secant(P, Q Triple[E]) (X3, negY3, Z3 E) {
	f, w := c.f, c.w
	U1, U2, S1, S2 := c.crossTerms(P, Q)
	H := f.Sub(U1, U2)
	R := f.Sub(S1, S2)
	HH := f.Mul(H, H)
	Z3 = f.Mul(f.Mul(P.Z, Q.Z), H)
	X3 = field.Sum(f,
		f.Mul(R, R),
		f.Mul(w.A1(), f.Mul(R, Z3)),
		f.Neg(f.Mul(w.A2(), f.Mul(Z3, Z3))),
		f.Neg(f.Mul(f.Add(U1, U2), HH)),
	)
	negY3 = f.Add(f.Mul(R, f.Sub(X3, f.Mul(U1, HH))), f.Mul(S1, f.Mul(HH, H)))
	return X3, negY3, Z3
}

// AddXYZ adds two triples that are not equivalent. For equivalent input the
// result is meaningless; use Add.
func (c *Curve[E]) AddXYZ(P, Q Triple[E]) Triple[E] {
	return c.addCase(c.classifyDistinct(P, Q), P, Q)
}

func (c *Curve[E]) addCase(ac AddCase, P, Q Triple[E]) Triple[E] {
	f := c.f
	switch ac {
	case CaseEquivalent:
		return c.DblXYZ(P)
	case CaseBothInfinity:
		return c.Smul(f.Mul(P.X, P.X), c.ZeroTriple())
	case CaseLeftInfinity:
		return c.Smul(f.Mul(P.X, Q.Z), Q)
	case CaseRightInfinity:
		return c.Smul(f.Neg(f.Mul(Q.X, P.Z)), P)
	case CaseInverse, CaseVerticalGeneric:
		return c.Smul(c.AddU(P, Q), c.ZeroTriple())
	}
	X3, negY3, Z3 := c.secant(P, Q)
	return Triple[E]{X: X3, Y: c.NegY(Triple[E]{X: X3, Y: negY3, Z: Z3}), Z: Z3}
}

// Add computes a representative of P + Q: DblXYZ(P) when P and Q are the
// same class, AddXYZ(P, Q) otherwise. Scaling the inputs only scales the
// output, so Add is well defined on classes.
func (c *Curve[E]) Add(P, Q Triple[E]) Triple[E] {
	ac := c.ClassifyAdd(P, Q)
	if ce := c.logger.Check(zap.DebugLevel, "jacobian add"); ce != nil {
		ce.Write(zap.Stringer("case", ac))
	}
	return c.addCase(ac, P, Q)
}
