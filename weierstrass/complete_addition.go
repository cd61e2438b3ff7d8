package weierstrass

import (
	"github.com/walterschell/jacobiancurves/field"
)

// Implements https://eprint.iacr.org/2015/1060.pdf
//
// The complete formulas use homogeneous projective coordinates (X : Y : Z)
// with x = X/Z, y = Y/Z, unlike the weighted Jacobian coordinates of package
// jacobian. They are only valid for short curves of odd order and serve as an
// independent implementation of the group law.

func addAlgorithm1[E any](f field.Field[E], a, b3, X1, Y1, Z1, X2, Y2, Z2 E) (X3, Y3, Z3 E) {
	//  Algorithm 1: Complete, projective point addition for arbitrary prime order short
	//Weierstrass curves E/Fq : y2 = x3 + ax + b.
	//Require: P = (X1 : Y1 : Z1), Q = (X2 : Y2 : Z2), E : Y 2Z = X3 + aXZ2 + bZ3,
	// and b3 = 3 · b.
	//Ensure: (X3 : Y3 : Z3) = P + Q.
	mul, add, sub := f.Mul, f.Add, f.Sub

	t0 := mul(X1, X2) // 1. t0 ← X1 · X2
	t1 := mul(Y1, Y2) // 2. t1 ← Y1 · Y2
	t2 := mul(Z1, Z2) // 3. t2 ← Z1 · Z2
	t3 := add(X1, Y1) // 4. t3 ← X1 + Y1
	t4 := add(X2, Y2) // 5. t4 ← X2 + Y2
	t3 = mul(t3, t4)  // 6. t3 ← t3 · t4
	t4 = add(t0, t1)  // 7. t4 ← t0 + t1
	t3 = sub(t3, t4)  // 8. t3 ← t3 − t4
	t4 = add(X1, Z1)  // 9. t4 ← X1 + Z1
	t5 := add(X2, Z2) // 10. t5 ← X2 + Z2
	t4 = mul(t4, t5)  // 11. t4 ← t4 · t5
	t5 = add(t0, t2)  // 12. t5 ← t0 + t2
	t4 = sub(t4, t5)  // 13. t4 ← t4 − t5
	t5 = add(Y1, Z1)  // 14. t5 ← Y1 + Z1
	X3 = add(Y2, Z2)  // 15. X3 ← Y2 + Z2
	t5 = mul(t5, X3)  // 16. t5 ← t5 · X3
	X3 = add(t1, t2)  // 17. X3 ← t1 + t2
	t5 = sub(t5, X3)  // 18. t5 ← t5 − X3
	Z3 = mul(a, t4)   // 19. Z3 ← a · t4
	X3 = mul(b3, t2)  // 20. X3 ← b3 · t2
	Z3 = add(X3, Z3)  // 21. Z3 ← X3 + Z3
	X3 = sub(t1, Z3)  // 22. X3 ← t1 − Z3
	Z3 = add(t1, Z3)  // 23. Z3 ← t1 + Z3
	Y3 = mul(X3, Z3)  // 24. Y3 ← X3 · Z3
	t1 = add(t0, t0)  // 25. t1 ← t0 + t0
	t1 = add(t1, t0)  // 26. t1 ← t1 + t0
	t2 = mul(a, t2)   // 27. t2 ← a · t2
	t4 = mul(b3, t4)  // 28. t4 ← b3 · t4
	t1 = add(t1, t2)  // 29. t1 ← t1 + t2
	t2 = sub(t0, t2)  // 30. t2 ← t0 − t2
	t2 = mul(a, t2)   // 31. t2 ← a · t2
	t4 = add(t4, t2)  // 32. t4 ← t4 + t2
	t0 = mul(t1, t4)  // 33. t0 ← t1 · t4
	Y3 = add(Y3, t0)  // 34. Y3 ← Y3 + t0
	t0 = mul(t5, t4)  // 35. t0 ← t5 · t4
	X3 = mul(t3, X3)  // 36. X3 ← t3 · X3
	X3 = sub(X3, t0)  // 37. X3 ← X3 − t0
	t0 = mul(t3, t1)  // 38. t0 ← t3 · t1
	Z3 = mul(t5, Z3)  // 39. Z3 ← t5 · Z3
	Z3 = add(Z3, t0)  // 40. Z3 ← Z3 + t0

	return X3, Y3, Z3
}

func pointToProjective[E any](P *Point[E]) (X, Y, Z E) {
	f := P.curve.f
	if P.IsInfinity() {
		return f.Zero(), f.One(), f.Zero()
	}
	return P.x, P.y, f.One()
}

func projectiveToPoint[E any](c *Curve[E], X, Y, Z E) *Point[E] {
	f := c.f
	if f.IsZero(Z) {
		return c.Infinity()
	}
	// Standard projective dehomogenization: x = X / Z, y = Y / Z
	zInv := f.Inv(Z)
	return &Point[E]{curve: c, x: f.Mul(X, zInv), y: f.Mul(Y, zInv)}
}

// CompleteAdd adds two points of a short curve with the exception free
// formulas. It panics on curves with a1, a2 or a3 nonzero.
func CompleteAdd[E any](P, Q *Point[E]) *Point[E] {
	c := P.curve
	if !c.Equal(Q.curve) {
		panic("Points are not on the same curve")
	}
	if !c.IsShort() {
		panic("complete addition requires a short Weierstrass curve")
	}
	f := c.f
	b3 := field.MulInt(f, 3, c.a6)

	X1, Y1, Z1 := pointToProjective(P)
	X2, Y2, Z2 := pointToProjective(Q)
	X3, Y3, Z3 := addAlgorithm1(f, c.a4, b3, X1, Y1, Z1, X2, Y2, Z2)
	return projectiveToPoint(c, X3, Y3, Z3)
}
