package weierstrass

import (
	"fmt"
	"math/big"
)

const checkPointsAfterEveryAdd = true

// Point on a Curve in affine coordinates, or the point at infinity.
type Point[E any] struct {
	curve    *Curve[E]
	x        E
	y        E
	infinity bool
}

type NotOnCurveError struct {
}

func (e NotOnCurveError) Error() string {
	return "Point is not on the curve"
}

type SingularPointError struct {
}

func (e SingularPointError) Error() string {
	return "Point is a singular point of the curve"
}

// If x, y coordinates are a nonsingular point of the curve, returns
// a Point tied to those coordinates
func (c *Curve[E]) NewPoint(x, y E) (*Point[E], error) {
	if !c.IsOnCurve(x, y) {
		return nil, NotOnCurveError{}
	}
	if !c.Nonsingular(x, y) {
		return nil, SingularPointError{}
	}
	return &Point[E]{curve: c, x: x, y: y}, nil
}

// Represents the point at infinity, the zero of the group
func (c *Curve[E]) Infinity() *Point[E] {
	return &Point[E]{curve: c, infinity: true}
}

// Tests if a point is the point at infinity
func (p *Point[E]) IsInfinity() bool {
	return p.infinity
}

func (p *Point[E]) Curve() *Curve[E] {
	return p.curve
}

// Returns X coordinate of the point. Meaningless for the point at infinity.
func (p *Point[E]) X() E {
	return p.x
}

// Returns Y coordinate of the point. Meaningless for the point at infinity.
func (p *Point[E]) Y() E {
	return p.y
}

func (p *Point[E]) String() string {
	if p.IsInfinity() {
		return "(Infinity)"
	}
	f := p.curve.f
	return fmt.Sprintf("(%s, %s)", f.Format(p.x), f.Format(p.y))
}

// Compares the coordinates and curves of two points
// in particular two points that have otherwise the same
// x,y coords but that were derived from different curves will
// not compare equal.
func (p *Point[E]) Equal(other *Point[E]) bool {
	if p == other {
		return true
	}
	if !p.curve.Equal(other.curve) {
		return false
	}
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() && other.IsInfinity()
	}
	f := p.curve.f
	return f.Equal(p.x, other.x) && f.Equal(p.y, other.y)
}

// Computes the additive inverse of a point
func (p *Point[E]) Neg() *Point[E] {
	if p.IsInfinity() {
		return p
	}
	return &Point[E]{curve: p.curve, x: p.x, y: p.curve.NegY(p.x, p.y)}
}

// Adds two points
func (p *Point[E]) Add(q *Point[E]) *Point[E] {
	if !p.curve.Equal(q.curve) {
		panic("Points are not on the same curve")
	}
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	c := p.curve
	f := c.f
	// vertical line: q = -p
	if f.Equal(p.x, q.x) && f.Equal(p.y, c.NegY(q.x, q.y)) {
		return c.Infinity()
	}

	l := c.Slope(p.x, q.x, p.y, q.y)
	result := &Point[E]{
		curve: c,
		x:     c.AddX(p.x, q.x, l),
		y:     c.AddY(p.x, q.x, p.y, l),
	}
	if checkPointsAfterEveryAdd {
		if !c.Nonsingular(result.x, result.y) {
			panic(fmt.Sprintf("Point %v is not on the curve after adding %v and %v", result, p, q))
		}
	}
	return result
}

func (p *Point[E]) Double() *Point[E] {
	return p.Add(p)
}

// Subtracts one point from another using the additive
// inverse
func (p *Point[E]) Sub(q *Point[E]) *Point[E] {
	return p.Add(q.Neg())
}

// Scalar multiplication using double and add.
// Negative scalars multiply the inverse.
func (p *Point[E]) Mul(k *big.Int) *Point[E] {
	if k.Sign() < 0 {
		return p.Neg().Mul(new(big.Int).Neg(k))
	}

	result := p.curve.Infinity()
	if p.IsInfinity() {
		return result
	}
	accumulator := p
	bitlen := k.BitLen()
	for i := 0; i < bitlen; i++ {
		if k.Bit(i) == 1 {
			result = result.Add(accumulator)
		}
		accumulator = accumulator.Add(accumulator)
	}
	return result
}
