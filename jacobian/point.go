package jacobian

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/walterschell/jacobiancurves/weierstrass"
	"go.uber.org/zap"
)

var ErrCurveMismatch = errors.New("point belongs to a different curve")

// NonsingularError is returned when a triple is not a nonsingular point of
// the curve.
type NonsingularError struct {
	Representative string
	// OnCurve is set when the triple satisfies the curve equation but is a
	// singular point of it.
	OnCurve bool
}

func (e NonsingularError) Error() string {
	if e.OnCurve {
		return fmt.Sprintf("%s is a singular point of the curve", e.Representative)
	}
	return fmt.Sprintf("%s is not on the curve", e.Representative)
}

// Point is a class of triples that is known to be nonsingular. Points are
// immutable.
type Point[E any] struct {
	curve *Curve[E]
	t     Triple[E]
}

// NewPoint validates P and returns its class.
func (c *Curve[E]) NewPoint(P Triple[E]) (*Point[E], error) {
	if !c.Nonsingular(P) {
		return nil, NonsingularError{Representative: c.FormatTriple(P), OnCurve: c.Equation(P)}
	}
	return &Point[E]{curve: c, t: P}, nil
}

// Zero is the point at infinity, the class of (1, 1, 0).
func (c *Curve[E]) Zero() *Point[E] {
	return &Point[E]{curve: c, t: c.ZeroTriple()}
}

// PointFromAffine lifts an affine point of the same Weierstrass curve.
func (c *Curve[E]) PointFromAffine(p *weierstrass.Point[E]) (*Point[E], error) {
	if !c.w.Equal(p.Curve()) {
		return nil, ErrCurveMismatch
	}
	return &Point[E]{curve: c, t: c.FromAffine(p)}, nil
}

func (p *Point[E]) Curve() *Curve[E] {
	return p.curve
}

// Triple returns the representative held by p, which is not canonical. Use
// Normalize for a canonical one.
func (p *Point[E]) Triple() Triple[E] {
	return p.t
}

func (p *Point[E]) IsZero() bool {
	return p.curve.f.IsZero(p.t.Z)
}

// Equal compares classes, not representatives.
func (p *Point[E]) Equal(other *Point[E]) bool {
	if p == other {
		return true
	}
	return p.curve.Equal(other.curve) && p.curve.Equivalent(p.t, other.t)
}

func (p *Point[E]) Neg() *Point[E] {
	return &Point[E]{curve: p.curve, t: p.curve.Neg(p.t)}
}

// Adds two points
func (p *Point[E]) Add(q *Point[E]) *Point[E] {
	c := p.curve
	if !c.Equal(q.curve) {
		panic("Points are not on the same curve")
	}
	result := &Point[E]{curve: c, t: c.Add(p.t, q.t)}
	if c.checkResults && !c.Nonsingular(result.t) {
		c.logger.Error("sum is not a nonsingular point",
			zap.Stringer("p", p),
			zap.Stringer("q", q),
			zap.String("sum", c.FormatTriple(result.t)),
			zap.Stringer("case", c.ClassifyAdd(p.t, q.t)),
		)
		panic(fmt.Sprintf("Point %s is not on the curve after adding %v and %v", c.FormatTriple(result.t), p, q))
	}
	return result
}

func (p *Point[E]) Double() *Point[E] {
	return p.Add(p)
}

func (p *Point[E]) Sub(q *Point[E]) *Point[E] {
	return p.Add(q.Neg())
}

// Scalar multiplication using double and add.
// Negative scalars multiply the inverse.
func (p *Point[E]) Mul(k *big.Int) *Point[E] {
	if k.Sign() < 0 {
		return p.Neg().Mul(new(big.Int).Neg(k))
	}
	result := p.curve.Zero()
	accumulator := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(accumulator)
		}
		accumulator = accumulator.Double()
	}
	return result
}

// Normalize returns the same point with its canonical representative.
func (p *Point[E]) Normalize() *Point[E] {
	return &Point[E]{curve: p.curve, t: p.curve.Normalize(p.t)}
}

func (p *Point[E]) ToAffine() *weierstrass.Point[E] {
	return p.curve.ToAffine(p.t)
}

// String renders the canonical representative.
func (p *Point[E]) String() string {
	return p.curve.FormatTriple(p.curve.Normalize(p.t))
}
