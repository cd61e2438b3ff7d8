package jacobian

import (
	"fmt"

	"github.com/walterschell/jacobiancurves/field"
	"github.com/walterschell/jacobiancurves/weierstrass"
)

// MapTriple applies h to each coordinate.
func MapTriple[A, B any](h field.Hom[A, B], P Triple[A]) (Triple[B], error) {
	coords, err := field.MapAll(h, P.X, P.Y, P.Z)
	if err != nil {
		return Triple[B]{}, err
	}
	return Triple[B]{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// MapCurve is the base change of c along h. The new curve logs to the same
// logger unless opts say otherwise.
func MapCurve[A, B any](h field.Hom[A, B], c *Curve[A], opts ...Option) (*Curve[B], error) {
	w, err := weierstrass.MapCurve(h, c.w)
	if err != nil {
		return nil, err
	}
	inherited := []Option{WithLogger(c.logger), WithResultChecks(c.checkResults)}
	return NewCurve(w, append(inherited, opts...)...), nil
}

// MapPoint sends p to the base change target of its curve. The image of a
// nonsingular point can be singular when h is not injective (reduction of a
// rational curve with bad reduction, for instance); this is reported as a
// NonsingularError.
func MapPoint[A, B any](h field.Hom[A, B], target *Curve[B], p *Point[A]) (*Point[B], error) {
	w, err := weierstrass.MapCurve(h, p.curve.w)
	if err != nil {
		return nil, err
	}
	if !w.Equal(target.w) {
		return nil, fmt.Errorf("%w: %v is not the base change of %v", ErrCurveMismatch, target, p.curve)
	}
	t, err := MapTriple(h, p.t)
	if err != nil {
		return nil, fmt.Errorf("mapping %v: %w", p, err)
	}
	return target.NewPoint(t)
}
