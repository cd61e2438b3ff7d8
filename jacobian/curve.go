// Package jacobian implements the group law of a Weierstrass curve in
// Jacobian coordinates. A point is represented by a triple (X, Y, Z) standing
// for the affine point (X/Z^2, Y/Z^3); triples that differ by the weighted
// scaling u•(X, Y, Z) = (u^2*X, u^3*Y, u*Z) represent the same point, and
// Z = 0 is the point at infinity.
//
// Formulas never divide, with the exception of the factor AddU of the
// vertical case. Addition dispatches on exact equality tests of field
// elements, so the field must be exact (see package field).
package jacobian

import (
	"github.com/walterschell/jacobiancurves/field"
	"github.com/walterschell/jacobiancurves/weierstrass"
	"go.uber.org/zap"
)

// Curve is a Weierstrass curve equipped with the Jacobian formulas.
type Curve[E any] struct {
	w            *weierstrass.Curve[E]
	f            field.Field[E]
	logger       *zap.Logger
	checkResults bool
}

type options struct {
	logger       *zap.Logger
	checkResults bool
}

// Option configures a Curve.
type Option func(*options)

// WithLogger sets the logger used for addition case tracing (Debug) and
// failed result checks (Error). The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithResultChecks controls whether every sum computed by Point.Add is
// verified to be nonsingular. Enabled by default.
func WithResultChecks(enabled bool) Option {
	return func(o *options) {
		o.checkResults = enabled
	}
}

// NewCurve wraps w. The curve may be singular, in which case only its
// nonsingular points can be made into Points.
func NewCurve[E any](w *weierstrass.Curve[E], opts ...Option) *Curve[E] {
	o := options{logger: zap.NewNop(), checkResults: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	c := &Curve[E]{
		w:            w,
		f:            w.Field(),
		logger:       o.logger,
		checkResults: o.checkResults,
	}
	if !w.IsElliptic() {
		c.logger.Debug("curve is singular", zap.Stringer("curve", w))
	}
	return c
}

// Weierstrass returns the curve coefficients the formulas read.
func (c *Curve[E]) Weierstrass() *weierstrass.Curve[E] { return c.w }

// Field returns the coefficient field.
func (c *Curve[E]) Field() field.Field[E] { return c.f }

// Logger returns the logger set by WithLogger, or a no-op logger.
func (c *Curve[E]) Logger() *zap.Logger { return c.logger }

// Equal compares the underlying Weierstrass curves.
func (c *Curve[E]) Equal(other *Curve[E]) bool {
	return c == other || c.w.Equal(other.w)
}

func (c *Curve[E]) String() string {
	return c.w.String()
}
