package curves

import (
	"math/big"

	"github.com/walterschell/jacobiancurves/field"
	"github.com/walterschell/jacobiancurves/jacobian"
	"github.com/walterschell/jacobiancurves/weierstrass"
)

// RationalY2X3Plus1 returns Y^2 = X^3 + 1 over Q together with (2, 3), a
// point of order six generating the whole group of rational points.
func RationalY2X3Plus1(opts ...jacobian.Option) (*jacobian.Curve[*big.Rat], *jacobian.Point[*big.Rat]) {
	q := field.Rationals{}
	c := jacobian.NewCurve(weierstrass.NewShortCurve[*big.Rat](q, q.Zero(), q.One()), opts...)
	p, err := c.NewPoint(jacobian.Triple[*big.Rat]{X: big.NewRat(2, 1), Y: big.NewRat(3, 1), Z: q.One()})
	if err != nil {
		panic(err)
	}
	return c, p
}
