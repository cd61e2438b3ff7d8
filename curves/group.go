package curves

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/walterschell/jacobiancurves/field"
	"github.com/walterschell/jacobiancurves/jacobian"
	"github.com/walterschell/jacobiancurves/weierstrass"
)

// Group is the cyclic subgroup generated by the base point of a curve,
// computed in Jacobian coordinates over the field backend E.
type Group[E any] struct {
	params *weierstrass.CurveParams
	curve  *jacobian.Curve[E]
	g      *jacobian.Point[E]
}

// NewGroup builds the group over the big.Int backend.
func NewGroup(cp *weierstrass.CurveParams, opts ...jacobian.Option) *Group[*big.Int] {
	c := jacobian.NewCurve(cp.Curve(), opts...)
	g, err := c.PointFromAffine(cp.G())
	if err != nil {
		// cp.G() lives on cp.Curve()
		panic(err)
	}
	return &Group[*big.Int]{params: cp, curve: c, g: g}
}

// NewSmallGroup builds the group over the uint64 backend. The modulus must
// fit 64 bits.
func NewSmallGroup(cp *weierstrass.CurveParams, opts ...jacobian.Option) (*Group[uint64], error) {
	if cp.BitSize() > 64 {
		return nil, fmt.Errorf("%s: %w", cp.Name(), field.ErrModulusTooLarge)
	}
	f, err := field.NewSmallField(cp.P().Uint64())
	if err != nil {
		return nil, err
	}
	h, err := field.NewPrimeToSmall(cp.Field(), f)
	if err != nil {
		return nil, err
	}
	return baseChange[uint64](cp, h, opts)
}

// NewFp256Group builds the group over the uint256 backend.
func NewFp256Group(cp *weierstrass.CurveParams, opts ...jacobian.Option) (*Group[uint256.Int], error) {
	f, err := field.NewFp256(cp.P())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cp.Name(), err)
	}
	h, err := field.NewPrimeToFp256(cp.Field(), f)
	if err != nil {
		return nil, err
	}
	return baseChange[uint256.Int](cp, h, opts)
}

func baseChange[E any](cp *weierstrass.CurveParams, h field.Hom[*big.Int, E], opts []jacobian.Option) (*Group[E], error) {
	src := NewGroup(cp, opts...)
	c, err := jacobian.MapCurve(h, src.curve)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cp.Name(), err)
	}
	g, err := jacobian.MapPoint(h, c, src.g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cp.Name(), err)
	}
	return &Group[E]{params: cp, curve: c, g: g}, nil
}

func (gr *Group[E]) Params() *weierstrass.CurveParams { return gr.params }
func (gr *Group[E]) Curve() *jacobian.Curve[E]        { return gr.curve }
func (gr *Group[E]) G() *jacobian.Point[E]            { return gr.g }

// N returns the order of G.
func (gr *Group[E]) N() *big.Int {
	return gr.params.N()
}

// ScalarBaseMult computes k*G with k reduced modulo N.
func (gr *Group[E]) ScalarBaseMult(k *big.Int) *jacobian.Point[E] {
	return gr.g.Mul(new(big.Int).Mod(k, gr.params.N()))
}

// Contains reports whether p lies in the subgroup generated by G.
func (gr *Group[E]) Contains(p *jacobian.Point[E]) bool {
	return p.Curve().Equal(gr.curve) && p.Mul(gr.params.N()).IsZero()
}
