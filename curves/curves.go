// Package curves holds named curve parameters and builds Jacobian groups
// over the available field backends for them.
package curves

import (
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/walterschell/jacobiancurves/weierstrass"
)

//go:embed presets.yaml
var presetsYAML []byte

var ErrUnknownCurve = errors.New("unknown curve")

var presets = sync.OnceValues(func() (map[string]*weierstrass.CurveParams, error) {
	result, err := weierstrass.ParseCurveSetYAML(presetsYAML)
	if err != nil {
		return nil, err
	}
	for _, build := range []func() (*weierstrass.CurveParams, error){secp256k1Params, bn254Params} {
		cp, err := build()
		if err != nil {
			return nil, err
		}
		result[cp.Name()] = cp
	}
	return result, nil
})

// secp256k1: Y^2 = X^3 + 7
func secp256k1Params() (*weierstrass.CurveParams, error) {
	params := secp256k1.S256().Params()
	cp, err := weierstrass.NewCurveParamsFromBigInts(
		new(big.Int).Set(params.P),
		new(big.Int),
		new(big.Int).Set(params.B),
		new(big.Int).Set(params.Gx),
		new(big.Int).Set(params.Gy),
		new(big.Int).Set(params.N),
		"secp256k1")
	if err != nil {
		return nil, fmt.Errorf("secp256k1: %w", err)
	}
	return cp, nil
}

// bn254 G1: Y^2 = X^3 + b. b is recovered from the generator.
func bn254Params() (*weierstrass.CurveParams, error) {
	_, _, g1, _ := bn254.Generators()
	p := fp.Modulus()
	gx := g1.X.BigInt(new(big.Int))
	gy := g1.Y.BigInt(new(big.Int))

	b := new(big.Int).Mul(gy, gy)
	b.Sub(b, new(big.Int).Exp(gx, big.NewInt(3), p))
	b.Mod(b, p)

	cp, err := weierstrass.NewCurveParamsFromBigInts(p, new(big.Int), b, gx, gy, fr.Modulus(), "bn254")
	if err != nil {
		return nil, fmt.Errorf("bn254: %w", err)
	}
	return cp, nil
}

// ByName returns the parameters of a bundled curve.
func ByName(name string) (*weierstrass.CurveParams, error) {
	all, err := presets()
	if err != nil {
		return nil, fmt.Errorf("loading curve presets: %w", err)
	}
	cp, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return cp, nil
}

// Names lists the bundled curves in lexical order.
func Names() []string {
	all, err := presets()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustPreset(name string) *weierstrass.CurveParams {
	cp, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return cp
}

func P256() *weierstrass.CurveParams      { return mustPreset("p256") }
func Secp256k1() *weierstrass.CurveParams { return mustPreset("secp256k1") }
func BN254() *weierstrass.CurveParams     { return mustPreset("bn254") }
func Tiny() *weierstrass.CurveParams      { return mustPreset("tiny") }
func C50() *weierstrass.CurveParams       { return mustPreset("c50") }
func C64() *weierstrass.CurveParams       { return mustPreset("c64") }

// Long103 has all five Weierstrass coefficients nonzero; its base point has
// order 5 in a group of order 90.
func Long103() *weierstrass.CurveParams { return mustPreset("long103") }
