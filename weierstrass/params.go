package weierstrass

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/walterschell/jacobiancurves/field"
)

// maxEncodedIntLen bounds length prefixes accepted by readBigInt.
const maxEncodedIntLen = 1 << 12

// CurveParams describes a curve over a prime field with a base point of
// prime order
//
//	Y^2 + a1*X*Y + a3*Y = X^3 + a2*X^2 + a4*X + a6 mod P
type CurveParams struct {
	p    *big.Int // The prime modulus
	a1   *big.Int
	a2   *big.Int
	a3   *big.Int
	a4   *big.Int
	a6   *big.Int
	gx   *big.Int
	gy   *big.Int
	n    *big.Int // The order of the base point. Must be prime.
	name string

	field *field.PrimeField
	curve *Curve[*big.Int]
}

// Coefficients of the long Weierstrass form. Nil entries are zero.
type Coefficients struct {
	A1, A2, A3, A4, A6 *big.Int
}

/*
Constructs a new curve with the following parameters

Y^2 = X^3 + A*x + B mod P
p prime modulus (must be prime)
a A value for curve
b B value for curve
gx Generator point x coordinate
gy Generator point y coordinate
n Order of the generator (must be prime)
*/
func NewCurveParams(p, a, b, gx, gy, n, name string) (*CurveParams, error) {
	values := map[string]string{"p": p, "a": a, "b": b, "gx": gx, "gy": gy, "n": n}
	parsed := map[string]*big.Int{}
	for _, key := range []string{"p", "a", "b", "gx", "gy", "n"} {
		v, ok := new(big.Int).SetString(values[key], 0)
		if !ok {
			return nil, fmt.Errorf("invalid Number for %s: %s", key, values[key])
		}
		parsed[key] = v
	}
	return NewCurveParamsFromBigInts(parsed["p"], parsed["a"], parsed["b"], parsed["gx"], parsed["gy"], parsed["n"], name)
}

// NewCurveParamsFromBigInts is NewCurveParams for already parsed values.
// do not modify any of the big.Int parameters after calling this function
func NewCurveParamsFromBigInts(p, a, b, gx, gy, n *big.Int, name string) (*CurveParams, error) {
	return NewLongCurveParams(p, Coefficients{A4: a, A6: b}, gx, gy, n, name)
}

// NewLongCurveParams constructs curve parameters with all five Weierstrass
// coefficients. Coefficients are reduced modulo p.
func NewLongCurveParams(p *big.Int, coeffs Coefficients, gx, gy, n *big.Int, name string) (*CurveParams, error) {
	f, err := field.NewPrimeField(p)
	if err != nil {
		return nil, fmt.Errorf("invalid prime modulus: %w", err)
	}
	if p.Bit(0) == 0 {
		return nil, fmt.Errorf("invalid prime modulus (characteristic 2)")
	}
	if !n.ProbablyPrime(20) {
		return nil, fmt.Errorf("invalid order (not prime)")
	}
	// Hasse: #E <= p + 1 + 2*sqrt(p)
	hasse := new(big.Int).Sqrt(p)
	hasse.Lsh(hasse, 1).Add(hasse, p).Add(hasse, big.NewInt(3))
	if n.Cmp(hasse) > 0 {
		return nil, fmt.Errorf("invalid order (exceeds Hasse bound)")
	}
	if !f.Contains(gx) || !f.Contains(gy) {
		return nil, fmt.Errorf("invalid base point")
	}

	reduce := func(v *big.Int) *big.Int {
		if v == nil {
			return f.Zero()
		}
		return f.FromBig(v)
	}
	cp := &CurveParams{
		p:     p,
		a1:    reduce(coeffs.A1),
		a2:    reduce(coeffs.A2),
		a3:    reduce(coeffs.A3),
		a4:    reduce(coeffs.A4),
		a6:    reduce(coeffs.A6),
		gx:    gx,
		gy:    gy,
		n:     n,
		name:  name,
		field: f,
	}
	cp.curve = NewCurve[*big.Int](f, cp.a1, cp.a2, cp.a3, cp.a4, cp.a6)
	if !cp.curve.IsElliptic() {
		return nil, fmt.Errorf("invalid curve (zero discriminant)")
	}
	if _, err := cp.curve.NewPoint(gx, gy); err != nil {
		return nil, fmt.Errorf("invalid base point: %w", err)
	}
	return cp, nil
}

// P returns the prime modulus of the curve.
func (cp *CurveParams) P() *big.Int {
	return new(big.Int).Set(cp.p)
}

// A returns the coefficient A (= a4) of the short curve equation.
func (cp *CurveParams) A() *big.Int {
	return new(big.Int).Set(cp.a4)
}

// B returns the coefficient B (= a6) of the short curve equation.
func (cp *CurveParams) B() *big.Int {
	return new(big.Int).Set(cp.a6)
}

// Coefficients returns copies of all five coefficients.
func (cp *CurveParams) Coefficients() Coefficients {
	return Coefficients{
		A1: new(big.Int).Set(cp.a1),
		A2: new(big.Int).Set(cp.a2),
		A3: new(big.Int).Set(cp.a3),
		A4: new(big.Int).Set(cp.a4),
		A6: new(big.Int).Set(cp.a6),
	}
}

// Gx returns the x-coordinate of the base point G.
func (cp *CurveParams) Gx() *big.Int {
	return new(big.Int).Set(cp.gx)
}

// Gy returns the y-coordinate of the base point G.
func (cp *CurveParams) Gy() *big.Int {
	return new(big.Int).Set(cp.gy)
}

// N returns the order of the base point.
func (cp *CurveParams) N() *big.Int {
	return new(big.Int).Set(cp.n)
}

// Name returns the name of the curve.
func (cp *CurveParams) Name() string {
	return cp.name
}

// Returns the size in bits of the prime modulus.
func (cp *CurveParams) BitSize() int {
	return cp.p.BitLen()
}

func (cp *CurveParams) Field() *field.PrimeField {
	return cp.field
}

// Curve returns the curve over the prime field described by the parameters.
func (cp *CurveParams) Curve() *Curve[*big.Int] {
	return cp.curve
}

// Returns the generator point for a curve
func (cp *CurveParams) G() *Point[*big.Int] {
	g, err := cp.curve.NewPoint(cp.gx, cp.gy)
	if err != nil {
		panic("Invalid base point")
	}
	return g
}

// Equal compares two CurveParams for equality.
func (cp *CurveParams) Equal(other *CurveParams) bool {
	return cp == other || (cp.p.Cmp(other.p) == 0 &&
		cp.a1.Cmp(other.a1) == 0 &&
		cp.a2.Cmp(other.a2) == 0 &&
		cp.a3.Cmp(other.a3) == 0 &&
		cp.a4.Cmp(other.a4) == 0 &&
		cp.a6.Cmp(other.a6) == 0 &&
		cp.gx.Cmp(other.gx) == 0 &&
		cp.gy.Cmp(other.gy) == 0 &&
		cp.n.Cmp(other.n) == 0 &&
		cp.name == other.name)
}

func writeBytes(writer io.Writer, bytes []byte) error {
	sizeBytes := binary.AppendVarint(nil, int64(len(bytes)))
	if _, err := writer.Write(sizeBytes); err != nil {
		return err
	}
	_, err := writer.Write(bytes)
	return err
}

func writeBigInt(writer io.Writer, value *big.Int) error {
	return writeBytes(writer, value.Bytes())
}

// byteReader reads one byte at a time so that varint decoding never consumes
// more of the underlying stream than it needs.
type byteReader struct {
	io.Reader
}

func (r byteReader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r.Reader, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func readBytes(reader io.Reader) ([]byte, error) {
	length, err := binary.ReadVarint(byteReader{reader})
	if err != nil {
		return nil, err
	}
	if length < 0 || length > maxEncodedIntLen {
		return nil, fmt.Errorf("invalid encoded length %d", length)
	}
	bytes := make([]byte, length)
	if _, err := io.ReadFull(reader, bytes); err != nil {
		return nil, err
	}
	return bytes, nil
}

func readBigInt(reader io.Reader) (*big.Int, error) {
	bytes, err := readBytes(reader)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(bytes), nil
}

// Serialize CurveParams
func (cp *CurveParams) Write(writer io.Writer) error {
	for _, v := range []*big.Int{cp.p, cp.a1, cp.a2, cp.a3, cp.a4, cp.a6, cp.gx, cp.gy, cp.n} {
		if err := writeBigInt(writer, v); err != nil {
			return err
		}
	}
	return writeBytes(writer, []byte(cp.name))
}

// Compute fingerprint of curve for added sanity checks
func (cp *CurveParams) SHA256Digest() []byte {
	hash := sha256.New()
	cp.Write(hash)
	return hash.Sum(nil)
}

// Deserialize curve parameters. The values are validated exactly as by
// NewLongCurveParams.
func ReadCurveParams(reader io.Reader) (*CurveParams, error) {
	values := make([]*big.Int, 9)
	for i := range values {
		v, err := readBigInt(reader)
		if err != nil {
			return nil, fmt.Errorf("reading curve parameters: %w", err)
		}
		values[i] = v
	}
	name, err := readBytes(reader)
	if err != nil {
		return nil, fmt.Errorf("reading curve name: %w", err)
	}
	coeffs := Coefficients{A1: values[1], A2: values[2], A3: values[3], A4: values[4], A6: values[5]}
	return NewLongCurveParams(values[0], coeffs, values[6], values[7], values[8], string(name))
}
