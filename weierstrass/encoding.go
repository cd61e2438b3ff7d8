package weierstrass

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/walterschell/go-bitstream"
)

const (
	tagInfinity = 0x00
	tagEven     = 0x02
	tagOdd      = 0x03
)

// ySelector distinguishes the two points sharing an x coordinate. On short
// curves this is the parity of y, as in SEC 1. On long curves the two
// candidates y and NegY(x, y) need not differ in parity, so the parity of
// y - NegY(x, y) = 2*y + a1*x + a3 is used instead.
func (cp *CurveParams) ySelector(x, y *big.Int) uint {
	f := cp.field
	if f.IsZero(cp.a1) && f.IsZero(cp.a3) {
		return y.Bit(0)
	}
	return cp.curve.PolynomialY(x, y).Bit(0)
}

// If x is on the curve recover the point whose y coordinate
// matches selector (see ySelector)
func (cp *CurveParams) NewPointCompressed(x *big.Int, selector uint) (*Point[*big.Int], error) {
	f := cp.field
	c := cp.curve
	if !f.Contains(x) {
		return nil, NotOnCurveError{}
	}
	// y^2 + t*y = rhs with t = a1*x + a3, so (2y + t)^2 = t^2 + 4*rhs
	t := f.Add(f.Mul(cp.a1, x), cp.a3)
	rhs := f.Neg(c.Polynomial(x, f.Zero()))
	disc := f.Add(f.Mul(t, t), f.Mul(f.FromInt64(4), rhs))
	s, ok := f.Sqrt(disc)
	if !ok {
		return nil, NotOnCurveError{}
	}
	y := f.Mul(f.Sub(s, t), f.Inv(f.FromInt64(2)))
	if cp.ySelector(x, y) != selector&1 {
		y = c.NegY(x, y)
	}
	return c.NewPoint(x, y)
}

// Marshals a point to a bitstream
// infinity flag + X coordinate + selector bit
func (cp *CurveParams) MarshalPointBitstream(p *Point[*big.Int]) *bitstream.BitStream {
	result := bitstream.BitStream{}
	bits := uint(cp.BitSize())
	if p.IsInfinity() {
		result.AppendBit(1)
		result.AppendBigInt(new(big.Int), bits)
		result.AppendBit(0)
		return &result
	}
	result.AppendBit(0)
	result.AppendBigInt(p.x, bits)
	if cp.ySelector(p.x, p.y) == 1 {
		result.AppendBit(1)
	} else {
		result.AppendBit(0)
	}
	return &result
}

// Size in bits of a point serialized by MarshalPointBitstream
func (cp *CurveParams) PointBitstreamSize() int {
	return cp.BitSize() + 2
}

// Unmarshals a point from a bitstream and checks that it is on the curve
func (cp *CurveParams) UnmarshalPointBitstream(bs *bitstream.BitStream) (*Point[*big.Int], error) {
	if bs.Size() != uint(cp.PointBitstreamSize()) {
		return nil, fmt.Errorf("invalid bitstream size for point (expected %d, got %d)", cp.PointBitstreamSize(), bs.Size())
	}
	bits := uint(cp.BitSize())
	x := bs.BigIntAt(1, bits)
	selector := bs.BitAt(bits + 1)
	if bs.BitAt(0) == 1 {
		if x.Sign() != 0 || selector != 0 {
			return nil, fmt.Errorf("invalid encoding of the point at infinity")
		}
		return cp.curve.Infinity(), nil
	}
	if selector == 1 {
		return cp.NewPointCompressed(x, 1)
	}
	return cp.NewPointCompressed(x, 0)
}

// Marshals a point
// Selector tag + X value + curve fingerprint
func (cp *CurveParams) MarshalPoint(p *Point[*big.Int]) ([]byte, error) {
	buf := new(bytes.Buffer)
	switch {
	case p.IsInfinity():
		buf.WriteByte(tagInfinity)
	case cp.ySelector(p.x, p.y) == 1:
		buf.WriteByte(tagOdd)
	default:
		buf.WriteByte(tagEven)
	}
	if !p.IsInfinity() {
		if err := writeBigInt(buf, p.x); err != nil {
			return nil, err
		}
	}
	buf.Write(cp.SHA256Digest())
	return buf.Bytes(), nil
}

// Unmarshals a point and sanity checks that it was for the
// selected curve and that it is on curve
func (cp *CurveParams) UnmarshalPoint(data []byte) (*Point[*big.Int], error) {
	reader := bytes.NewReader(data)

	tag, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	var result *Point[*big.Int]
	switch tag {
	case tagInfinity:
		result = cp.curve.Infinity()
	case tagEven, tagOdd:
		x, err := readBigInt(reader)
		if err != nil {
			return nil, err
		}
		result, err = cp.NewPointCompressed(x, uint(tag&1))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid point tag 0x%02x", tag)
	}

	curveFingerprint := make([]byte, 32)
	if _, err := io.ReadFull(reader, curveFingerprint); err != nil {
		return nil, err
	}
	if !bytes.Equal(cp.SHA256Digest(), curveFingerprint) {
		return nil, fmt.Errorf("curve fingerprint does not match")
	}
	return result, nil
}
