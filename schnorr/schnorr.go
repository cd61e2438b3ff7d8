/*
Short Schnorr Signatures

Domain Parameters
------------------
p    - prime defining field
n    - order of G
H(x) - TruncatedSha256(X) (bitlen(p)/2 bits)
G    - generator (Point)

User Parameters:
----------------
k    - signing secret key (scalar)
P    - signing public key (point)

Per Signature Parameters:
-------------------------
M    - message (bytes)
r    - ephemeral signing scalar (never transmitted, or re-used)
R    - ephemeral signing point corresponding to r (recovered during verification)
R = G * r

Signature
-------------------------
e    - challenge (scalar) (bitlen(p)/2 bits)
s    - proof (scalar) (bitlen(n) bits)

--- Sign Phase ------
// Construct challenge and bind it to message, public key and ephemeral public key
e = H(R || P || M)

// Construct proof that signer knows k
s = r + ke

----Verify Phase-----
// Recover R (G * r) from s,e,P,G           Proof
R = (G * s) - (P * e)

	R = G * r                           // Definition of R
	R = G * (r + ke - ke)               // Add and subtract ke
	R = (G * (r + ke)) - (G * ke)       // Distribute G
	R = (G * (r + ke)) - ((G * k) * e)  // Extract e
	R = (G * s) - (P * e)               // Substitute s for (r + ke) and P for (G * k)

// Compute e' from R, P, M
e' = H(R || P || M)

Verify e = e'

Points are hashed through their affine coordinates, since Jacobian
representatives are not unique.
*/
package schnorr

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"github.com/walterschell/go-bitstream"
	"github.com/walterschell/jacobiancurves/curves"
	"github.com/walterschell/jacobiancurves/jacobian"
)

var ErrInvalidSignature = errors.New("invalid signature")

// Group is the group signatures are computed in.
type Group = curves.Group[*big.Int]

func challengeBits(gr *Group) uint {
	return uint(gr.Params().BitSize()) / 2
}

func proofBits(gr *Group) uint {
	return uint(gr.N().BitLen())
}

// Returns the size in bits of a serialized short signature
func ShortSignatureSize(gr *Group) int {
	return int(proofBits(gr) + challengeBits(gr))
}

// Short Schnorr Signature
type ShortSignature struct {
	group *Group
	s     *big.Int
	e     *big.Int
}

func (s *ShortSignature) String() string {
	return fmt.Sprintf("[%s](s: 0x%x, e: 0x%x)", s.group.Params().Name(), s.s, s.e)
}

// Verifies that the curve is the same and both scalars are the same
func (s *ShortSignature) Equals(other *ShortSignature) bool {
	return s == other || (s.group.Params().Equal(other.group.Params()) &&
		s.e.Cmp(other.e) == 0 &&
		s.s.Cmp(other.s) == 0)
}

// Hash of s, e and curve
func (s *ShortSignature) Fingerprint() string {
	hash := sha256.New()
	hash.Write(s.s.Bytes())
	hash.Write(s.e.Bytes())
	hash.Write(s.group.Params().SHA256Digest())
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// Marshals to a bitstream
// s + e
func (s *ShortSignature) MarshalBitstream() *bitstream.BitStream {
	result := bitstream.BitStream{}
	result.AppendBigInt(s.s, proofBits(s.group))
	result.AppendBigInt(s.e, challengeBits(s.group))
	return &result
}

// Unmarshals from bit stream
func UnmarshalShortSignature(gr *Group, bs *bitstream.BitStream) (*ShortSignature, error) {
	if bs.Size() != uint(ShortSignatureSize(gr)) {
		return nil, fmt.Errorf("invalid bitstream size for short signature (expected %d, got %d)", ShortSignatureSize(gr), bs.Size())
	}

	s := bs.BigIntAt(0, proofBits(gr))
	e := bs.BigIntAt(proofBits(gr), challengeBits(gr))
	if s.Cmp(gr.N()) >= 0 {
		return nil, fmt.Errorf("%w: proof out of range", ErrInvalidSignature)
	}
	return &ShortSignature{group: gr, s: s, e: e}, nil
}

// Full Schnorr Signature
// Carries R itself instead of the challenge
type Signature struct {
	group *Group
	r     *jacobian.Point[*big.Int]
	s     *big.Int
}

// Returns the size in bits of a serialized signature
func SignatureSize(gr *Group) int {
	return gr.Params().PointBitstreamSize() + int(proofBits(gr))
}

func (s *Signature) String() string {
	return fmt.Sprintf("[%s](R: %v, s: 0x%x)", s.group.Params().Name(), s.r, s.s)
}

func (s *Signature) Equals(other *Signature) bool {
	return s == other || (s.group.Params().Equal(other.group.Params()) &&
		s.r.Equal(other.r) &&
		s.s.Cmp(other.s) == 0)
}

// Hash of R, s and curve
func (s *Signature) Fingerprint() string {
	hash := sha256.New()
	hash.Write(encodePoint(s.group, s.r))
	hash.Write(s.s.Bytes())
	hash.Write(s.group.Params().SHA256Digest())
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// Marshals to a bitstream
// compressed R + s
func (s *Signature) MarshalBitstream() *bitstream.BitStream {
	result := bitstream.BitStream{}
	result.AppendBitstream(s.group.Params().MarshalPointBitstream(s.r.ToAffine()))
	result.AppendBigInt(s.s, proofBits(s.group))
	return &result
}

// Unmarshals from bit stream
func UnmarshalSignature(gr *Group, bs *bitstream.BitStream) (*Signature, error) {
	if bs.Size() != uint(SignatureSize(gr)) {
		return nil, fmt.Errorf("invalid bitstream size for signature (expected %d, got %d)", SignatureSize(gr), bs.Size())
	}
	pointBits := uint(gr.Params().PointBitstreamSize())
	encoded := bitstream.BitStream{}
	for i := uint(0); i < pointBits; i++ {
		if bs.BitAt(i) == 1 {
			encoded.AppendBit(1)
		} else {
			encoded.AppendBit(0)
		}
	}
	affine, err := gr.Params().UnmarshalPointBitstream(&encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	r, err := gr.Curve().PointFromAffine(affine)
	if err != nil {
		return nil, err
	}
	if r.IsZero() {
		return nil, fmt.Errorf("%w: R at infinity", ErrInvalidSignature)
	}

	s := bs.BigIntAt(pointBits, proofBits(gr))
	if s.Cmp(gr.N()) >= 0 {
		return nil, fmt.Errorf("%w: proof out of range", ErrInvalidSignature)
	}
	return &Signature{group: gr, r: r, s: s}, nil
}

// encodePoint is the compressed encoding hashed into full signatures
func encodePoint(gr *Group, p *jacobian.Point[*big.Int]) []byte {
	return gr.Params().MarshalPointBitstream(p.ToAffine()).ToBytes()
}

// Hashes data, and truncates to big int that fits into bitSize bits
func modSHA256(bitSize uint, msgChunks ...[]byte) *big.Int {
	sum := new(big.Int).SetBytes(sha256Sum(msgChunks...))
	m := new(big.Int).Lsh(big.NewInt(1), bitSize-1)
	sum.Mod(sum, m)
	return sum
}

func sha256Sum(msgChunks ...[]byte) []byte {
	hash := sha256.New()
	for _, chunk := range msgChunks {
		hash.Write(chunk)
	}
	return hash.Sum(nil)
}

// challenge computes e = H(R || P || M)
func challenge(gr *Group, R, P *jacobian.Point[*big.Int], msg []byte) *big.Int {
	r := R.ToAffine()
	p := P.ToAffine()
	return modSHA256(challengeBits(gr), r.X().Bytes(), r.Y().Bytes(), p.X().Bytes(), p.Y().Bytes(), msg)
}

// randomScalar returns a uniform scalar in [1, n)
func randomScalar(gr *Group) (*big.Int, error) {
	k, err := rand.Int(rand.Reader, new(big.Int).Sub(gr.N(), big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}

// Secret key for using Schnorr signatures
type SecretKey struct {
	group *Group
	k     *big.Int
}

func (sk *SecretKey) Equals(other *SecretKey) bool {
	return sk == other || (sk.group.Params().Equal(other.group.Params()) && sk.k.Cmp(other.k) == 0)
}

func (sk *SecretKey) K() *big.Int {
	return new(big.Int).Set(sk.k)
}

func (sk *SecretKey) Group() *Group {
	return sk.group
}

func (sk *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{group: sk.group, point: sk.group.ScalarBaseMult(sk.k)}
}

// Marshals the secret key
// fixed width scalar + curve fingerprint
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	size := (sk.group.N().BitLen() + 7) / 8
	buf := new(bytes.Buffer)
	buf.Write(sk.k.FillBytes(make([]byte, size)))
	buf.Write(sk.group.Params().SHA256Digest())
	return buf.Bytes(), nil
}

func UnmarshalSecretKey(gr *Group, data []byte) (*SecretKey, error) {
	size := (gr.N().BitLen() + 7) / 8
	if len(data) != size+sha256.Size {
		return nil, fmt.Errorf("invalid secret key size (expected %d, got %d)", size+sha256.Size, len(data))
	}
	if !bytes.Equal(data[size:], gr.Params().SHA256Digest()) {
		return nil, fmt.Errorf("curve fingerprint does not match")
	}
	k := new(big.Int).SetBytes(data[:size])
	if k.Sign() == 0 || k.Cmp(gr.N()) >= 0 {
		return nil, fmt.Errorf("secret key out of range")
	}
	return &SecretKey{group: gr, k: k}, nil
}

// Public key for using Schnorr signatures
type PublicKey struct {
	group *Group
	point *jacobian.Point[*big.Int]
}

func (pk *PublicKey) Equals(other *PublicKey) bool {
	return pk == other || pk.point.Equal(other.point)
}

func (pk *PublicKey) Group() *Group {
	return pk.group
}

func (pk *PublicKey) Point() *jacobian.Point[*big.Int] {
	return pk.point
}

func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.group.Params().MarshalPoint(pk.point.ToAffine())
}

// Unmarshals a public key
func UnmarshalPublicKey(gr *Group, data []byte) (*PublicKey, error) {
	p, err := gr.Params().UnmarshalPoint(data)
	if err != nil {
		return nil, err
	}
	point, err := gr.Curve().PointFromAffine(p)
	if err != nil {
		return nil, err
	}
	if point.IsZero() || !gr.Contains(point) {
		return nil, fmt.Errorf("public key is not in the group generated by G")
	}
	return &PublicKey{group: gr, point: point}, nil
}

// Generates a new Schnorr keypair
func NewKeypair(gr *Group) (*PublicKey, *SecretKey, error) {
	k, err := randomScalar(gr)
	if err != nil {
		return nil, nil, err
	}
	sk := &SecretKey{group: gr, k: k}
	return sk.PublicKey(), sk, nil
}

// Computes a full Schnorr signature for msg
// e = Hash(R + P + msg) mod n
// s = r + ke
func (sk *SecretKey) Sign(msg []byte) (*Signature, error) {
	gr := sk.group
	r, err := randomScalar(gr)
	if err != nil {
		return nil, err
	}
	R := gr.ScalarBaseMult(r)
	P := sk.PublicKey()

	e := new(big.Int).SetBytes(sha256Sum(encodePoint(gr, R), encodePoint(gr, P.point), msg))
	e.Mod(e, gr.N())

	s := new(big.Int).Mul(e, sk.k)
	s.Add(s, r)
	s.Mod(s, gr.N())
	return &Signature{group: gr, r: R, s: s}, nil
}

// Verifies a full Schnorr signature
// G * s = R + P * e
func (pk *PublicKey) Verify(msg []byte, signature *Signature) (bool, error) {
	gr := pk.group
	if !gr.Params().Equal(signature.group.Params()) {
		return false, fmt.Errorf("signature does not share same curve with public key")
	}
	e := new(big.Int).SetBytes(sha256Sum(encodePoint(gr, signature.r), encodePoint(gr, pk.point), msg))
	e.Mod(e, gr.N())

	lhs := gr.ScalarBaseMult(signature.s)
	rhs := signature.r.Add(pk.point.Mul(e))
	if !lhs.Equal(rhs) {
		return false, fmt.Errorf("%w: signature fails to validate", ErrInvalidSignature)
	}
	return true, nil
}

/*
Computes Short Schnorr signature for msg
e = Hash(ephemeral public key + signing public key + msg)
s = ephemeral private key + (signing key * e)
*/
func (sk *SecretKey) SignShort(msg []byte) (*ShortSignature, error) {
	gr := sk.group
	r, err := randomScalar(gr)
	if err != nil {
		return nil, err
	}
	R := gr.ScalarBaseMult(r)
	P := sk.PublicKey()

	// e = H(R || P || M)
	e := challenge(gr, R, P.point, msg)

	// s = r + ke
	s := new(big.Int).Mul(e, sk.k)
	s.Add(s, r)
	s.Mod(s, gr.N())
	return &ShortSignature{group: gr, s: s, e: e}, nil
}

// Verifies a short Schnorr signature
func (pk *PublicKey) VerifyShort(msg []byte, signature *ShortSignature) (bool, error) {
	gr := pk.group
	if !gr.Params().Equal(signature.group.Params()) {
		return false, fmt.Errorf("signature does not share same curve with public key")
	}

	// R = (G * s) - (P * e)
	R := gr.ScalarBaseMult(signature.s).Sub(pk.point.Mul(signature.e))
	if R.IsZero() {
		return false, fmt.Errorf("%w: ephemeral point at infinity", ErrInvalidSignature)
	}

	// Verify recovered e' matches signature e
	if signature.e.Cmp(challenge(gr, R, pk.point, msg)) != 0 {
		return false, fmt.Errorf("%w: invalid e value", ErrInvalidSignature)
	}
	return true, nil
}
