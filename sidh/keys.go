// Package sidh implements the Supersingular Isogeny Diffie-Hellman key
// agreement: key generation, public-key-from-private-key derivation,
// and shared-secret derivation, for both sides of the protocol. It
// generalizes shirinebadi-bssl/sike.go's four hardcoded, per-side
// functions (publicKeyGenA/B, deriveSecretA/B) into a single pair of
// variant-parameterized implementations shared across all four
// parameter sets.
package sidh

import (
	"io"
	"math/big"

	"github.com/rust-crypto-labs/gosike/internal/curve"
	"github.com/rust-crypto-labs/gosike/internal/field"
	"github.com/rust-crypto-labs/gosike/internal/isogeny"
	"github.com/rust-crypto-labs/gosike/internal/log"
	"github.com/rust-crypto-labs/gosike/internal/sikeerr"
	"github.com/rust-crypto-labs/gosike/params"
)

// KeyVariant selects which side of the protocol a key belongs to: the
// 2^e2-degree side (A) or the 3^e3-degree side (B). The two sides walk
// different isogeny degrees and must never be mixed.
type KeyVariant int

const (
	KeyVariantA KeyVariant = iota
	KeyVariantB
)

// startingCurve is the public base curve E0: y^2 = x^3 + x (A=0, C=1)
// every key pair's isogeny walk begins from. params.buildSideBasis
// derives each parameter set's generator points as genuine order-2^e2
// / order-3^e3 torsion points on this exact curve, so the curve used
// here must match it exactly.
func startingCurve(mod *field.Modulus) curve.Coeff {
	return curve.Coeff{A: mod.Zero2(), C: mod.One2()}
}

// PrivateKey is one party's secret SIDH exponent together with the
// parameter set and side it belongs to.
type PrivateKey struct {
	Set     *params.Set
	Variant KeyVariant
	scalar  *big.Int
}

// PublicKey is the three x-coordinates (P, Q, P-Q) of a party's image
// torsion basis, pushed through that party's secret isogeny.
type PublicKey struct {
	Set     *params.Set
	Variant KeyVariant
	XP, XQ, XQmP field.Elt2
}

// NewPrivateKey allocates an empty private key for the given parameter
// set and side; call Generate to fill in a secret scalar.
func NewPrivateKey(set *params.Set, variant KeyVariant) *PrivateKey {
	return &PrivateKey{Set: set, Variant: variant}
}

func (sk *PrivateKey) bitLen() int {
	if sk.Variant == KeyVariantA {
		return sk.Set.SecretBitLenA
	}
	return sk.Set.SecretBitLenB
}

func (sk *PrivateKey) byteLen() int {
	if sk.Variant == KeyVariantA {
		return sk.Set.SecretByteLenA
	}
	return sk.Set.SecretByteLenB
}

// Generate draws a fresh secret scalar from rng, masked to the side's
// secret bit length. On the 2^e2 side the low bit is also cleared, so
// A-side scalars are always even, matching the even-scalar convention
// of shirinebadi-bssl's publicKeyGenA.
func (sk *PrivateKey) Generate(rng io.Reader) error {
	buf := make([]byte, sk.byteLen())
	if _, err := io.ReadFull(rng, buf); err != nil {
		return err
	}
	n := new(big.Int).SetBytes(buf)

	mask := new(big.Int).Lsh(big.NewInt(1), uint(sk.bitLen()))
	mask.Sub(mask, big.NewInt(1))
	n.And(n, mask)

	if sk.Variant == KeyVariantA {
		n.SetBit(n, 0, 0)
	}

	sk.scalar = n
	log.L.Debug().Int("variant", int(sk.Variant)).Msg("generated SIDH private key")
	return nil
}

// own returns this key's side's own generator triple, used to build
// the secret kernel point.
func (sk *PrivateKey) own() params.SideGenerators {
	if sk.Variant == KeyVariantA {
		return sk.Set.A
	}
	return sk.Set.B
}

// peer returns the OTHER side's generator triple: the points this key
// must push through its secret isogeny to produce a public key the
// other party can use.
func (sk *PrivateKey) peer() params.SideGenerators {
	if sk.Variant == KeyVariantA {
		return sk.Set.B
	}
	return sk.Set.A
}

func asPoint(x field.Elt2) curve.Point {
	return curve.Point{X: x, Z: x.A.Modulus().One2()}
}

// walk runs this key's side-specific isogeny-tree traversal from
// kernel over c0, pushing pushPoints through it.
func (sk *PrivateKey) walk(kernel curve.Point, c0 curve.Coeff, pushPoints []curve.Point) (curve.Coeff, []curve.Point) {
	if sk.Variant == KeyVariantA {
		return walkASide(sk.Set.Strategy2, sk.Set.E2, kernel, c0, pushPoints)
	}
	return isogeny.WalkDegree3(sk.Set.Strategy3, kernel, c0, pushPoints)
}

// walkASide walks the even part of a 2^e2 isogeny via WalkDegree4, and,
// when e2 is odd, walks the even part from [2]R and finishes with one
// trailing degree-2 step using the image of the original kernel R as
// its kernel — the convention
// WalkDegree4's doc comment requires of callers for the odd case.
func walkASide(strategy []int, e2 uint, kernel curve.Point, c0 curve.Coeff, pushPoints []curve.Point) (curve.Coeff, []curve.Point) {
	if e2%2 == 0 {
		return isogeny.WalkDegree4(strategy, kernel, c0, pushPoints)
	}

	aux := make([]curve.Point, 0, len(pushPoints)+1)
	aux = append(aux, kernel)
	aux = append(aux, pushPoints...)

	_, auxImg := isogeny.WalkDegree4(strategy, curve.XDbl(kernel, c0), c0, aux)

	finalKernel := auxImg[0]
	rest := auxImg[1:]

	phi2, cFinal := isogeny.NewIsogeny2(finalKernel)
	out := make([]curve.Point, len(rest))
	for i, p := range rest {
		out[i] = phi2.Eval(p)
	}
	return cFinal, out
}

// normalize converts a projective Kummer point to its affine
// x-coordinate X/Z. Every point this package normalizes comes out of a
// nonzero-kernel isogeny walk and is never itself the point at
// infinity, so Inv failing here indicates a malformed input rather
// than a reachable protocol state.
func normalize(p curve.Point) (field.Elt2, error) {
	zInv, err := p.Z.Inv()
	if err != nil {
		return field.Elt2{}, sikeerr.NewArithmeticError(sikeerr.DivisionByZero)
	}
	return p.X.Mul(zInv), nil
}

// GeneratePublicKey derives the public key corresponding to sk by
// walking sk's secret isogeny from the starting curve and pushing the
// peer side's torsion basis through it, generalizing
// shirinebadi-bssl's publicKeyGenA/publicKeyGenB.
func (sk *PrivateKey) GeneratePublicKey() (*PublicKey, error) {
	mod := sk.Set.Mod
	own, peer := sk.own(), sk.peer()

	kernel := curve.Ladder3Pt(sk.scalar, sk.bitLen(), asPoint(own.XP), asPoint(own.XQ), own.XPQ, startingCurve(mod))
	push := []curve.Point{asPoint(peer.XP), asPoint(peer.XQ), asPoint(peer.XPQ)}

	_, auxImg := sk.walk(kernel, startingCurve(mod), push)

	xP, err := normalize(auxImg[0])
	if err != nil {
		return nil, err
	}
	xQ, err := normalize(auxImg[1])
	if err != nil {
		return nil, err
	}
	xQmP, err := normalize(auxImg[2])
	if err != nil {
		return nil, err
	}

	return &PublicKey{Set: sk.Set, Variant: sk.Variant, XP: xP, XQ: xQ, XQmP: xQmP}, nil
}

// DeriveSecret computes the shared j-invariant between sk and a public
// key received from the other side, generalizing shirinebadi-bssl's
// deriveSecretA/deriveSecretB.
func (sk *PrivateKey) DeriveSecret(pub *PublicKey) ([]byte, error) {
	if pub.Variant == sk.Variant {
		return nil, sikeerr.NewInvalidParameterError("public key is on the same side as this private key")
	}

	c0 := curve.RecoverCoordinateA(pub.XP, pub.XQ, pub.XQmP)
	kernel := curve.Ladder3Pt(sk.scalar, sk.bitLen(), asPoint(pub.XP), asPoint(pub.XQ), pub.XQmP, c0)

	cFinal, _ := sk.walk(kernel, c0, nil)

	j, err := curve.JInvariant(cFinal)
	if err != nil {
		return nil, err
	}
	return j.Bytes(), nil
}

// Bytes encodes the public key as the concatenation of its three
// x-coordinates, each in fixed-length big-endian Fp2 form.
func (pub *PublicKey) Bytes() []byte {
	out := make([]byte, 0, 3*2*pub.Set.Mod.ByteLen())
	out = append(out, pub.XP.Bytes()...)
	out = append(out, pub.XQ.Bytes()...)
	out = append(out, pub.XQmP.Bytes()...)
	return out
}

// PublicKeyFromBytes decodes a public key previously produced by Bytes.
func PublicKeyFromBytes(set *params.Set, variant KeyVariant, b []byte) (*PublicKey, error) {
	half := 2 * set.Mod.ByteLen()
	if len(b) != 3*half {
		return nil, sikeerr.NewEncodingError("wrong byte length for SIDH public key")
	}
	xP, err := set.Mod.Elt2FromBytes(b[0:half])
	if err != nil {
		return nil, err
	}
	xQ, err := set.Mod.Elt2FromBytes(b[half : 2*half])
	if err != nil {
		return nil, err
	}
	xQmP, err := set.Mod.Elt2FromBytes(b[2*half : 3*half])
	if err != nil {
		return nil, err
	}
	return &PublicKey{Set: set, Variant: variant, XP: xP, XQ: xQ, XQmP: xQmP}, nil
}
