package params

import (
	"fmt"
	"math/big"

	"github.com/rust-crypto-labs/gosike/internal/field"
	"github.com/rust-crypto-labs/gosike/internal/kdf"
)

// SideGenerators holds the three public x-coordinates (P, Q, P-Q) that
// seed one side (A or B) of the SIDH protocol: a torsion basis of
// exact order ell^e on the starting curve, where (ell,e) is (2,E2) for
// the A side and (3,E3) for the B side.
type SideGenerators struct {
	XP, XQ, XPQ field.Elt2
}

// maxBasisAttempts bounds the cofactor-clearing search in
// deriveTorsionPoint. A uniformly random curve point lands on the
// target torsion subgroup with exact order with overwhelming
// probability after a handful of tries; this bound only guards against
// a pathological seed, not the expected case.
const maxBasisAttempts = 1 << 16

// buildSideBasis derives a genuine order-ell^e torsion basis (P, Q,
// P-Q) on the curve y^2 = x^3 + a*x^2 + x, by sampling candidate
// x-coordinates from cSHAKE256(setName, tag), keeping only those that
// are actually on the curve (the candidate's curve-equation value is
// an F_p^2 square, recovered via the complex-method Sqrt), clearing
// the cofactor so the result lies in the ell^e-torsion subgroup, and
// verifying the cleared point's order is exactly ell^e before
// accepting it. This replaces sampling bare pseudorandom field
// elements as generators (which are not guaranteed to be torsion
// points of any particular order, let alone points on the curve at
// all) with points whose order is checked, not assumed.
func buildSideBasis(mod *field.Modulus, a field.Elt2, cofactor *big.Int, ell int, e uint, setName, tagPrefix string) SideGenerators {
	p := deriveTorsionPoint(mod, a, cofactor, ell, e, setName, tagPrefix+".P")
	q := deriveTorsionPoint(mod, a, cofactor, ell, e, setName, tagPrefix+".Q")
	// P and Q generate the whole ell^e-torsion only if [ell^(e-1)]P and
	// [ell^(e-1)]Q lie in different order-ell subgroups, i.e. have
	// different x-coordinates; Q is resampled until they do.
	low := new(big.Int).Exp(big.NewInt(int64(ell)), big.NewInt(int64(e-1)), nil)
	pLow := affineScalarMul(p, low, a)
	for i := 1; affineScalarMul(q, low, a).x.Equal(pLow.x); i++ {
		q = deriveTorsionPoint(mod, a, cofactor, ell, e, setName, fmt.Sprintf("%s.Q%d", tagPrefix, i))
	}
	diff := affineAdd(p, affineNeg(q), a)
	return SideGenerators{XP: p.x, XQ: q.x, XPQ: diff.x}
}

// deriveTorsionPoint searches cSHAKE256-derived candidate x-coordinates
// on the curve y^2 = x^3 + a*x^2 + x until cofactor-clearing by
// cofactor produces a point of exact order ell^e, and returns that
// point.
func deriveTorsionPoint(mod *field.Modulus, a field.Elt2, cofactor *big.Int, ell int, e uint, setName, tag string) affinePoint {
	for attempt := 0; attempt < maxBasisAttempts; attempt++ {
		x, ok := candidateX(mod, setName, tag, attempt)
		if !ok {
			continue
		}
		rhs := x.Mul(x).Mul(x).Add(a.Mul(x.Mul(x))).Add(x)
		y, err := rhs.Sqrt()
		if err != nil {
			continue
		}
		q := affineScalarMul(affinePoint{x: x, y: y}, cofactor, a)
		if hasExactOrder(q, ell, e, a) {
			return q
		}
	}
	panic(fmt.Sprintf("gosike: %s: no order-%d^%d torsion point found for %s after %d attempts", setName, ell, e, tag, maxBasisAttempts))
}

// candidateX derives a pseudorandom F_p^2 candidate x-coordinate from
// cSHAKE256(setName, "gosike-basis/"+tag+"#"+attempt).
func candidateX(mod *field.Modulus, setName, tag string, attempt int) (field.Elt2, bool) {
	buf := make([]byte, 2*mod.ByteLen())
	kdf.Sum(buf, []byte(setName), []byte(fmt.Sprintf("gosike-basis/%s#%d", tag, attempt)))
	x, err := mod.Elt2FromBytes(maskToField(buf, mod))
	if err != nil {
		return field.Elt2{}, false
	}
	return x, true
}

// maskToField clears the top two bits of each half of buf, without
// disturbing the overall byte length FromBytes expects. A half can
// still encode a value >= p; candidateX rejects those candidates.
func maskToField(buf []byte, mod *field.Modulus) []byte {
	half := mod.ByteLen()
	clearTopBits(buf[:half], mod)
	clearTopBits(buf[half:], mod)
	return buf
}

func clearTopBits(b []byte, mod *field.Modulus) {
	// A cheap, allocation-free mask rather than a reduction: it only
	// shrinks the range, so the result is not guaranteed to be below p.
	b[0] &= 0x3f
}

// affinePoint is a Weierstrass-form affine point (x, y) on a
// Montgomery curve y^2 = x^3 + A*x^2 + x, or the point at infinity.
// Full affine arithmetic (rather than the x-only Kummer-line formulas
// in package curve) is needed here, once, to recover y-coordinates and
// compute genuine point subtraction when deriving a torsion basis;
// everywhere else in this module points are x-only.
type affinePoint struct {
	x, y field.Elt2
	inf  bool
}

// affineDouble computes 2*p using the standard short-Weierstrass-style
// tangent-line doubling formula specialized to y^2 = x^3+A*x^2+x.
func affineDouble(p affinePoint, a field.Elt2) affinePoint {
	if p.inf || p.y.IsZero() {
		return affinePoint{inf: true}
	}
	m := p.x.A.Modulus()
	two := field.Elt2{A: m.FromUint64(2), B: m.Zero()}
	three := field.Elt2{A: m.FromUint64(3), B: m.Zero()}

	num := three.Mul(p.x.Mul(p.x)).Add(two.Mul(a).Mul(p.x)).Add(m.One2())
	denom := two.Mul(p.y)
	denomInv, err := denom.Inv()
	if err != nil {
		return affinePoint{inf: true}
	}
	lambda := num.Mul(denomInv)

	xr := lambda.Mul(lambda).Sub(a).Sub(two.Mul(p.x))
	yr := lambda.Mul(p.x.Sub(xr)).Sub(p.y)
	return affinePoint{x: xr, y: yr}
}

// affineAdd computes p+q.
func affineAdd(p, q affinePoint, a field.Elt2) affinePoint {
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}
	if p.x.Equal(q.x) {
		if p.y.Equal(q.y.Neg()) {
			return affinePoint{inf: true}
		}
		return affineDouble(p, a)
	}
	denomInv, err := q.x.Sub(p.x).Inv()
	if err != nil {
		return affinePoint{inf: true}
	}
	lambda := q.y.Sub(p.y).Mul(denomInv)
	xr := lambda.Mul(lambda).Sub(a).Sub(p.x).Sub(q.x)
	yr := lambda.Mul(p.x.Sub(xr)).Sub(p.y)
	return affinePoint{x: xr, y: yr}
}

// affineNeg returns -p.
func affineNeg(p affinePoint) affinePoint {
	if p.inf {
		return p
	}
	return affinePoint{x: p.x, y: p.y.Neg()}
}

// affineScalarMul computes [k]p via right-to-left double-and-add. Only
// used at parameter-set build time, so clarity is preferred over a
// constant-time ladder.
func affineScalarMul(p affinePoint, k *big.Int, a field.Elt2) affinePoint {
	result := affinePoint{inf: true}
	base := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = affineAdd(result, base, a)
		}
		base = affineDouble(base, a)
	}
	return result
}

// hasExactOrder reports whether p has order exactly ell^e: [ell^(e-1)]p
// must not be the identity, and [ell^e]p must be.
func hasExactOrder(p affinePoint, ell int, e uint, a field.Elt2) bool {
	if p.inf || e == 0 {
		return false
	}
	half := new(big.Int).Exp(big.NewInt(int64(ell)), big.NewInt(int64(e-1)), nil)
	mid := affineScalarMul(p, half, a)
	if mid.inf {
		return false
	}
	full := affineScalarMul(mid, big.NewInt(int64(ell)), a)
	return full.inf
}
