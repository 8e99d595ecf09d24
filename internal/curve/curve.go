// Package curve implements arithmetic on supersingular Montgomery
// curves y^2 = x^3 + (A/C)x^2 + x in projective coefficient form
// (A:C), and on their Kummer-line points (X:Z) with x = X/Z.
//
// All formulas here are grounded on the standard Costello-Longa-Naehrig
// x-only arithmetic used throughout the SIDH/SIKE reference family
// (shirinebadi-bssl/arith.go and the CIRCL sidh lineage retrieved into
// other_examples/).
package curve

import (
	"math/big"

	"github.com/rust-crypto-labs/gosike/internal/field"
	"github.com/rust-crypto-labs/gosike/internal/sikeerr"
)

// Coeff is a Montgomery curve in projective coefficient form (A:C).
type Coeff struct {
	A, C field.Elt2
}

// Point is a Kummer-line point (X:Z); Z=0 encodes the point at infinity.
type Point struct {
	X, Z field.Elt2
}

// A24 returns the precomputed doubling coefficients (A+2C, 4C) used by
// XDbl and the degree-4 isogeny formulas.
func (c Coeff) A24() (a24plus, c24 field.Elt2) {
	two := c.C.Add(c.C)
	a24plus = c.A.Add(two)
	c24 = two.Add(two)
	return
}

// XDbl computes 2*P on the curve with coefficients c.
func XDbl(p Point, c Coeff) Point {
	a24plus, c24 := c.A24()
	t0 := p.X.Sub(p.Z)
	t1 := p.X.Add(p.Z)
	t0 = t0.Sqr()
	t1 = t1.Sqr()
	zPrime := c24.Mul(t0)
	xPrime := zPrime.Mul(t1)
	t1 = t1.Sub(t0)
	t0 = a24plus.Mul(t1)
	zPrime = zPrime.Add(t0)
	zPrime = zPrime.Mul(t1)
	return Point{X: xPrime, Z: zPrime}
}

// XDblE computes 2^e * P.
func XDblE(p Point, c Coeff, e uint) Point {
	r := p
	for i := uint(0); i < e; i++ {
		r = XDbl(r, c)
	}
	return r
}

// XTpl computes 3*P on the curve with coefficients c.
func XTpl(p Point, c Coeff) Point {
	a24plus, c24 := c.A24()
	// a24plus, c24 here double as the (A+2C, 4C) pair; the tripling
	// formula consumes (A+2C)/(4C) through one extra subtraction step
	// to reach the (A-2C) quantity it needs alongside it.
	a24minus := a24plus.Sub(c24)

	t0 := p.X.Sub(p.Z)
	t2 := t0.Sqr()
	t1 := p.X.Add(p.Z)
	t3 := t1.Sqr()
	t4 := t1.Add(t0)
	t0 = t1.Sub(t0)
	t1 = t4.Sqr()
	t1 = t1.Sub(t3)
	t1 = t1.Sub(t2)
	t5 := t3.Mul(a24plus)
	t3 = t5.Mul(t3)
	t6 := t2.Mul(a24minus)
	t2 = t2.Mul(t6)
	t3 = t2.Sub(t3)
	t2 = t5.Sub(t6)
	t1 = t1.Mul(t2)
	t2 = t3.Add(t1)
	t2 = t2.Sqr()
	xPrime := t2.Mul(t4)
	t1 = t3.Sub(t1)
	t1 = t1.Sqr()
	zPrime := t1.Mul(t0)
	return Point{X: xPrime, Z: zPrime}
}

// XTplE computes 3^e * P.
func XTplE(p Point, c Coeff, e uint) Point {
	r := p
	for i := uint(0); i < e; i++ {
		r = XTpl(r, c)
	}
	return r
}

// xAdd computes P+Q given the difference xPmQ = P-Q as a Kummer point
// (X:Z), via the standard Montgomery differential-addition formula.
func xAdd(xP, xQ Point, xPmQ Point) Point {
	v0 := xP.X.Add(xP.Z)
	v1 := xQ.X.Sub(xQ.Z)
	v1 = v1.Mul(v0)
	v0 = xP.X.Sub(xP.Z)
	v2 := xQ.X.Add(xQ.Z)
	v2 = v2.Mul(v0)
	v3 := v1.Add(v2)
	v3 = v3.Sqr()
	v4 := v1.Sub(v2)
	v4 = v4.Sqr()
	xPrime := xPmQ.Z.Mul(v3)
	zPrime := xPmQ.X.Mul(v4)
	return Point{X: xPrime, Z: zPrime}
}

// XDblAdd simultaneously computes 2*P and P+Q, given the affine
// x-coordinate xPmQ = x(P-Q) of the difference.
func XDblAdd(p, q Point, xPmQ field.Elt2, c Coeff) (dbl, add Point) {
	return XDbl(p, c), xAdd(p, q, Point{X: xPmQ, Z: xPmQ.A.Modulus().One2()})
}

// Ladder3Pt computes P + [m]Q using the three-point ladder over the low
// bitLen bits of m, least significant first: R0 = [2^i]Q, R1 = P plus
// the bits of m seen so far times Q, and R2 = R0-R1, seeded from
// xPmQ = x(P-Q); each step adds R0 to R1 or R2 and then doubles R0.
func Ladder3Pt(m *big.Int, bitLen int, xP, xQ Point, xPmQ field.Elt2, c Coeff) Point {
	r0, r1, r2 := xQ, xP, Point{X: xPmQ, Z: xPmQ.A.Modulus().One2()}
	for i := 0; i < bitLen; i++ {
		if m.Bit(i) == 0 {
			r2 = xAdd(r0, r2, r1)
		} else {
			r1 = xAdd(r0, r1, r2)
		}
		r0 = XDbl(r0, c)
	}
	return r1
}

// JInvariant returns the j-invariant of the curve with coefficients c:
// j = 256*(A^2-3C^2)^3 / (C^4*(A^2-4C^2)).
func JInvariant(c Coeff) (field.Elt2, error) {
	one := c.A.A.Modulus()
	three := one.FromUint64(3)
	four := one.FromUint64(4)
	twoFiveSix := one.FromUint64(256)

	a2 := c.A.Sqr()
	c2 := c.C.Sqr()
	threeC2 := field.Elt2{A: three, B: one.Zero()}.Mul(c2)
	fourC2 := field.Elt2{A: four, B: one.Zero()}.Mul(c2)

	numBase := a2.Sub(threeC2)
	num := numBase.Sqr().Mul(numBase)
	num = field.Elt2{A: twoFiveSix, B: one.Zero()}.Mul(num)

	c4 := c2.Sqr()
	denomBase := a2.Sub(fourC2)
	denom := c4.Mul(denomBase)

	if denom.IsZero() {
		return field.Elt2{}, sikeerr.NewArithmeticError(sikeerr.NotOnCurve)
	}
	denomInv, err := denom.Inv()
	if err != nil {
		return field.Elt2{}, sikeerr.NewArithmeticError(sikeerr.NotOnCurve)
	}
	return num.Mul(denomInv), nil
}

// RecoverCoordinateA recovers the Montgomery curve (A:1) on which
// P, Q and Q-P, given only as x-coordinates, lie. Used to rebuild the
// image curve from a public key, which transmits only three pushed
// x-coordinates rather than the curve coefficients themselves.
func RecoverCoordinateA(xP, xQ, xQmP field.Elt2) Coeff {
	m := xP.A.Modulus()
	one := m.One2()
	four := field.Elt2{A: m.FromUint64(4), B: m.Zero()}

	t0 := one.Sub(xP.Mul(xQ)).Sub(xP.Mul(xQmP)).Sub(xQ.Mul(xQmP))
	t0 = t0.Sqr()

	denom := xP.Mul(xQ).Mul(xQmP).Mul(four)
	denomInv, err := denom.Inv()
	if err != nil {
		// Degenerate input (one of the three x-coordinates is zero);
		// the caller fed a malformed public key. Return the starting
		// curve rather than propagating a panic.
		return Coeff{A: m.Zero2(), C: one}
	}

	a := t0.Mul(denomInv).Sub(xP).Sub(xQ).Sub(xQmP)
	return Coeff{A: a, C: one}
}
