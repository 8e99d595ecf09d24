package field

import (
	"io"

	"github.com/rust-crypto-labs/gosike/internal/sikeerr"
)

// Elt2 is an element a + b*i of F_p^2, with i^2 = -1. This is valid
// because every SIKE prime satisfies p = 3 (mod 4).
type Elt2 struct {
	A, B Elt
}

// Zero2 returns the additive identity of F_p^2.
func (m *Modulus) Zero2() Elt2 { return Elt2{A: m.Zero(), B: m.Zero()} }

// One2 returns the multiplicative identity of F_p^2.
func (m *Modulus) One2() Elt2 { return Elt2{A: m.One(), B: m.Zero()} }

// Elt2FromBytes decodes the concatenation a || b of two fixed-length
// F_p encodings into an F_p^2 element.
func (m *Modulus) Elt2FromBytes(b []byte) (Elt2, error) {
	if len(b) != 2*m.byteLen {
		return Elt2{}, sikeerr.NewEncodingError("wrong byte length for Fp2 element")
	}
	a, err := m.FromBytes(b[:m.byteLen])
	if err != nil {
		return Elt2{}, err
	}
	c, err := m.FromBytes(b[m.byteLen:])
	if err != nil {
		return Elt2{}, err
	}
	return Elt2{A: a, B: c}, nil
}

// Random2 draws an independently random A and B component.
func (m *Modulus) Random2(rng io.Reader) (Elt2, error) {
	a, err := m.Random(rng)
	if err != nil {
		return Elt2{}, err
	}
	b, err := m.Random(rng)
	if err != nil {
		return Elt2{}, err
	}
	return Elt2{A: a, B: b}, nil
}

// IsZero reports whether z is the zero element of F_p^2.
func (z Elt2) IsZero() bool { return z.A.IsZero() && z.B.IsZero() }

// Equal reports whether z and w represent the same F_p^2 element.
func (z Elt2) Equal(w Elt2) bool { return z.A.Equal(w.A) && z.B.Equal(w.B) }

// Add returns z + w, componentwise.
func (z Elt2) Add(w Elt2) Elt2 { return Elt2{A: z.A.Add(w.A), B: z.B.Add(w.B)} }

// Sub returns z - w, componentwise.
func (z Elt2) Sub(w Elt2) Elt2 { return Elt2{A: z.A.Sub(w.A), B: z.B.Sub(w.B)} }

// Neg returns -z.
func (z Elt2) Neg() Elt2 { return Elt2{A: z.A.Neg(), B: z.B.Neg()} }

// Conjugate returns a - b*i for z = a + b*i.
func (z Elt2) Conjugate() Elt2 { return Elt2{A: z.A, B: z.B.Neg()} }

// Mul computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i using the Karatsuba
// trick: ad+bc = (b-a)(c-d) + ac + bd, for 3 underlying Fp
// multiplications instead of 4. Grounded on shirinebadi-bssl/arith.go
// mul().
func (z Elt2) Mul(w Elt2) Elt2 {
	a, b := z.A, z.B
	c, d := w.A, w.B

	ac := a.Mul(c)
	bd := b.Mul(d)
	bMinusA := b.Sub(a)
	cMinusD := c.Sub(d)

	adPlusBc := bMinusA.Mul(cMinusD).Add(ac).Add(bd)
	acMinusBd := ac.Sub(bd)

	return Elt2{A: acMinusBd, B: adPlusBc}
}

// Sqr computes (a+bi)^2 = (a+b)(a-b) + 2abi.
func (z Elt2) Sqr() Elt2 {
	a, b := z.A, z.B
	aPlusB := a.Add(b)
	aMinusB := a.Sub(b)
	twoAB := a.Add(a).Mul(b)
	return Elt2{A: aPlusB.Mul(aMinusB), B: twoAB}
}

// Inv computes 1/(a+bi) = (a-bi)/(a^2+b^2).
func (z Elt2) Inv() (Elt2, error) {
	a, b := z.A, z.B
	denom := a.Sqr().Add(b.Sqr())
	denomInv, err := denom.Inv()
	if err != nil {
		return Elt2{}, err
	}
	return Elt2{A: a.Mul(denomInv), B: b.Neg().Mul(denomInv)}, nil
}

// Sqrt returns w such that w^2 = z, via the complex method (Scott):
// F_p^2 has order p^2-1, so the F_p square-root exponent (p+1)/4 does
// not apply to z directly. For z = a+bi with b != 0, a root w = x0+x1*i
// must satisfy x0^2-x1^2 = a and 2*x0*x1 = b. Since N(w) = x0^2+x1^2
// equals a square root alpha of N(z) = a^2+b^2, x0^2 is one of
// (a+alpha)/2 or (a-alpha)/2 — exactly one of which is an F_p square,
// since their product is -(b/2)^2 and -1 is a non-residue mod p.
// Solving that one for x0 via the F_p Sqrt above, then x1 = b/(2*x0),
// gives the root. Fails with an ArithmeticError{NotASquare} if z has
// no square root in F_p^2.
func (z Elt2) Sqrt() (Elt2, error) {
	m := z.A.Modulus()
	if z.IsZero() {
		return m.Zero2(), nil
	}
	a, b := z.A, z.B

	if b.IsZero() {
		if a.IsSquare() {
			r, _ := a.Sqrt()
			return Elt2{A: r, B: m.Zero()}, nil
		}
		// p = 3 (mod 4) makes -1 a non-residue, so a non-residue a has
		// a residue -a; i*sqrt(-a) is then the root of the negative
		// real a.
		neg := a.Neg()
		if !neg.IsSquare() {
			return Elt2{}, sikeerr.NewArithmeticError(sikeerr.NotASquare)
		}
		r, _ := neg.Sqrt()
		return Elt2{A: m.Zero(), B: r}, nil
	}

	norm := a.Sqr().Add(b.Sqr())
	if !norm.IsSquare() {
		return Elt2{}, sikeerr.NewArithmeticError(sikeerr.NotASquare)
	}
	alpha, _ := norm.Sqrt()

	two := m.FromUint64(2)
	twoInv, err := two.Inv()
	if err != nil {
		return Elt2{}, err
	}

	delta := a.Add(alpha).Mul(twoInv)
	if !delta.IsSquare() {
		delta = a.Sub(alpha).Mul(twoInv)
		if !delta.IsSquare() {
			return Elt2{}, sikeerr.NewArithmeticError(sikeerr.NotASquare)
		}
	}

	x0, _ := delta.Sqrt()
	if x0.IsZero() {
		return Elt2{}, sikeerr.NewArithmeticError(sikeerr.NotASquare)
	}
	x0DblInv, err := x0.Add(x0).Inv()
	if err != nil {
		return Elt2{}, err
	}
	x1 := b.Mul(x0DblInv)

	candidate := Elt2{A: x0, B: x1}
	if !candidate.Sqr().Equal(z) {
		return Elt2{}, sikeerr.NewArithmeticError(sikeerr.NotASquare)
	}
	return candidate, nil
}

// Bytes encodes z as the concatenation A || B of two fixed-length F_p
// encodings.
func (z Elt2) Bytes() []byte {
	return append(z.A.Bytes(), z.B.Bytes()...)
}
