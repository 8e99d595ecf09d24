package field

import (
	"io"
	"math/big"

	"github.com/rust-crypto-labs/gosike/internal/sikeerr"
)

// Elt is an element of F_p, always stored fully reduced in [0, p).
// Values are treated as immutable: every operation returns a new Elt
// rather than mutating the receiver.
type Elt struct {
	mod *Modulus
	n   *big.Int
}

// Zero returns the additive identity of m.
func (m *Modulus) Zero() Elt { return Elt{mod: m, n: new(big.Int)} }

// One returns the multiplicative identity of m.
func (m *Modulus) One() Elt { return Elt{mod: m, n: big.NewInt(1)} }

// Elt builds a field element from an arbitrary *big.Int, reducing it
// modulo p. v is not mutated.
func (m *Modulus) Elt(v *big.Int) Elt {
	n := new(big.Int).Mod(v, m.p)
	return Elt{mod: m, n: n}
}

// FromUint64 builds a field element from a small unsigned integer.
func (m *Modulus) FromUint64(v uint64) Elt {
	return Elt{mod: m, n: new(big.Int).Mod(new(big.Int).SetUint64(v), m.p)}
}

// FromBytes decodes a big-endian, fixed-length encoding of an F_p
// element. It fails with an EncodingError if the value is >= p or the
// length does not match m.ByteLen().
func (m *Modulus) FromBytes(b []byte) (Elt, error) {
	if len(b) != m.byteLen {
		return Elt{}, sikeerr.NewEncodingError("wrong byte length for Fp element")
	}
	n := new(big.Int).SetBytes(b)
	if n.Cmp(m.p) >= 0 {
		return Elt{}, sikeerr.NewEncodingError("Fp element out of range")
	}
	return Elt{mod: m, n: n}, nil
}

// Random draws ceil(log2 p) + 64 bits of entropy from rng and reduces
// the result modulo p, as spec.md section 4.1 prescribes.
func (m *Modulus) Random(rng io.Reader) (Elt, error) {
	nbytes := (m.BitLen()+64)/8 + 1
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return Elt{}, err
	}
	n := new(big.Int).SetBytes(buf)
	n.Mod(n, m.p)
	return Elt{mod: m, n: n}, nil
}

// Modulus returns the field element's modulus.
func (a Elt) Modulus() *Modulus { return a.mod }

// IsZero reports whether a is the zero element.
func (a Elt) IsZero() bool { return a.n.Sign() == 0 }

// Equal reports whether a and b represent the same field element.
func (a Elt) Equal(b Elt) bool { return a.n.Cmp(b.n) == 0 }

// Add returns a + b mod p.
func (a Elt) Add(b Elt) Elt {
	n := new(big.Int).Add(a.n, b.n)
	n.Mod(n, a.mod.p)
	return Elt{mod: a.mod, n: n}
}

// Sub returns a - b mod p.
func (a Elt) Sub(b Elt) Elt {
	n := new(big.Int).Sub(a.n, b.n)
	n.Mod(n, a.mod.p)
	return Elt{mod: a.mod, n: n}
}

// Neg returns -a mod p.
func (a Elt) Neg() Elt {
	n := new(big.Int).Neg(a.n)
	n.Mod(n, a.mod.p)
	return Elt{mod: a.mod, n: n}
}

// Mul returns a * b mod p.
func (a Elt) Mul(b Elt) Elt {
	n := new(big.Int).Mul(a.n, b.n)
	n.Mod(n, a.mod.p)
	return Elt{mod: a.mod, n: n}
}

// Sqr returns a^2 mod p.
func (a Elt) Sqr() Elt { return a.Mul(a) }

// Inv returns a^-1 mod p via Fermat's little theorem (a^(p-2)). It
// fails with an ArithmeticError{DivisionByZero} if a is zero.
func (a Elt) Inv() (Elt, error) {
	if a.IsZero() {
		return Elt{}, sikeerr.NewArithmeticError(sikeerr.DivisionByZero)
	}
	exp := new(big.Int).Sub(a.mod.p, big.NewInt(2))
	n := new(big.Int).Exp(a.n, exp, a.mod.p)
	return Elt{mod: a.mod, n: n}, nil
}

// Pow returns a^e mod p for a non-negative exponent e.
func (a Elt) Pow(e *big.Int) Elt {
	n := new(big.Int).Exp(a.n, e, a.mod.p)
	return Elt{mod: a.mod, n: n}
}

// IsSquare reports whether a is a quadratic residue mod p, via Euler's
// criterion (a^((p-1)/2) == 1). Zero counts as a square.
func (a Elt) IsSquare() bool {
	if a.IsZero() {
		return true
	}
	exp := new(big.Int).Rsh(new(big.Int).Sub(a.mod.p, big.NewInt(1)), 1)
	return a.Pow(exp).Equal(a.mod.One())
}

// Sqrt returns a square root of a in F_p, using the p = 3 (mod 4)
// formula a^((p+1)/4) (every SIKE prime 2^e2*3^e3-1 with e2>=2 is of
// this shape). Fails with an ArithmeticError{NotASquare} if a has no
// square root.
func (a Elt) Sqrt() (Elt, error) {
	if a.IsZero() {
		return a.mod.Zero(), nil
	}
	if !a.IsSquare() {
		return Elt{}, sikeerr.NewArithmeticError(sikeerr.NotASquare)
	}
	exp := new(big.Int).Rsh(new(big.Int).Add(a.mod.p, big.NewInt(1)), 2)
	return a.Pow(exp), nil
}

// Bytes encodes a in fixed-length big-endian form.
func (a Elt) Bytes() []byte {
	out := make([]byte, a.mod.byteLen)
	b := a.n.Bytes()
	copy(out[len(out)-len(b):], b)
	return out
}

// BigInt returns a copy of the element's value as a *big.Int in [0, p).
func (a Elt) BigInt() *big.Int { return new(big.Int).Set(a.n) }
