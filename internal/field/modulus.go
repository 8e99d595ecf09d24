// Package field implements arithmetic in the prime field F_p and its
// quadratic extension F_p^2 = F_p[i]/(i^2+1), for the SIKE primes
// p = 2^e2 * 3^e3 - 1.
//
// Elements are backed by math/big rather than the fixed-width limb
// arrays a constant-time implementation would use: the design this
// package implements explicitly waives constant-time guarantees and
// calls for an arbitrary-precision backing (see spec.md section 2.1),
// which lets one implementation serve all four SIKE parameter sets
// instead of one compiled-in prime.
package field

import "math/big"

// Modulus is an immutable, process-wide prime p = 2^e2 * 3^e3 - 1.
// Built once per parameter set and shared by every Elt constructed
// against it.
type Modulus struct {
	p       *big.Int
	e2, e3  uint
	byteLen int
}

// NewModulus builds the modulus p = 2^e2 * 3^e3 - 1.
func NewModulus(e2, e3 uint) *Modulus {
	p := new(big.Int).Exp(big.NewInt(2), new(big.Int).SetUint64(uint64(e2)), nil)
	t := new(big.Int).Exp(big.NewInt(3), new(big.Int).SetUint64(uint64(e3)), nil)
	p.Mul(p, t)
	p.Sub(p, big.NewInt(1))
	return &Modulus{
		p:       p,
		e2:      e2,
		e3:      e3,
		byteLen: (p.BitLen() + 7) / 8,
	}
}

// P returns the prime itself. Callers must not mutate the result.
func (m *Modulus) P() *big.Int { return m.p }

// E2 returns the exponent of 2 in p+1.
func (m *Modulus) E2() uint { return m.e2 }

// E3 returns the exponent of 3 in p+1.
func (m *Modulus) E3() uint { return m.e3 }

// ByteLen is the fixed big-endian encoding length of an F_p element,
// ceil(log2(p)/8).
func (m *Modulus) ByteLen() int { return m.byteLen }

// BitLen is the bit length of p.
func (m *Modulus) BitLen() int { return m.p.BitLen() }
