package isogeny

import (
	"github.com/rust-crypto-labs/gosike/internal/curve"
	"github.com/rust-crypto-labs/gosike/internal/field"
)

// Isogeny2 is a degree-2 isogeny derived from an order-2 kernel point.
// Isogeny4 is built from two of these, and sidh uses one more for the
// final leaf of a 2^e2 isogeny chain when e2 is odd.
type Isogeny2 struct {
	x2, z2 field.Elt2
}

// NewIsogeny2 derives the degree-2 isogeny with kernel K=(X2:Z2) and
// returns it together with the image curve (A':C') = (2(Z2^2-2X2^2) :
// Z2^2). The formulas do not cover the kernel (0:1).
func NewIsogeny2(k curve.Point) (Isogeny2, curve.Coeff) {
	x2sq := k.X.Sqr()
	z2sq := k.Z.Sqr()
	cImg := z2sq
	aImg := z2sq.Sub(x2sq.Add(x2sq))
	aImg = aImg.Add(aImg)
	return Isogeny2{x2: k.X, z2: k.Z}, curve.Coeff{A: aImg, C: cImg}
}

// Eval returns the image of q under the isogeny.
func (phi Isogeny2) Eval(q curve.Point) curve.Point {
	t0 := phi.x2.Mul(q.X).Sub(phi.z2.Mul(q.Z))
	t1 := phi.z2.Mul(q.X).Sub(phi.x2.Mul(q.Z))
	return curve.Point{X: q.X.Mul(t0), Z: q.Z.Mul(t1)}
}
