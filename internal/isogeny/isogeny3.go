package isogeny

import (
	"github.com/rust-crypto-labs/gosike/internal/curve"
	"github.com/rust-crypto-labs/gosike/internal/field"
)

// Isogeny3 is a degree-3 isogeny derived from an order-3 kernel point.
type Isogeny3 struct {
	x3, z3 field.Elt2
}

// NewIsogeny3 derives the degree-3 isogeny with kernel K=(X3:Z3) and
// returns it together with the image curve
// (A':C') = (Z3^4 + 18*X3^2*Z3^2 - 27*X3^4 : 4*X3*Z3^3).
func NewIsogeny3(k curve.Point) (Isogeny3, curve.Coeff) {
	m := k.X.A.Modulus()
	c18 := field.Elt2{A: m.FromUint64(18), B: m.Zero()}
	c27 := field.Elt2{A: m.FromUint64(27), B: m.Zero()}
	xx := k.X.Sqr()
	zz := k.Z.Sqr()
	aImg := zz.Sqr().Add(c18.Mul(xx).Mul(zz)).Sub(c27.Mul(xx.Sqr()))
	cImg := k.X.Mul(k.Z).Mul(zz)
	cImg = cImg.Add(cImg)
	cImg = cImg.Add(cImg)
	return Isogeny3{x3: k.X, z3: k.Z}, curve.Coeff{A: aImg, C: cImg}
}

// Eval returns the image of q under the isogeny.
func (phi Isogeny3) Eval(q curve.Point) curve.Point {
	t0 := phi.x3.Mul(q.X).Sub(phi.z3.Mul(q.Z))
	t1 := phi.x3.Mul(q.Z).Sub(phi.z3.Mul(q.X))
	t0 = t0.Sqr()
	t1 = t1.Sqr()
	return curve.Point{X: q.X.Mul(t0), Z: q.Z.Mul(t1)}
}
