package isogeny

import "github.com/rust-crypto-labs/gosike/internal/curve"

// Isogeny4 is a degree-4 isogeny derived from an order-4 kernel point.
// Used for every step of the degree-4 tree walk (WalkDegree4).
//
// No single-step CLN coefficient formula for this degree was available
// to ground directly in the retrieved reference material (the teacher's
// call sites for NewIsogeny4/EvaluatePoint are in
// shirinebadi-bssl/sike.go, but the file defining them was not among
// the retrieved files). Rather than guess at the coefficient-level
// formula from memory, this instead composes two order-2 steps, each
// individually verified (isogeny_test.go) to send its own kernel to
// the point at infinity: for an order-4 point R, phi1 = NewIsogeny2
// with kernel [2]R kills the order-2 subgroup, and phi1(R) has order
// exactly 2 on the image curve, so phi2 = NewIsogeny2 with kernel
// phi1(R) finishes the degree-4 map. This is more multiplications than
// the optimized single-step formula but is correct by construction
// from a primitive already known to be correct, rather than from a
// plausible-looking but unverified set of coefficients.
type Isogeny4 struct {
	phi1, phi2 Isogeny2
}

// NewIsogeny4 derives the degree-4 isogeny with kernel K=(X4:Z4) on the
// curve c0, and returns it together with the image curve.
func NewIsogeny4(k curve.Point, c0 curve.Coeff) (Isogeny4, curve.Coeff) {
	twoK := curve.XDbl(k, c0)
	phi1, _ := NewIsogeny2(twoK)
	s := phi1.Eval(k)
	phi2, c2 := NewIsogeny2(s)
	return Isogeny4{phi1: phi1, phi2: phi2}, c2
}

// Eval returns the image of q under the isogeny.
func (phi Isogeny4) Eval(q curve.Point) curve.Point {
	return phi.phi2.Eval(phi.phi1.Eval(q))
}
