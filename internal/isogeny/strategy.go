package isogeny

import (
	"github.com/rust-crypto-labs/gosike/internal/curve"
	"github.com/rust-crypto-labs/gosike/internal/log"
)

// stepper knows how to multiply a point by the composite isogeny's
// elementary degree raised to the k-th power (2^(2k) for the degree-4
// walker, 3^k for the degree-3 walker), and how to derive + evaluate
// one elementary-degree isogeny step from a kernel point of the right
// order.
type stepper struct {
	mulByEllK func(p curve.Point, c curve.Coeff, k int) curve.Point
	newIso    func(kernel curve.Point, c curve.Coeff) (evaluator, curve.Coeff)
}

type evaluator interface {
	Eval(curve.Point) curve.Point
}

// walk is the generalization of shirinebadi-bssl/sike.go's four
// near-identical traverseTree{PublicKey,SharedKey}{A,B} functions into
// one: it drives the optimal-strategy tree traversal of spec.md
// section 4.5 for an arbitrary auxiliary-point list (empty for shared-
// secret derivation, non-empty for public-key generation), so the same
// walker serves both call sites.
func walk(st stepper, strategy []int, kernel curve.Point, c0 curve.Coeff, aux []curve.Point) (curve.Coeff, []curve.Point) {
	type frame struct {
		p curve.Point
		i int
	}

	c := c0
	xR := kernel
	stratSz := len(strategy)
	stack := make([]frame, 0, stratSz+1)
	sidx := 0
	i := 0

	for j := 1; j <= stratSz; j++ {
		for i <= stratSz-j {
			stack = append(stack, frame{p: xR, i: i})
			k := strategy[sidx]
			sidx++
			xR = st.mulByEllK(xR, c, k)
			i += k
		}

		phi, cPrime := st.newIso(xR, c)
		c = cPrime
		for k := range stack {
			stack[k].p = phi.Eval(stack[k].p)
		}
		for k := range aux {
			aux[k] = phi.Eval(aux[k])
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		xR, i = top.p, top.i
	}

	phi, cPrime := st.newIso(xR, c)
	c = cPrime
	for k := range aux {
		aux[k] = phi.Eval(aux[k])
	}
	return c, aux
}

// WalkDegree4 composes a 2^(2*n) isogeny, where n = len(strategy)+1,
// by walking n degree-4 leaves according to strategy. aux may be empty
// (shared-secret derivation) or hold the points to push through
// (public-key generation).
//
// When the target exponent e2 is odd, the caller is responsible for
// running this over the even part 2^(e2-1) with kernel [2]R and the
// original kernel R included as the first element of aux, then using
// the returned aux[0]
// (the image of R, now of order exactly 2) as the kernel of one final
// NewIsogeny2 step — matching spec.md section 4.5's tie-break for odd
// e2. Folding that degenerate case into this function would otherwise
// force every caller through a special aux[0]-is-the-kernel
// convention regardless of parity.
func WalkDegree4(strategy []int, kernel curve.Point, c0 curve.Coeff, aux []curve.Point) (curve.Coeff, []curve.Point) {
	log.L.Debug().Int("leaves", len(strategy)+1).Msg("walking degree-4 isogeny tree")

	st := stepper{
		mulByEllK: func(p curve.Point, c curve.Coeff, k int) curve.Point {
			return curve.XDblE(p, c, uint(2*k))
		},
		newIso: func(kernel curve.Point, c curve.Coeff) (evaluator, curve.Coeff) {
			return NewIsogeny4(kernel, c)
		},
	}

	return walk(st, strategy, kernel, c0, aux)
}

// WalkDegree3 composes the 3^e3 isogeny by walking e3 degree-3 leaves
// according to strategy.
func WalkDegree3(strategy []int, kernel curve.Point, c0 curve.Coeff, aux []curve.Point) (curve.Coeff, []curve.Point) {
	log.L.Debug().Int("leaves", len(strategy)+1).Msg("walking degree-3 isogeny tree")

	st := stepper{
		mulByEllK: func(p curve.Point, c curve.Coeff, k int) curve.Point {
			return curve.XTplE(p, c, uint(k))
		},
		newIso: func(kernel curve.Point, c curve.Coeff) (evaluator, curve.Coeff) {
			iso, cPrime := NewIsogeny3(kernel)
			return iso, cPrime
		},
	}

	return walk(st, strategy, kernel, c0, aux)
}
