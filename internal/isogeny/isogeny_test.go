package isogeny

import (
	"crypto/rand"
	"testing"

	"github.com/rust-crypto-labs/gosike/internal/curve"
	"github.com/rust-crypto-labs/gosike/internal/field"
	"github.com/stretchr/testify/require"
)

func testModulus() *field.Modulus {
	return field.NewModulus(3, 1)
}

func randPoint(t *testing.T, m *field.Modulus) curve.Point {
	x, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	return curve.Point{X: x, Z: m.One2()}
}

func TestIsogeny2KernelMapsToInfinity(t *testing.T) {
	m := testModulus()
	k := randPoint(t, m)
	phi, _ := NewIsogeny2(k)
	img := phi.Eval(k)
	require.True(t, img.Z.IsZero())
}

func TestIsogeny3KernelMapsToInfinity(t *testing.T) {
	m := testModulus()
	k := randPoint(t, m)
	phi, _ := NewIsogeny3(k)
	img := phi.Eval(k)
	require.True(t, img.Z.IsZero())
}

func TestIsogeny4KernelMapsToInfinity(t *testing.T) {
	m := testModulus()
	c0 := curve.Coeff{A: randPoint(t, m).X, C: m.One2()}
	k := randPoint(t, m)
	phi, _ := NewIsogeny4(k, c0)
	img := phi.Eval(k)
	require.True(t, img.Z.IsZero())
}

func TestWalkDegree3CurveIndependentOfAuxList(t *testing.T) {
	m := testModulus()
	c0 := curve.Coeff{A: randPoint(t, m).X, C: m.One2()}
	kernel := randPoint(t, m)
	strategy := []int{1, 1}

	p1, _ := m.Random2(rand.Reader)
	aux := []curve.Point{{X: p1, Z: m.One2()}}

	cWithout, _ := WalkDegree3(append([]int{}, strategy...), kernel, c0, nil)
	cWith, _ := WalkDegree3(append([]int{}, strategy...), kernel, c0, aux)

	require.True(t, cWithout.A.Equal(cWith.A))
	require.True(t, cWithout.C.Equal(cWith.C))
}
