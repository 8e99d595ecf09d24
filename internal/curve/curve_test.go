package curve

import (
	"crypto/rand"
	"testing"

	"github.com/rust-crypto-labs/gosike/internal/field"
	"github.com/stretchr/testify/require"
)

func testModulus() *field.Modulus {
	return field.NewModulus(3, 1) // toy prime p=23, shape-compatible with SIKE primes
}

func TestJInvariantInvariantUnderScaling(t *testing.T) {
	m := testModulus()
	a, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	c, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	if c.IsZero() {
		c = m.One2()
	}
	k, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	if k.IsZero() {
		k = m.One2()
	}

	c1 := Coeff{A: a, C: c}
	c2 := Coeff{A: a.Mul(k), C: c.Mul(k)}

	j1, err1 := JInvariant(c1)
	j2, err2 := JInvariant(c2)

	if err1 != nil {
		require.Error(t, err2)
		return
	}
	require.NoError(t, err2)
	require.True(t, j1.Equal(j2))
}

func TestXDblOfPointAtInfinityStaysAtInfinity(t *testing.T) {
	m := testModulus()
	a, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	c := Coeff{A: a, C: m.One2()}

	p := Point{X: m.One2(), Z: m.Zero2()}
	p2 := XDbl(p, c)
	require.True(t, p2.Z.IsZero())
}

func TestXDblEMatchesRepeatedXDbl(t *testing.T) {
	m := testModulus()
	a, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	c := Coeff{A: a, C: m.One2()}
	x, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	p := Point{X: x, Z: m.One2()}

	want := XDbl(XDbl(XDbl(p, c), c), c)
	got := XDblE(p, c, 3)
	require.True(t, want.X.Equal(got.X))
	require.True(t, want.Z.Equal(got.Z))
}
