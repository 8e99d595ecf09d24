package field

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testModulus() *Modulus {
	// A small toy prime of the SIKE shape, p = 2^3 * 3^1 - 1 = 23,
	// which satisfies p = 3 (mod 4) just like the real parameter sets.
	return NewModulus(3, 1)
}

func TestModulusShape(t *testing.T) {
	m := testModulus()
	require.Equal(t, int64(23), m.P().Int64())
	require.Equal(t, 5, m.BitLen())
}

func TestFpFieldLaws(t *testing.T) {
	m := testModulus()
	x, err := m.Random(rand.Reader)
	require.NoError(t, err)
	y, err := m.Random(rand.Reader)
	require.NoError(t, err)
	z, err := m.Random(rand.Reader)
	require.NoError(t, err)

	require.True(t, x.Add(y).Add(z).Equal(x.Add(y.Add(z))))
	require.True(t, x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z))))

	if !x.IsZero() {
		inv, err := x.Inv()
		require.NoError(t, err)
		require.True(t, x.Mul(inv).Equal(m.One()))
	}
}

func TestFpInvZeroFails(t *testing.T) {
	m := testModulus()
	_, err := m.Zero().Inv()
	require.Error(t, err)
}

func TestFpBytesRoundTrip(t *testing.T) {
	m := testModulus()
	x, err := m.Random(rand.Reader)
	require.NoError(t, err)
	b := x.Bytes()
	require.Len(t, b, m.ByteLen())
	y, err := m.FromBytes(b)
	require.NoError(t, err)
	require.True(t, x.Equal(y))
}

func TestFpFromBytesRejectsValueAtOrAboveP(t *testing.T) {
	m := testModulus()
	b := m.p.Bytes()
	out := make([]byte, m.ByteLen())
	copy(out[len(out)-len(b):], b) // encodes exactly p
	_, err := m.FromBytes(out)
	require.Error(t, err)
}

func TestFp2FieldLaws(t *testing.T) {
	m := testModulus()
	x, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	y, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	z, err := m.Random2(rand.Reader)
	require.NoError(t, err)

	require.True(t, x.Add(y).Add(z).Equal(x.Add(y.Add(z))))
	require.True(t, x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z))))

	if !x.IsZero() {
		inv, err := x.Inv()
		require.NoError(t, err)
		require.True(t, x.Mul(inv).Equal(m.One2()))
	}
}

func TestFp2SqrOfSqrtRoundTrips(t *testing.T) {
	m := testModulus()
	for i := 0; i < 20; i++ {
		x, err := m.Random2(rand.Reader)
		require.NoError(t, err)
		sq := x.Sqr()
		root, err := sq.Sqrt()
		require.NoError(t, err, "sqrt of a known square must always succeed")
		require.True(t, root.Sqr().Equal(sq))
	}
}

// TestFp2SqrtKnownCounterexample pins the case that defeats the plain
// F_p exponent (p+1)/4 applied directly in F_p^2: with p=23,
// x=1+i has x^2=2i, a genuine square whose root the F_p2 Sqrt must
// recover.
func TestFp2SqrtKnownCounterexample(t *testing.T) {
	m := testModulus()
	x := Elt2{A: m.One(), B: m.One()}
	sq := x.Sqr()

	root, err := sq.Sqrt()
	require.NoError(t, err)
	require.True(t, root.Sqr().Equal(sq))
}

func TestFp2SqrtRejectsNonSquare(t *testing.T) {
	m := testModulus()
	squares := map[string]bool{}
	for a := uint64(0); a < 23; a++ {
		for b := uint64(0); b < 23; b++ {
			x := Elt2{A: m.FromUint64(a), B: m.FromUint64(b)}
			squares[string(x.Sqr().Bytes())] = true
		}
	}
	for a := uint64(0); a < 23; a++ {
		for b := uint64(0); b < 23; b++ {
			z := Elt2{A: m.FromUint64(a), B: m.FromUint64(b)}
			_, sqrtErr := z.Sqrt()
			isSquare := squares[string(z.Bytes())]
			require.Equal(t, isSquare, sqrtErr == nil)
		}
	}
}

func TestFp2Bytes(t *testing.T) {
	m := testModulus()
	x, err := m.Random2(rand.Reader)
	require.NoError(t, err)
	b := x.Bytes()
	require.Len(t, b, 2*m.ByteLen())
	y, err := m.Elt2FromBytes(b)
	require.NoError(t, err)
	require.True(t, x.Equal(y))
}
