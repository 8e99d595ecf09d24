package kem

import (
	"crypto/rand"
	"testing"

	"github.com/rust-crypto-labs/gosike/params"
	"github.com/stretchr/testify/require"
)

func testSet(t *testing.T) *params.Set {
	s, err := params.Get(params.P434)
	require.NoError(t, err)
	return s
}

func TestPKERoundTrip(t *testing.T) {
	set := testSet(t)
	pke := NewPKE(set)

	sk, pk, err := pke.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	msg := make([]byte, set.MsgLen)
	_, err = rand.Read(msg)
	require.NoError(t, err)

	ct, err := pke.Encrypt(rand.Reader, pk, msg)
	require.NoError(t, err)

	got, err := pke.Decrypt(sk, ct)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestKEMRoundTrip(t *testing.T) {
	set := testSet(t)
	k := New(set)

	sk, pk, err := k.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	ct, ss1, err := k.Encapsulate(rand.Reader, pk)
	require.NoError(t, err)

	ss2 := k.Decapsulate(sk, ct)
	require.Equal(t, ss1, ss2)
}

func TestKEMImplicitRejectionOnTamperedCiphertext(t *testing.T) {
	set := testSet(t)
	k := New(set)

	sk, pk, err := k.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	ct, ss1, err := k.Encapsulate(rand.Reader, pk)
	require.NoError(t, err)

	tampered := append([]byte{}, ct...)
	tampered[len(tampered)-1] ^= 0x01

	ss2 := k.Decapsulate(sk, tampered)
	require.NotEqual(t, ss1, ss2)
	require.Len(t, ss2, len(ss1))

	// Decapsulate must not error or panic on tampered input, and must
	// be deterministic for the same (sk, ciphertext) pair.
	ss3 := k.Decapsulate(sk, tampered)
	require.Equal(t, ss2, ss3)
}
