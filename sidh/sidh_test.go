package sidh

import (
	"crypto/rand"
	"testing"

	"github.com/rust-crypto-labs/gosike/params"
	"github.com/stretchr/testify/require"
)

func TestSharedSecretAgreement(t *testing.T) {
	set, err := params.Get(params.P434)
	require.NoError(t, err)

	skA := NewPrivateKey(set, KeyVariantA)
	require.NoError(t, skA.Generate(rand.Reader))
	skB := NewPrivateKey(set, KeyVariantB)
	require.NoError(t, skB.Generate(rand.Reader))

	pkA, err := skA.GeneratePublicKey()
	require.NoError(t, err)
	pkB, err := skB.GeneratePublicKey()
	require.NoError(t, err)

	secretA, err := skA.DeriveSecret(pkB)
	require.NoError(t, err)
	secretB, err := skB.DeriveSecret(pkA)
	require.NoError(t, err)

	require.Equal(t, secretA, secretB)
}

func TestPublicKeyBytesRoundTrip(t *testing.T) {
	set, err := params.Get(params.P434)
	require.NoError(t, err)

	sk := NewPrivateKey(set, KeyVariantB)
	require.NoError(t, sk.Generate(rand.Reader))
	pk, err := sk.GeneratePublicKey()
	require.NoError(t, err)

	decoded, err := PublicKeyFromBytes(set, KeyVariantB, pk.Bytes())
	require.NoError(t, err)
	require.True(t, pk.XP.Equal(decoded.XP))
	require.True(t, pk.XQ.Equal(decoded.XQ))
	require.True(t, pk.XQmP.Equal(decoded.XQmP))
}

func TestDeriveSecretRejectsSameSideKey(t *testing.T) {
	set, err := params.Get(params.P434)
	require.NoError(t, err)

	skA1 := NewPrivateKey(set, KeyVariantA)
	require.NoError(t, skA1.Generate(rand.Reader))
	skA2 := NewPrivateKey(set, KeyVariantA)
	require.NoError(t, skA2.Generate(rand.Reader))

	pkA2, err := skA2.GeneratePublicKey()
	require.NoError(t, err)

	_, err = skA1.DeriveSecret(pkA2)
	require.Error(t, err)
}
