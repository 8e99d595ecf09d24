package kem

import (
	"bytes"
	"io"

	"github.com/rust-crypto-labs/gosike/internal/kdf"
	"github.com/rust-crypto-labs/gosike/internal/log"
	"github.com/rust-crypto-labs/gosike/params"
	"github.com/rust-crypto-labs/gosike/sidh"
)

// PublicKey is a KEM public key: identical in shape to the underlying
// PKE's static public key.
type PublicKey = sidh.PublicKey

// PrivateKey is a KEM private key: the PKE static secret key plus the
// extra state the Fujisaki-Okamoto transform's implicit-rejection path
// needs (spec.md section 7's DecapsulationReject): the encoded static
// public key, so Decapsulate can re-derive the ephemeral key
// deterministically, and a random fallback value s used in place of
// the message whenever re-encryption doesn't match.
type PrivateKey struct {
	pke     *PKE
	sk      *sidh.PrivateKey
	pkBytes []byte
	s       []byte
}

// KEM is the encapsulation mechanism for one parameter set.
type KEM struct {
	pke *PKE
}

// New returns a KEM instance bound to set.
func New(set *params.Set) *KEM {
	return &KEM{pke: NewPKE(set)}
}

// GenerateKeyPair draws a fresh KEM key pair.
func (k *KEM) GenerateKeyPair(rng io.Reader) (*PrivateKey, *PublicKey, error) {
	sk, pk, err := k.pke.GenerateKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}
	s := make([]byte, k.pke.Set.MsgLen)
	if _, err := io.ReadFull(rng, s); err != nil {
		return nil, nil, err
	}
	return &PrivateKey{pke: k.pke, sk: sk, pkBytes: pk.Bytes(), s: s}, pk, nil
}

func (k *KEM) deriveEphemeral(m, pkBytes []byte) (*sidh.PrivateKey, *sidh.PublicKey, error) {
	seed := append(append([]byte{}, m...), pkBytes...)
	skEph := sidh.NewPrivateKey(k.pke.Set, sidh.KeyVariantA)
	if err := skEph.Generate(kdf.XOF(seed, kdf.TagG)); err != nil {
		return nil, nil, err
	}
	pkEph, err := skEph.GeneratePublicKey()
	if err != nil {
		return nil, nil, err
	}
	return skEph, pkEph, nil
}

func (k *KEM) sharedSecret(m, ct []byte) []byte {
	out := make([]byte, k.pke.Set.MsgLen)
	in := append(append([]byte{}, m...), ct...)
	kdf.Sum(out, in, kdf.TagH)
	return out
}

// Encapsulate draws a fresh shared secret and returns it alongside the
// ciphertext that carries it to the holder of the matching PrivateKey.
func (k *KEM) Encapsulate(rng io.Reader, pk *PublicKey) (ct, sharedSecret []byte, err error) {
	m := make([]byte, k.pke.Set.MsgLen)
	if _, err := io.ReadFull(rng, m); err != nil {
		return nil, nil, err
	}

	skEph, pkEph, err := k.deriveEphemeral(m, pk.Bytes())
	if err != nil {
		return nil, nil, err
	}
	ct, err = k.pke.encryptWith(skEph, pkEph, pk, m)
	if err != nil {
		return nil, nil, err
	}
	return ct, k.sharedSecret(m, ct), nil
}

// Decapsulate recovers the shared secret carried by ct. Per spec.md
// section 7, this never fails: if ct does not decrypt back to itself
// under the recovered message (a malformed or tampered ciphertext), it
// silently returns an indistinguishable pseudorandom secret derived
// from the private key's fallback value instead of an error, so a
// network adversary learns nothing about which case occurred.
func (k *KEM) Decapsulate(sk *PrivateKey, ct []byte) []byte {
	m, err := k.pke.Decrypt(sk.sk, ct)
	if err == nil {
		if recoveredCt, ok := k.reencrypt(sk, m); ok && bytes.Equal(recoveredCt, ct) {
			return k.sharedSecret(m, ct)
		}
	}
	log.L.Debug().Msg("SIKE decapsulation re-encryption mismatch, returning implicit-rejection secret")
	return k.sharedSecret(sk.s, ct)
}

func (k *KEM) reencrypt(sk *PrivateKey, m []byte) ([]byte, bool) {
	pkStatic, err := sidh.PublicKeyFromBytes(k.pke.Set, sidh.KeyVariantB, sk.pkBytes)
	if err != nil {
		return nil, false
	}
	skEph, pkEph, err := k.deriveEphemeral(m, sk.pkBytes)
	if err != nil {
		return nil, false
	}
	ct, err := k.pke.encryptWith(skEph, pkEph, pkStatic, m)
	if err != nil {
		return nil, false
	}
	return ct, true
}
