// Package kem builds an IND-CCA key encapsulation mechanism out of the
// sidh package's Diffie-Hellman primitive, following the same
// Encrypt/Decrypt-then-Encapsulate/Decapsulate layering as
// shirinebadi-bssl/sike.go, but with cSHAKE256 (internal/kdf) standing
// in for that file's HMAC-based hashMac, per spec.md section 6.
package kem

import (
	"io"

	"github.com/rust-crypto-labs/gosike/internal/kdf"
	"github.com/rust-crypto-labs/gosike/internal/sikeerr"
	"github.com/rust-crypto-labs/gosike/params"
	"github.com/rust-crypto-labs/gosike/sidh"
)

// PKE is the public-key encryption scheme the KEM is built from. The
// static (long-term) key pair always lives on the 3^e3 side; every
// Encrypt call generates a fresh ephemeral key pair on the 2^e2 side,
// matching the asymmetry of shirinebadi-bssl's Alice/Bob roles.
type PKE struct {
	Set *params.Set
}

// NewPKE returns a PKE instance bound to set.
func NewPKE(set *params.Set) *PKE {
	return &PKE{Set: set}
}

// GenerateKeyPair draws a fresh static key pair.
func (p *PKE) GenerateKeyPair(rng io.Reader) (*sidh.PrivateKey, *sidh.PublicKey, error) {
	sk := sidh.NewPrivateKey(p.Set, sidh.KeyVariantB)
	if err := sk.Generate(rng); err != nil {
		return nil, nil, err
	}
	pk, err := sk.GeneratePublicKey()
	if err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}

func (p *PKE) ephemeralKeyLen() int {
	half := 2 * p.Set.Mod.ByteLen()
	return 3 * half
}

// Encrypt encrypts msg (which must be exactly p.Set.MsgLen bytes) under
// the static public key pkStatic, drawing the ephemeral key pair's
// randomness from rng.
func (p *PKE) Encrypt(rng io.Reader, pkStatic *sidh.PublicKey, msg []byte) ([]byte, error) {
	if len(msg) != p.Set.MsgLen {
		return nil, sikeerr.NewInvalidParameterError("message has the wrong length for this parameter set")
	}

	skEph := sidh.NewPrivateKey(p.Set, sidh.KeyVariantA)
	if err := skEph.Generate(rng); err != nil {
		return nil, err
	}
	pkEph, err := skEph.GeneratePublicKey()
	if err != nil {
		return nil, err
	}
	return p.encryptWith(skEph, pkEph, pkStatic, msg)
}

// encryptWith finishes an Encrypt call given an already-generated
// ephemeral key pair, so Encapsulate and the re-encryption check in
// Decapsulate can both use a deterministically derived one.
func (p *PKE) encryptWith(skEph *sidh.PrivateKey, pkEph, pkStatic *sidh.PublicKey, msg []byte) ([]byte, error) {
	secret, err := skEph.DeriveSecret(pkStatic)
	if err != nil {
		return nil, err
	}

	mask := make([]byte, len(msg))
	kdf.Sum(mask, secret, kdf.TagF)

	ct := make([]byte, p.ephemeralKeyLen()+len(msg))
	copy(ct, pkEph.Bytes())
	c1 := ct[p.ephemeralKeyLen():]
	for i := range msg {
		c1[i] = msg[i] ^ mask[i]
	}
	return ct, nil
}

// Decrypt recovers the plaintext message from a ciphertext produced by
// Encrypt, using the static private key.
func (p *PKE) Decrypt(skStatic *sidh.PrivateKey, ct []byte) ([]byte, error) {
	if len(ct) != p.ephemeralKeyLen()+p.Set.MsgLen {
		return nil, sikeerr.NewEncodingError("wrong ciphertext length")
	}

	pkEph, err := sidh.PublicKeyFromBytes(p.Set, sidh.KeyVariantA, ct[:p.ephemeralKeyLen()])
	if err != nil {
		return nil, err
	}
	secret, err := skStatic.DeriveSecret(pkEph)
	if err != nil {
		return nil, err
	}

	c1 := ct[p.ephemeralKeyLen():]
	mask := make([]byte, len(c1))
	kdf.Sum(mask, secret, kdf.TagF)

	msg := make([]byte, len(c1))
	for i := range c1 {
		msg[i] = c1[i] ^ mask[i]
	}
	return msg, nil
}
