// Package gosike implements the SIKE (Supersingular Isogeny Key
// Encapsulation) suite as specified in the NIST PQC submission dated
// 17 April 2019: a post-quantum key-encapsulation mechanism and its
// underlying public-key encryption scheme, built on supersingular
// isogeny Diffie-Hellman (SIDH).
//
// Four parameter sets are supported: P434, P503, P610 and P751 (see
// package params). The isogeny engine lives in the internal/field,
// internal/curve and internal/isogeny packages; the SIDH key-agreement
// protocol is in package sidh; the PKE/KEM boundary sits in package kem.
//
//	set, _ := params.Get(params.P503)
//	skA := sidh.NewPrivateKey(set, sidh.KeyVariantA)
//	_ = skA.Generate(rand.Reader)
//	pkA, _ := skA.GeneratePublicKey()
//
// The 2022 Castryck-Decru attack breaks the mathematical assumption SIDH
// relies on. This package exists for research and interoperability
// testing, not for protecting data.
package gosike
