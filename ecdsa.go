// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "crypto/sha256"

// normalizeSignature returns sig with S replaced by n-S whenever S is over
// the half order, guaranteeing the result's S is < (n+1)/2.  This defeats
// the trivial signature malleability where both (r, s) and (r, n-s) verify
// for the same message and key.
func normalizeSignature(sig *Signature) *Signature {
	if sig.S.IsOverHalfOrder() {
		return &Signature{R: sig.R, S: sig.S.Neg()}
	}
	return sig
}

// SignHash produces an ECDSA signature over an already-hashed message using
// the private key sec and the caller-supplied nonce bytes. The nonce must
// be secret, uniformly random, and never reused across signatures for the
// same key: nonce reuse or bias leaks the private key. It returns false if
// sec is zero, if the nonce reduces to zero modulo n, or if the resulting
// r happens to be zero (astronomically unlikely for a good nonce) — in
// every such case the caller should retry with fresh randomness rather
// than treat this as a hard error.
func SignHash(sec *PrivateKey, hashed []byte, nonce []byte) (*Signature, bool) {
	if sec.Key.IsZero() {
		return nil, false
	}

	k, ok := GetSecretKey(nonce)
	if !ok {
		return nil, false
	}

	Q := G.ScalarMult(k)
	if Q.IsZero() {
		return nil, false
	}

	r := NewModNScalar(Q.X().Int())
	if r.IsZero() {
		return nil, false
	}

	z := ModNScalarFromBytes(hashed)

	kInv, err := k.Inverse()
	if err != nil {
		// Unreachable: k is non-zero, checked via GetSecretKey above.
		return nil, false
	}
	s := r.Mul(sec.Key).Add(z).Mul(kInv)

	return normalizeSignature(&Signature{R: r, S: s}), true
}

// Sign hashes msg with SHA-256 and produces an ECDSA signature over the
// digest.  See SignHash for the nonce and failure contract.
func Sign(sec *PrivateKey, msg []byte, nonce []byte) (*Signature, bool) {
	h := sha256.Sum256(msg)
	return SignHash(sec, h[:], nonce)
}

// VerifyHash reports whether sig is a valid ECDSA signature over the
// already-hashed message hashed under the public key pub.  Signatures
// whose S is not already in low-S form are rejected: callers importing
// signatures from other ecosystems must normalize them first.
func VerifyHash(pub *PublicKey, hashed []byte, sig *Signature) bool {
	if sig.R.IsZero() || sig.S.IsZero() {
		return false
	}
	if sig.S.IsOverHalfOrder() {
		return false
	}
	if !pub.IsOnCurve() {
		return false
	}

	z := ModNScalarFromBytes(hashed)
	w, err := sig.S.Inverse()
	if err != nil {
		// Unreachable: sig.S is non-zero, checked above.
		return false
	}
	u1 := z.Mul(w)
	u2 := sig.R.Mul(w)

	R := G.ScalarMult(u1).Add(pub.point.ScalarMult(u2))
	if R.IsZero() {
		return false
	}

	x := NewModNScalar(R.X().Int())
	return x.Equals(sig.R)
}

// Verify hashes msg with SHA-256 and reports whether sig is a valid ECDSA
// signature over the digest under the public key pub.
func Verify(pub *PublicKey, msg []byte, sig *Signature) bool {
	h := sha256.Sum256(msg)
	return VerifyHash(pub, h[:], sig)
}
