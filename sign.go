// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto"
	"io"
)

// SignOptions is a crypto.SignerOpts implementation that lets a caller of
// (*PrivateKey).Sign specify which hash function was used to produce the
// digest it is given.
type SignOptions struct {
	Hash crypto.Hash
}

// HashFunc satisfies crypto.SignerOpts.
func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Public returns the public key corresponding to privkey as a *PublicKey.
// Together with Sign it makes *PrivateKey a crypto.Signer.
func (privkey *PrivateKey) Public() crypto.PublicKey {
	return privkey.PubKey()
}

// Sign implements crypto.Signer: it signs the provided digest (assumed
// already hashed per opts.HashFunc(), ordinarily crypto.SHA256) and returns
// the resulting signature DER-encoded. The nonce required by SignHash is
// drawn from rand, rejection-sampling fresh bytes on the vanishingly
// unlikely event that a draw reduces to zero modulo the group order or
// yields r = 0. This package never derives nonces deterministically from
// the message; callers wanting RFC 6979 behavior must implement it
// themselves before calling SignHash directly.
func (privkey *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	var nonce [PrivKeyBytesLen]byte
	for {
		if _, err := io.ReadFull(rand, nonce[:]); err != nil {
			return nil, err
		}
		sig, ok := SignHash(privkey, digest, nonce[:])
		if ok {
			return sig.Serialize(), nil
		}
	}
}
