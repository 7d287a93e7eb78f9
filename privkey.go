// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"io"
	"math/big"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey provides facilities for working with secp256k1 private keys
// within this package, including serializing/parsing them and computing
// their associated public key.  A PrivateKey constructed by NewPrivateKey,
// PrivKeyFromBytes, or GeneratePrivateKey always wraps a ModNScalar in
// [1, n-1]; the zero value PrivateKey{} instead holds the zero scalar, as
// does one that has been passed to Zero.
type PrivateKey struct {
	Key ModNScalar
}

// GetSecretKey reduces b, interpreted as a big-endian integer, modulo n and
// returns the resulting scalar as a candidate secret key.  b may be of any
// length; callers ordinarily pass 32 bytes of secure randomness.  It
// returns false if the reduced value is zero, which callers should treat as
// "try again with fresh randomness" rather than an error.
func GetSecretKey(b []byte) (ModNScalar, bool) {
	v := ModNScalarFromBytes(b)
	if v.IsZero() {
		return ModNScalar{}, false
	}
	return v, true
}

// NewPrivateKey wraps sec as a PrivateKey.  It fails if sec is zero, since a
// secp256k1 private key must be in [1, n-1].
func NewPrivateKey(sec ModNScalar) (*PrivateKey, error) {
	if sec.IsZero() {
		str := "private key scalar must not be zero"
		return nil, makeError(ErrPubKeyInvalidFormat, str)
	}
	return &PrivateKey{Key: sec}, nil
}

// PrivKeyFromBytes returns a private key built from the given big-endian
// encoded scalar, reducing it modulo n first.  It fails if the reduced
// value is zero.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, error) {
	sec, ok := GetSecretKey(pk)
	if !ok {
		str := "private key scalar reduces to zero"
		return nil, makeError(ErrPubKeyInvalidFormat, str)
	}
	return &PrivateKey{Key: sec}, nil
}

// GeneratePrivateKey generates and returns a new private key suitable for
// use with secp256k1, reading randomness from rnd.  Since a zero scalar is
// not a valid key (occurring with probability roughly 2^-256), this
// rejection-samples fresh randomness on the vanishingly unlikely event that
// it occurs, mirroring the approach crypto/ecdsa.GenerateKey takes.
func GeneratePrivateKey(rnd io.Reader) (*PrivateKey, error) {
	var buf [PrivKeyBytesLen]byte
	for {
		if _, err := io.ReadFull(rnd, buf[:]); err != nil {
			return nil, err
		}
		if sec, ok := GetSecretKey(buf[:]); ok {
			return &PrivateKey{Key: sec}, nil
		}
	}
}

// GenerateSecp256k1PrivateKey is a convenience wrapper around
// GeneratePrivateKey that reads randomness from crypto/rand.
func GenerateSecp256k1PrivateKey() (*PrivateKey, error) {
	return GeneratePrivateKey(rand.Reader)
}

// PubKey computes and returns the public key corresponding to this private
// key, i.e. Q = sec*G.
func (p *PrivateKey) PubKey() *PublicKey {
	pt := G.ScalarMult(p.Key)
	return &PublicKey{point: pt}
}

// Serialize returns the private key as a big-endian binary-encoded number,
// padded to a length of 32 bytes.
func (p *PrivateKey) Serialize() []byte {
	b := p.Key.Bytes()
	return b[:]
}

// Zero clears the private key's scalar value.  Since ModNScalar is
// immutable, this replaces Key with the result of NewModNScalar(0) rather
// than mutating in place; it is provided so callers that hold a *PrivateKey
// they no longer need can drop the reference to the sensitive scalar
// explicitly. The result reads back as zero from IsZero, Equals, and Bytes.
func (p *PrivateKey) Zero() {
	p.Key = NewModNScalar(new(big.Int))
}
