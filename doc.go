// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements secp256k1 elliptic curve operations and ECDSA
digital signatures in pure Go.

This package provides an implementation of elliptic curve cryptography
operations over the secp256k1 curve as well as data structures and functions
for working with public and private secp256k1 keys.  See
https://www.secg.org/sec2-v2.pdf for details on the standard.

An overview of the features provided by this package are as follows:

  - Private key generation, serialization, and parsing
  - Public key generation, serialization and parsing per ANSI X9.62-1998
  - Parses uncompressed and compressed public keys
  - Serializes uncompressed and compressed public keys
  - FieldVal type for working modulo the secp256k1 field prime
  - ModNScalar type for working modulo the secp256k1 group order
  - Elliptic curve point arithmetic in affine coordinates
  - Point addition
  - Point doubling
  - Scalar multiplication with an arbitrary point
  - Scalar multiplication with the base point (group generator)
  - Point decompression from a given x coordinate via modular square root
  - ECDSA signing and verification, with low-S canonicalization, given a
    caller-supplied nonce
  - Parsing and serializing ECDSA signatures using the strict Distinguished
    Encoding Rules (DER) of ISO/IEC 8825-1
  - Diffie-Hellman shared secret derivation (ECDH)

It also provides an implementation of the Go standard library crypto/elliptic
Curve interface via the S256 function so that it may be used with other
packages in the standard library such as crypto/tls and crypto/x509.

This implementation intentionally favors a straightforward affine-coordinate
group law over a constant-time, side-channel-hardened one: scalar
multiplication and modular inversion are not constant time, and no claim of
resistance to timing attacks is made. Nonces are always supplied by the
caller rather than derived deterministically from the message, so RFC 6979
is not implemented; callers wanting deterministic nonces must derive them
before calling SignHash.

A comprehensive suite of tests is provided to ensure proper functionality.
*/
package secp256k1
