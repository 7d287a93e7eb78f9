// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// DecodeBigEndian interprets b as the big-endian encoding of a non-negative
// integer and returns its value.  An empty slice decodes to zero.  This
// never fails: every byte string is a valid big-endian encoding of some
// non-negative integer.
func DecodeBigEndian(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// EncodeBigEndian returns the minimal-length big-endian encoding of v.  The
// zero value encodes to a single 0x00 byte, matching big.Int.Bytes() except
// for that one case.
func EncodeBigEndian(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	return v.Bytes()
}

// EncodeBigEndianPadded returns the big-endian encoding of v as exactly size
// bytes, zero-extended on the left.  If v does not fit in size bytes, the
// result is v mod 256^size rather than the full value.  No other function
// in this package calls it: FieldVal.Bytes and ModNScalar.Bytes fill their
// 32-byte encodings with big.Int.FillBytes directly.
func EncodeBigEndianPadded(size int, v *big.Int) []byte {
	out := make([]byte, size)
	if v.BitLen() > size*8 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(size*8))
		v = new(big.Int).Mod(v, mod)
	}
	return v.FillBytes(out)
}

// BitsLSBFirst returns the bits of v, least-significant bit first, using the
// shortest representation that has no leading (i.e. high-order) zero bit.
// The zero value decodes to an empty slice.
func BitsLSBFirst(v *big.Int) []bool {
	n := v.BitLen()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = v.Bit(i) == 1
	}
	return bits
}
