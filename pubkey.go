// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "fmt"

// These constants define the lengths of serialized public keys.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

const (
	pubkeyCompressedEven byte = 0x02
	pubkeyCompressedOdd  byte = 0x03
	pubkeyUncompressed   byte = 0x04
)

// PublicKey provides facilities for working with secp256k1 public keys,
// including serializing in both the uncompressed and compressed SEC1
// (Standards for Efficient Cryptography) formats.
type PublicKey struct {
	point Point
}

// NewPublicKey instantiates a new public key from a validated affine point.
// Use ParsePubKey to build one from serialized bytes.
func NewPublicKey(x, y FieldVal) (*PublicKey, error) {
	pt, err := NewAffinePoint(x, y)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: pt}, nil
}

// X returns the x coordinate of the public key.
func (p *PublicKey) X() FieldVal {
	return p.point.X()
}

// Y returns the y coordinate of the public key.
func (p *PublicKey) Y() FieldVal {
	return p.point.Y()
}

// Point returns the underlying curve point of the public key.
func (p *PublicKey) Point() Point {
	return p.point
}

// IsOnCurve reports whether the public key represents a point on the
// secp256k1 curve.  Keys built via NewPublicKey, or parsed by ParsePubKey
// from the compressed format, already satisfy this; ParsePubKey does not
// check it for the uncompressed format, so such keys (and keys whose
// provenance is otherwise uncertain) can be checked here.
func (p *PublicKey) IsOnCurve() bool {
	return IsOnCurve(p.point.X(), p.point.Y())
}

// IsEqual compares this PublicKey to another, returning true if both
// represent the same point.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return p.point.Equals(other.point)
}

// paddedAppend appends the src byte slice to dst, returning the new slice.
// If the length of src is smaller than size, leading zero bytes are
// appended to dst before appending src.
func paddedAppend(size int, dst, src []byte) []byte {
	for i := 0; i < size-len(src); i++ {
		dst = append(dst, 0)
	}
	return append(dst, src...)
}

// SerializeUncompressed serializes a public key in the 65-byte uncompressed
// SEC1 format: 0x04 || X || Y.
func (p *PublicKey) SerializeUncompressed() []byte {
	xb := p.point.X().Bytes()
	yb := p.point.Y().Bytes()
	b := make([]byte, 0, PubKeyBytesLenUncompressed)
	b = append(b, pubkeyUncompressed)
	b = append(b, xb[:]...)
	return append(b, yb[:]...)
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// SEC1 format: (0x02 if Y even, 0x03 if Y odd) || X.
func (p *PublicKey) SerializeCompressed() []byte {
	xb := p.point.X().Bytes()
	format := pubkeyCompressedEven
	if p.point.Y().IsOdd() {
		format = pubkeyCompressedOdd
	}
	b := make([]byte, 0, PubKeyBytesLenCompressed)
	b = append(b, format)
	return append(b, xb[:]...)
}

// ParsePubKey parses a secp256k1 public key encoded in either the 65-byte
// uncompressed or the 33-byte compressed SEC1 format described in
// SerializeUncompressed/SerializeCompressed.  Coordinates that are
// individually >= the field prime are rejected eagerly rather than left for
// the caller to discover later. The uncompressed path does not otherwise
// re-verify that the point lies on the curve; call IsOnCurve if that
// guarantee is needed for input whose provenance is uncertain, since a
// caller cannot rely on the encoding alone to prove it. The compressed path
// always yields an on-curve point because Y is recovered from X via the
// curve equation.
func ParsePubKey(pubKeyStr []byte) (*PublicKey, error) {
	if len(pubKeyStr) == 0 {
		str := "invalid public key: empty"
		return nil, makeError(ErrPubKeyInvalidLen, str)
	}

	format := pubKeyStr[0]

	switch len(pubKeyStr) {
	case PubKeyBytesLenUncompressed:
		if format != pubkeyUncompressed {
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				format)
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}

		xInt := DecodeBigEndian(pubKeyStr[1:33])
		yInt := DecodeBigEndian(pubKeyStr[33:65])
		if xInt.Cmp(fieldPrime) >= 0 {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		if yInt.Cmp(fieldPrime) >= 0 {
			str := "invalid public key: y >= field prime"
			return nil, makeError(ErrPubKeyYTooBig, str)
		}
		return &PublicKey{point: affineUnchecked(NewFieldVal(xInt), NewFieldVal(yInt))}, nil

	case PubKeyBytesLenCompressed:
		if format != pubkeyCompressedEven && format != pubkeyCompressedOdd {
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				format)
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}

		xInt := DecodeBigEndian(pubKeyStr[1:33])
		if xInt.Cmp(fieldPrime) >= 0 {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		x := NewFieldVal(xInt)
		y, ok := YFromX(x, format == pubkeyCompressedOdd)
		if !ok {
			str := fmt.Sprintf("invalid public key: x coordinate %x is not "+
				"on the secp256k1 curve", xInt)
			return nil, makeError(ErrPubKeyNotOnCurve, str)
		}
		return &PublicKey{point: affineUnchecked(x, y)}, nil

	default:
		str := fmt.Sprintf("invalid public key: invalid length: %d",
			len(pubKeyStr))
		return nil, makeError(ErrPubKeyInvalidLen, str)
	}
}
