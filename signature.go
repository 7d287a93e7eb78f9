// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [ISO/IEC 8825-1]: Information technology — ASN.1 encoding rules:
//     Specification of Basic Encoding Rules (BER), Canonical Encoding Rules
//     (CER) and Distinguished Encoding Rules (DER)

import "fmt"

const (
	asn1SequenceID = 0x30
	asn1IntegerID  = 0x02
)

// Signature is an ECDSA signature over Fr, i.e. a pair (R, S) of scalars.
type Signature struct {
	R ModNScalar
	S ModNScalar
}

// NewSignature instantiates a signature from its two scalar components.
func NewSignature(r, s ModNScalar) *Signature {
	return &Signature{R: r, S: s}
}

// IsEqual reports whether sig and other carry the same R and S values.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.R.Equals(other.R) && sig.S.Equals(other.S)
}

// canonicalInt renders v as a minimal-length, unsigned big-endian ASN.1
// INTEGER content: no leading zero bytes, except for a single 0x00
// prepended when the high bit of the first remaining byte is set (so the
// value is never misread as negative).
func canonicalInt(v ModNScalar) []byte {
	raw := EncodeBigEndian(v.Int())
	if raw[0]&0x80 != 0 {
		return append([]byte{0x00}, raw...)
	}
	return raw
}

// Serialize returns sig encoded per the Distinguished Encoding Rules (DER)
// of section 10 of [ISO/IEC 8825-1]:
//
//	0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
//
// The caller is responsible for ensuring sig.S is already in its low-S
// form if canonical (BIP0062-style) output is required; SignHash produces
// signatures that already satisfy this.
func (sig *Signature) Serialize() []byte {
	rBytes := canonicalInt(sig.R)
	sBytes := canonicalInt(sig.S)

	totalLen := 6 + len(rBytes) + len(sBytes)
	b := make([]byte, 0, totalLen)
	b = append(b, asn1SequenceID, byte(totalLen-2))
	b = append(b, asn1IntegerID, byte(len(rBytes)))
	b = append(b, rBytes...)
	b = append(b, asn1IntegerID, byte(len(sBytes)))
	b = append(b, sBytes...)
	return b
}

// checkCanonicalInt validates that b is a canonical unsigned DER INTEGER
// content: it must not read as negative (high bit of the first byte set)
// and must not carry unnecessary leading zero padding.
func checkCanonicalInt(b []byte, negErr, paddingErr ErrorKind) error {
	if b[0]&0x80 == 0x80 {
		return makeError(negErr, "signature integer is negative")
	}
	if len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0 {
		return makeError(paddingErr, "signature integer has excess padding")
	}
	return nil
}

// ParseSignature parses sigStr as a strict DER-encoded ECDSA signature: the
// input must consist of exactly one ASN.1 SEQUENCE of two INTEGERs, with no
// extraneous leading or trailing bytes.
func ParseSignature(sigStr []byte) (*Signature, error) {
	// Minimal message: 0x30 len 0x02 0x01 <byte> 0x02 0x01 <byte>.
	if len(sigStr) < 8 {
		return nil, makeError(ErrSigTooShort, "malformed signature: too short")
	}
	if len(sigStr) > 72 {
		return nil, makeError(ErrSigTooLong, "malformed signature: too long")
	}

	index := 0
	if sigStr[index] != asn1SequenceID {
		return nil, makeError(ErrSigInvalidSeqID,
			"malformed signature: no header magic")
	}
	index++

	// The length byte must describe exactly the remainder of the input:
	// unlike more lenient BER parsers, extra trailing bytes are rejected
	// rather than ignored.
	siglen := int(sigStr[index])
	index++
	if siglen != len(sigStr)-2 {
		return nil, makeError(ErrSigInvalidLen,
			"malformed signature: length byte does not match input size")
	}

	if sigStr[index] != asn1IntegerID {
		return nil, makeError(ErrSigInvalidRIntID,
			"malformed signature: no 1st int marker")
	}
	index++

	rLen := int(sigStr[index])
	index++
	if rLen <= 0 || rLen > len(sigStr)-index-3 {
		return nil, makeError(ErrSigZeroRLen,
			"malformed signature: bogus R length")
	}
	rBytes := sigStr[index : index+rLen]
	if err := checkCanonicalInt(rBytes, ErrSigNegativeR, ErrSigTooMuchRPadding); err != nil {
		return nil, err
	}
	index += rLen

	if sigStr[index] != asn1IntegerID {
		return nil, makeError(ErrSigInvalidSIntID,
			"malformed signature: no 2nd int marker")
	}
	index++

	sLen := int(sigStr[index])
	index++
	if sLen <= 0 || sLen > len(sigStr)-index {
		return nil, makeError(ErrSigZeroSLen,
			"malformed signature: bogus S length")
	}
	sBytes := sigStr[index : index+sLen]
	if err := checkCanonicalInt(sBytes, ErrSigNegativeS, ErrSigTooMuchSPadding); err != nil {
		return nil, err
	}
	index += sLen

	if index != len(sigStr) {
		return nil, makeError(ErrSigTrailingBytes,
			fmt.Sprintf("malformed signature: %d trailing bytes", len(sigStr)-index))
	}

	rInt := DecodeBigEndian(rBytes)
	sInt := DecodeBigEndian(sBytes)
	if rInt.Sign() == 0 {
		return nil, makeError(ErrSigRIsZero, "signature R is zero")
	}
	if rInt.Cmp(curveOrder) >= 0 {
		return nil, makeError(ErrSigRTooBig, "signature R is >= curve order")
	}
	if sInt.Sign() == 0 {
		return nil, makeError(ErrSigSIsZero, "signature S is zero")
	}
	if sInt.Cmp(curveOrder) >= 0 {
		return nil, makeError(ErrSigSTooBig, "signature S is >= curve order")
	}

	return &Signature{R: NewModNScalar(rInt), S: NewModNScalar(sInt)}, nil
}
