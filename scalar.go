// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// curveOrder is n, the order of the secp256k1 base point G, per section
// 2.4.1 of [SECG].
var curveOrder, _ = new(big.Int).SetString(
	"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// nHalf is (n + 1) / 2, the threshold used to canonicalize signatures to
// their low-S form.
var nHalf = new(big.Int).Rsh(new(big.Int).Add(curveOrder, big.NewInt(1)), 1)

// ModNScalarBytesLen is the fixed-width encoding length of a ModNScalar.
const ModNScalarBytesLen = 32

// ModNScalar represents an element of the secp256k1 scalar field Fr, i.e.
// an integer in [0, n).  It is nominally distinct from FieldVal even though
// both are built on the same modular arithmetic kernel: an x-coordinate and
// a scalar must never be silently interchanged.  The zero value is treated
// as the scalar zero by IsZero and Equals; use NewModNScalar or one of the
// ModNScalarFrom* constructors before doing arithmetic with it.  ModNScalar
// is immutable.
type ModNScalar struct {
	n *big.Int
}

// NewModNScalar reduces v modulo n and returns the resulting scalar.
func NewModNScalar(v *big.Int) ModNScalar {
	return ModNScalar{n: new(big.Int).Mod(v, curveOrder)}
}

// ModNScalarFromBytes decodes b as a big-endian integer and reduces it
// modulo n.  b may be of any length.
func ModNScalarFromBytes(b []byte) ModNScalar {
	return NewModNScalar(DecodeBigEndian(b))
}

// Int returns the representative of s in [0, n) as a big.Int.  The caller
// must not mutate the result.
func (s ModNScalar) Int() *big.Int {
	if s.n == nil {
		return new(big.Int)
	}
	return s.n
}

// Bytes returns the fixed 32-byte big-endian encoding of s.
func (s ModNScalar) Bytes() [ModNScalarBytesLen]byte {
	var out [ModNScalarBytesLen]byte
	s.Int().FillBytes(out[:])
	return out
}

// IsZero reports whether s is the additive identity.  The zero value of
// ModNScalar (an unset n) counts as zero rather than panicking, since a
// plain ModNScalar{} literal is reachable through this package's own
// zero-value idioms (e.g. a PrivateKey{} literal).
func (s ModNScalar) IsZero() bool {
	return s.n == nil || s.n.Sign() == 0
}

// Equals reports whether s and o represent the same scalar.  A
// ModNScalar{} zero value on either side compares equal to an explicit
// zero.
func (s ModNScalar) Equals(o ModNScalar) bool {
	sn, on := s.n, o.n
	if sn == nil {
		sn = new(big.Int)
	}
	if on == nil {
		on = new(big.Int)
	}
	return sn.Cmp(on) == 0
}

// IsOverHalfOrder reports whether s is greater than or equal to (n+1)/2, i.e. whether s is the "high" half of a malleable (s, n-s) pair.
func (s ModNScalar) IsOverHalfOrder() bool {
	return s.Int().Cmp(nHalf) >= 0
}

// Add returns s + o in Fr.
func (s ModNScalar) Add(o ModNScalar) ModNScalar {
	return ModNScalar{n: modAdd(s.Int(), o.Int(), curveOrder)}
}

// Sub returns s - o in Fr.
func (s ModNScalar) Sub(o ModNScalar) ModNScalar {
	return ModNScalar{n: modSub(s.Int(), o.Int(), curveOrder)}
}

// Neg returns -s in Fr.
func (s ModNScalar) Neg() ModNScalar {
	return ModNScalar{n: modNeg(s.Int(), curveOrder)}
}

// Mul returns s * o in Fr.
func (s ModNScalar) Mul(o ModNScalar) ModNScalar {
	return ModNScalar{n: modMul(s.Int(), o.Int(), curveOrder)}
}

// Sqr returns s * s in Fr.
func (s ModNScalar) Sqr() ModNScalar {
	return ModNScalar{n: modSqr(s.Int(), curveOrder)}
}

// Pow returns s**e in Fr for a non-negative exponent e.
func (s ModNScalar) Pow(e *big.Int) ModNScalar {
	return ModNScalar{n: modPow(s.Int(), e, curveOrder)}
}

// Inverse returns s^-1 in Fr.  It fails with ErrNotInvertible if s is zero.
func (s ModNScalar) Inverse() (ModNScalar, error) {
	inv, err := modInverse(s.Int(), curveOrder)
	if err != nil {
		return ModNScalar{}, err
	}
	return ModNScalar{n: inv}, nil
}

// Div returns s / o in Fr.  It fails with ErrNotInvertible if o is zero.
func (s ModNScalar) Div(o ModNScalar) (ModNScalar, error) {
	q, err := modDiv(s.Int(), o.Int(), curveOrder)
	if err != nil {
		return ModNScalar{}, err
	}
	return ModNScalar{n: q}, nil
}
