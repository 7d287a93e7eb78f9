// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// fieldPrime is the secp256k1 base field prime p = 2^256 - 2^32 - 977, per
// section 2.4.1 of [SECG].
var fieldPrime, _ = new(big.Int).SetString(
	"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

// fieldPSqrtExp is (p + 1) / 4, the exponent used by FieldSqrt.  It is valid
// only because p ≡ 3 (mod 4), which secp256k1's prime satisfies.
var fieldPSqrtExp = new(big.Int).Rsh(new(big.Int).Add(fieldPrime, big.NewInt(1)), 2)

// FieldBytesLen is the fixed-width encoding length of a FieldVal.
const FieldBytesLen = 32

// FieldVal represents an element of the secp256k1 base field Fp, i.e. an
// integer in [0, p).  The zero value is treated as the field element zero
// by IsZero and Equals; use NewFieldVal or one of the FieldValFrom*
// constructors before doing arithmetic with it.  FieldVal is immutable:
// every method returns a new value rather than mutating the receiver.
type FieldVal struct {
	n *big.Int
}

// NewFieldVal reduces v modulo p and returns the resulting field element.
func NewFieldVal(v *big.Int) FieldVal {
	return FieldVal{n: new(big.Int).Mod(v, fieldPrime)}
}

// FieldValFromBytes decodes b as a big-endian integer and reduces it modulo
// p.
func FieldValFromBytes(b []byte) FieldVal {
	return NewFieldVal(DecodeBigEndian(b))
}

// Int returns the representative of f in [0, p) as a big.Int.  The caller
// must not mutate the result.
func (f FieldVal) Int() *big.Int {
	if f.n == nil {
		return new(big.Int)
	}
	return f.n
}

// Bytes returns the fixed 32-byte big-endian encoding of f.
func (f FieldVal) Bytes() [FieldBytesLen]byte {
	var out [FieldBytesLen]byte
	f.Int().FillBytes(out[:])
	return out
}

// IsZero reports whether f is the additive identity.  The zero value of
// FieldVal (an unset n) counts as zero rather than panicking, since a plain
// FieldVal{} literal is reachable through this package's own zero-value
// idioms (e.g. an unset struct field).
func (f FieldVal) IsZero() bool {
	return f.n == nil || f.n.Sign() == 0
}

// IsOdd reports whether the integer representative of f is odd.
func (f FieldVal) IsOdd() bool {
	return f.n != nil && f.n.Bit(0) == 1
}

// Equals reports whether f and o represent the same field element.  A
// FieldVal{} zero value on either side compares equal to an explicit zero.
func (f FieldVal) Equals(o FieldVal) bool {
	fn, on := f.n, o.n
	if fn == nil {
		fn = new(big.Int)
	}
	if on == nil {
		on = new(big.Int)
	}
	return fn.Cmp(on) == 0
}

// Add returns f + o in Fp.
func (f FieldVal) Add(o FieldVal) FieldVal {
	return FieldVal{n: modAdd(f.Int(), o.Int(), fieldPrime)}
}

// Sub returns f - o in Fp.
func (f FieldVal) Sub(o FieldVal) FieldVal {
	return FieldVal{n: modSub(f.Int(), o.Int(), fieldPrime)}
}

// Neg returns -f in Fp.
func (f FieldVal) Neg() FieldVal {
	return FieldVal{n: modNeg(f.Int(), fieldPrime)}
}

// Mul returns f * o in Fp.
func (f FieldVal) Mul(o FieldVal) FieldVal {
	return FieldVal{n: modMul(f.Int(), o.Int(), fieldPrime)}
}

// Sqr returns f * f in Fp.
func (f FieldVal) Sqr() FieldVal {
	return FieldVal{n: modSqr(f.Int(), fieldPrime)}
}

// Pow returns f**e in Fp for a non-negative exponent e.
func (f FieldVal) Pow(e *big.Int) FieldVal {
	return FieldVal{n: modPow(f.Int(), e, fieldPrime)}
}

// Inverse returns f^-1 in Fp.  It fails with ErrNotInvertible if f is zero.
func (f FieldVal) Inverse() (FieldVal, error) {
	inv, err := modInverse(f.Int(), fieldPrime)
	if err != nil {
		return FieldVal{}, err
	}
	return FieldVal{n: inv}, nil
}

// Div returns f / o in Fp.  It fails with ErrNotInvertible if o is zero.
func (f FieldVal) Div(o FieldVal) (FieldVal, error) {
	q, err := modDiv(f.Int(), o.Int(), fieldPrime)
	if err != nil {
		return FieldVal{}, err
	}
	return FieldVal{n: q}, nil
}

// FieldSqrt attempts to compute a square root of u in Fp.  Because p ≡ 3
// (mod 4), any square root can be computed directly as u^((p+1)/4).  It
// returns the root and true if u is a quadratic residue (including zero),
// or the zero value and false if u is not a residue.
func FieldSqrt(u FieldVal) (FieldVal, bool) {
	r := u.Pow(fieldPSqrtExp)
	if r.Sqr().Equals(u) {
		return r, true
	}
	return FieldVal{}, false
}
