// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

import "math/big"

// curveB is the constant term of the secp256k1 curve equation
// y^2 = x^3 + a*x + b with a = 0, b = 7.
var curveB = NewFieldVal(big.NewInt(7))

// Point is an element of the secp256k1 group in affine coordinates: either
// the identity (the point at infinity) or an affine pair (x, y) satisfying
// the curve equation.  The zero value of Point is not the identity: it is
// the affine pair (0, 0), which is not on the curve; use InfinityPoint for
// the identity.  Point is immutable; every method returns a new value.
type Point struct {
	infinity bool
	x, y     FieldVal
}

// InfinityPoint is the identity element of the secp256k1 group.
var InfinityPoint = Point{infinity: true}

// G is the secp256k1 base point (generator), per section 2.4.1 of [SECG].
var G = mustAffinePoint(
	"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
)

// mustAffinePoint builds a Point from hex coordinates known to satisfy the
// curve equation.  It is only used for the hard-coded generator above and
// panics on failure, which can only happen due to a mistake in this source
// file.
func mustAffinePoint(xHex, yHex string) Point {
	x, ok := new(big.Int).SetString(xHex, 16)
	if !ok {
		panic("secp256k1: invalid hex constant: " + xHex)
	}
	y, ok := new(big.Int).SetString(yHex, 16)
	if !ok {
		panic("secp256k1: invalid hex constant: " + yHex)
	}
	p, err := NewAffinePoint(NewFieldVal(x), NewFieldVal(y))
	if err != nil {
		panic("secp256k1: generator point does not satisfy curve equation")
	}
	return p
}

// IsOnCurve reports whether (x, y) satisfies y^2 = x^3 + 7 over Fp.
func IsOnCurve(x, y FieldVal) bool {
	lhs := y.Sqr()
	rhs := x.Sqr().Mul(x).Add(curveB)
	return lhs.Equals(rhs)
}

// NewAffinePoint constructs a Point from externally supplied coordinates,
// validating that they lie on the curve.  Use this constructor for any
// coordinates that did not come from this package's own group-law
// operations.
func NewAffinePoint(x, y FieldVal) (Point, error) {
	if !IsOnCurve(x, y) {
		str := "point is not on the secp256k1 curve"
		return Point{}, makeError(ErrPubKeyNotOnCurve, str)
	}
	return Point{x: x, y: y}, nil
}

// affineUnchecked builds a Point from coordinates already known to satisfy
// the curve equation, e.g. the output of the group law itself.  It performs
// no validation.
func affineUnchecked(x, y FieldVal) Point {
	return Point{x: x, y: y}
}

// IsZero reports whether p is the point at infinity.
func (p Point) IsZero() bool {
	return p.infinity
}

// X returns the affine X coordinate of p.  It panics if p is the point at
// infinity; callers must check IsZero first.
func (p Point) X() FieldVal {
	if p.infinity {
		panic("secp256k1: X of the point at infinity is undefined")
	}
	return p.x
}

// Y returns the affine Y coordinate of p.  It panics if p is the point at
// infinity; callers must check IsZero first.
func (p Point) Y() FieldVal {
	if p.infinity {
		panic("secp256k1: Y of the point at infinity is undefined")
	}
	return p.y
}

// Equals reports whether p and o represent the same group element.
func (p Point) Equals(o Point) bool {
	if p.infinity || o.infinity {
		return p.infinity == o.infinity
	}
	return p.x.Equals(o.x) && p.y.Equals(o.y)
}

// Neg returns -p.
func (p Point) Neg() Point {
	if p.infinity {
		return InfinityPoint
	}
	return affineUnchecked(p.x, p.y.Neg())
}

// Dbl returns p + p.
func (p Point) Dbl() Point {
	if p.infinity {
		return InfinityPoint
	}
	if p.y.IsZero() {
		return InfinityPoint
	}

	// λ = (3x² + a) / (2y), a = 0.
	three := NewFieldVal(big.NewInt(3))
	two := NewFieldVal(big.NewInt(2))
	num := three.Mul(p.x.Sqr())
	den := two.Mul(p.y)
	lambda, err := num.Div(den)
	if err != nil {
		// Unreachable: den is zero only when y is zero, handled above.
		panic("secp256k1: unexpected non-invertible denominator in Dbl")
	}

	x3 := lambda.Sqr().Sub(p.x).Sub(p.x)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return affineUnchecked(x3, y3)
}

// Add returns p + q using the standard affine group law: the identity is
// the neutral element, adding a point to its negation yields the identity,
// adding a point to itself is delegated to Dbl, and the general case uses
// the chord-and-tangent formula.
func (p Point) Add(q Point) Point {
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if p.x.Equals(q.x) {
		if p.y.Equals(q.y.Neg()) {
			return InfinityPoint
		}
		// p.y.Equals(q.y) here, since y is one of only two square roots.
		return p.Dbl()
	}

	// λ = (y1 - y2) / (x1 - x2).
	num := p.y.Sub(q.y)
	den := p.x.Sub(q.x)
	lambda, err := num.Div(den)
	if err != nil {
		// Unreachable: den is zero only when x1 == x2, handled above.
		panic("secp256k1: unexpected non-invertible denominator in Add")
	}

	x3 := lambda.Sqr().Sub(p.x).Sub(q.x)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return affineUnchecked(x3, y3)
}

// ScalarMult returns k*p using left-to-right double-and-add over the bits
// of k, most-significant bit first.  It returns the identity when k is
// zero.  This is not constant time: the number and pattern of point
// operations depends on the bits of k, matching the non-constant-time
// design this package targets (see the package documentation).
func (p Point) ScalarMult(k ModNScalar) Point {
	bits := BitsLSBFirst(k.Int())
	acc := InfinityPoint
	for i := len(bits) - 1; i >= 0; i-- {
		acc = acc.Dbl()
		if bits[i] {
			acc = acc.Add(p)
		}
	}
	return acc
}

// YFromX recovers a Y coordinate for the given X coordinate on the
// secp256k1 curve, choosing between the two candidate roots so that the
// result's parity (odd/even) matches wantOdd.  It returns false if x is not
// the X coordinate of any point on the curve, i.e. x^3 + 7 is not a
// quadratic residue mod p.
func YFromX(x FieldVal, wantOdd bool) (FieldVal, bool) {
	u := x.Sqr().Mul(x).Add(curveB)
	y, ok := FieldSqrt(u)
	if !ok {
		return FieldVal{}, false
	}
	if y.IsOdd() != wantOdd {
		y = y.Neg()
	}
	return y, true
}
