// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"math/big"
	"sync"
)

// CurveParams contains the parameters for the secp256k1 curve.
type CurveParams struct {
	*elliptic.CurveParams
	H int // cofactor of the curve.
}

var curveParams = CurveParams{
	CurveParams: &elliptic.CurveParams{
		P:       fieldPrime,
		N:       curveOrder,
		B:       curveB.Int(),
		Gx:      G.X().Int(),
		Gy:      G.Y().Int(),
		BitSize: 256,
		Name:    "secp256k1",
	},
	H: 1,
}

// Params returns the secp256k1 curve parameters for convenience.
func Params() *CurveParams {
	return &curveParams
}

// KoblitzCurve provides an implementation of the standard library's
// crypto/elliptic.Curve interface for secp256k1, built directly on top of
// this package's affine Point arithmetic. Unlike the constant-time,
// endomorphism-accelerated implementations found elsewhere in the ecosystem,
// this adapter is a thin, non-constant-time wrapper: it exists for
// interoperability with APIs that expect an elliptic.Curve (crypto/tls,
// crypto/x509), not for performance.
type KoblitzCurve struct {
	*CurveParams
}

func bigToFieldVal(v *big.Int) FieldVal {
	return NewFieldVal(v)
}

func pointFromBig(x, y *big.Int) Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return InfinityPoint
	}
	return affineUnchecked(bigToFieldVal(x), bigToFieldVal(y))
}

func pointToBig(p Point) (*big.Int, *big.Int) {
	if p.IsZero() {
		return new(big.Int), new(big.Int)
	}
	return new(big.Int).Set(p.X().Int()), new(big.Int).Set(p.Y().Int())
}

// Params returns the parameters for the curve.
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) Params() *elliptic.CurveParams {
	return curve.CurveParams.CurveParams
}

// IsOnCurve returns whether or not the point (x, y) is on the curve.
//
// This is part of the elliptic.Curve interface implementation.  This
// differs from the crypto/elliptic algorithm since a = 0, not -3.
func (curve *KoblitzCurve) IsOnCurve(x, y *big.Int) bool {
	return IsOnCurve(bigToFieldVal(x), bigToFieldVal(y))
}

// Add returns the sum of (x1,y1) and (x2,y2).
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	sum := pointFromBig(x1, y1).Add(pointFromBig(x2, y2))
	return pointToBig(sum)
}

// Double returns 2*(x1,y1).
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	dbl := pointFromBig(x1, y1).Dbl()
	return pointToBig(dbl)
}

// ScalarMult returns k*(Bx, By) where k is a big endian integer.
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) ScalarMult(Bx, By *big.Int, k []byte) (*big.Int, *big.Int) {
	result := pointFromBig(Bx, By).ScalarMult(ModNScalarFromBytes(k))
	return pointToBig(result)
}

// ScalarBaseMult returns k*G where G is the base point of the group and k is
// a big endian integer.
//
// This is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	result := G.ScalarMult(ModNScalarFromBytes(k))
	return pointToBig(result)
}

// ToECDSA returns the public key as a *ecdsa.PublicKey.
func (p *PublicKey) ToECDSA() *ecdsa.PublicKey {
	return &ecdsa.PublicKey{
		Curve: S256(),
		X:     new(big.Int).Set(p.point.X().Int()),
		Y:     new(big.Int).Set(p.point.Y().Int()),
	}
}

// ToECDSA returns the private key as a *ecdsa.PrivateKey.
func (p *PrivateKey) ToECDSA() *ecdsa.PrivateKey {
	return &ecdsa.PrivateKey{
		PublicKey: *p.PubKey().ToECDSA(),
		D:         new(big.Int).Set(p.Key.Int()),
	}
}

var initonce sync.Once
var secp256k1Curve KoblitzCurve

func initS256() {
	secp256k1Curve.CurveParams = &curveParams
}

// S256 returns a Curve which implements secp256k1.
func S256() *KoblitzCurve {
	initonce.Do(initS256)
	return &secp256k1Curve
}
