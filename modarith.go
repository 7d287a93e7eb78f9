// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// The functions in this file form the generic modular arithmetic kernel
// that the Fp and Fr field wrappers (field.go, scalar.go) are built on top
// of.  Every function here assumes m > 1 and that any input already lies in
// [0, m); they perform no reduction of their own beyond what is needed to
// bring the result back into that range.

// modAdd returns (x + y) mod m.
func modAdd(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Add(x, y)
	if z.Cmp(m) >= 0 {
		z.Sub(z, m)
	}
	return z
}

// modSub returns (x - y) mod m.
func modSub(x, y, m *big.Int) *big.Int {
	if x.Cmp(y) >= 0 {
		return new(big.Int).Sub(x, y)
	}
	z := new(big.Int).Add(x, m)
	return z.Sub(z, y)
}

// modNeg returns -x mod m.
func modNeg(x, m *big.Int) *big.Int {
	if x.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(m, x)
}

// modMul returns (x * y) mod m.
func modMul(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, m)
}

// modSqr returns (x * x) mod m.
func modSqr(x, m *big.Int) *big.Int {
	return modMul(x, x, m)
}

// modPow returns x**e mod m, computed with big.Int.Exp.  e must be
// non-negative.
func modPow(x, e, m *big.Int) *big.Int {
	return new(big.Int).Exp(x, e, m)
}

// extGCD returns (g, u, v) such that g = gcd(a, b) and u*a + v*b = g, using
// the iterative extended Euclidean algorithm.  a and b may be any integers,
// including negative or zero; g is always non-negative.
func extGCD(a, b *big.Int) (g, u, v *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int)
		rem := new(big.Int)
		q.QuoRem(oldR, r, rem)

		oldR, r = r, rem

		tmp := new(big.Int).Mul(q, s)
		newS := new(big.Int).Sub(oldS, tmp)
		oldS, s = s, newS

		tmp = new(big.Int).Mul(q, t)
		newT := new(big.Int).Sub(oldT, tmp)
		oldT, t = t, newT
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// modInverse returns u mod m such that x*u = 1 mod m.  It fails with
// ErrNotInvertible when gcd(x, m) != 1.
func modInverse(x, m *big.Int) (*big.Int, error) {
	g, u, _ := extGCD(x, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		str := "value is not invertible modulo the given modulus"
		return nil, makeError(ErrNotInvertible, str)
	}
	u.Mod(u, m)
	return u, nil
}

// modDiv returns (x * y^-1) mod m.  It fails with ErrNotInvertible when y
// has no inverse modulo m.
func modDiv(x, y, m *big.Int) (*big.Int, error) {
	inv, err := modInverse(y, m)
	if err != nil {
		return nil, err
	}
	return modMul(x, inv, m), nil
}
