// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestGetSecretKey(t *testing.T) {
	if _, ok := GetSecretKey(make([]byte, 32)); ok {
		t.Errorf("GetSecretKey(all zero): expected failure")
	}
	if _, ok := GetSecretKey([]byte{0x01}); !ok {
		t.Errorf("GetSecretKey(0x01): expected success")
	}
}

func TestNewPrivateKeyRejectsZero(t *testing.T) {
	if _, err := NewPrivateKey(ModNScalar{}); err == nil {
		t.Errorf("NewPrivateKey(0): expected error")
	} else if !errors.Is(err, ErrPubKeyInvalidFormat) {
		t.Errorf("NewPrivateKey(0): got %v, want ErrPubKeyInvalidFormat", err)
	}

	sec := NewModNScalar(big.NewInt(1))
	priv, err := NewPrivateKey(sec)
	if err != nil {
		t.Fatalf("NewPrivateKey(1): unexpected error: %v", err)
	}
	if !priv.Key.Equals(sec) {
		t.Errorf("NewPrivateKey(1): key mismatch")
	}
}

func TestPrivKeyFromBytesRoundTrip(t *testing.T) {
	in := bytes.Repeat([]byte{0x11}, PrivKeyBytesLen)
	priv, err := PrivKeyFromBytes(in)
	if err != nil {
		t.Fatalf("PrivKeyFromBytes: unexpected error: %v", err)
	}
	out := priv.Serialize()
	if !bytes.Equal(in, out) {
		t.Errorf("round trip mismatch: got %x want %x", out, in)
	}
	if len(out) != PrivKeyBytesLen {
		t.Errorf("Serialize length = %d, want %d", len(out), PrivKeyBytesLen)
	}
}

func TestPrivKeyFromBytesRejectsZero(t *testing.T) {
	if _, err := PrivKeyFromBytes(make([]byte, PrivKeyBytesLen)); err == nil {
		t.Errorf("PrivKeyFromBytes(all zero): expected error")
	}
}

func TestGeneratePrivateKey(t *testing.T) {
	priv, err := GenerateSecp256k1PrivateKey()
	if err != nil {
		t.Fatalf("GenerateSecp256k1PrivateKey: unexpected error: %v", err)
	}
	if priv.Key.IsZero() {
		t.Errorf("generated key is zero")
	}

	pub := priv.PubKey()
	if !pub.IsOnCurve() {
		t.Errorf("PubKey() produced a point not on the curve")
	}
}

func TestPrivateKeyZero(t *testing.T) {
	priv, err := PrivKeyFromBytes([]byte{0x01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	priv.Zero()
	if !priv.Key.IsZero() {
		t.Errorf("Zero() did not clear the key")
	}
}

func TestPubKeyMatchesScalarMultG(t *testing.T) {
	sec := NewModNScalar(big.NewInt(5))
	priv, err := NewPrivateKey(sec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := G.ScalarMult(sec)
	got := priv.PubKey()
	if !got.point.Equals(want) {
		t.Errorf("PubKey() = (%v, %v), want (%v, %v)",
			got.X().Int(), got.Y().Int(), want.X().Int(), want.Y().Int())
	}
}
