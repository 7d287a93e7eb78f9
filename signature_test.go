// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"errors"
	"math/big"
	"testing"
)

func TestSignatureSerializeParseRoundTrip(t *testing.T) {
	r := NewModNScalar(big.NewInt(12345))
	s := NewModNScalar(big.NewInt(67890))
	sig := NewSignature(r, s)

	der := sig.Serialize()
	if der[0] != asn1SequenceID {
		t.Fatalf("Serialize: first byte = %#x, want %#x", der[0], asn1SequenceID)
	}

	got, err := ParseSignature(der)
	if err != nil {
		t.Fatalf("ParseSignature: unexpected error: %v", err)
	}
	if !got.IsEqual(sig) {
		t.Errorf("round trip mismatch: got (%v, %v), want (%v, %v)",
			got.R.Int(), got.S.Int(), sig.R.Int(), sig.S.Int())
	}
}

// TestSignatureDER71Bytes constructs an R whose top bit is set (forcing a
// 0x00 padding byte per DER's unsigned-integer encoding) and a 32-byte S
// whose top bit is clear (no padding), producing the same 71-byte shape
// described for DER-encoded secp256k1 signatures: 0x30 0x45 0x02 0x21 0x00
// <32 R bytes> 0x02 0x20 <32 S bytes>.
func TestSignatureDER71Bytes(t *testing.T) {
	rVal := new(big.Int).Lsh(big.NewInt(1), 255) // top bit set, 32 raw bytes
	rVal.Add(rVal, big.NewInt(0xed81ff19))
	sVal := new(big.Int).Lsh(big.NewInt(0x7a986d95), 224) // 32 raw bytes, top bit clear

	r := NewModNScalar(rVal)
	s := NewModNScalar(sVal)
	sig := NewSignature(r, s)

	der := sig.Serialize()
	if len(der) != 71 {
		t.Fatalf("Serialize length = %d, want 71", len(der))
	}
	wantPrefix := []byte{0x30, 0x45, 0x02, 0x21, 0x00}
	for i, b := range wantPrefix {
		if der[i] != b {
			t.Fatalf("Serialize prefix byte %d = %#x, want %#x", i, der[i], b)
		}
	}

	got, err := ParseSignature(der)
	if err != nil {
		t.Fatalf("ParseSignature: unexpected error: %v", err)
	}
	if !got.IsEqual(sig) {
		t.Errorf("round trip mismatch after DER encode/decode")
	}
}

func TestParseSignatureErrors(t *testing.T) {
	valid := NewSignature(
		NewModNScalar(big.NewInt(1)),
		NewModNScalar(big.NewInt(1)),
	).Serialize()

	tests := []struct {
		name string
		in   []byte
		want ErrorKind
	}{
		{"too short", []byte{0x30, 0x02, 0x02, 0x01}, ErrSigTooShort},
		{"too long", make([]byte, 73), ErrSigTooLong},
		{"bad sequence id", func() []byte {
			b := append([]byte(nil), valid...)
			b[0] = 0x00
			return b
		}(), ErrSigInvalidSeqID},
		{"bad length byte", func() []byte {
			b := append([]byte(nil), valid...)
			b[1]++
			return b
		}(), ErrSigInvalidLen},
		{"trailing bytes", append(append([]byte(nil), valid...), 0x00), ErrSigInvalidLen},
	}

	for _, test := range tests {
		_, err := ParseSignature(test.in)
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
}

func TestParseSignatureRejectsZeroAndOverflow(t *testing.T) {
	zero := NewModNScalar(big.NewInt(0))
	one := NewModNScalar(big.NewInt(1))

	// Serialize encodes a zero R as a single 0x00 content byte
	// (canonicalInt of zero), which is exactly the DER blob ParseSignature
	// must reject here.
	sig := &Signature{R: zero, S: one}
	der := sig.Serialize()
	if _, err := ParseSignature(der); !errors.Is(err, ErrSigRIsZero) {
		t.Errorf("R = 0: got %v, want ErrSigRIsZero", err)
	}

	sig = &Signature{R: one, S: zero}
	der = sig.Serialize()
	if _, err := ParseSignature(der); !errors.Is(err, ErrSigSIsZero) {
		t.Errorf("S = 0: got %v, want ErrSigSIsZero", err)
	}
}

func TestSignatureIsEqual(t *testing.T) {
	a := NewSignature(NewModNScalar(big.NewInt(1)), NewModNScalar(big.NewInt(2)))
	b := NewSignature(NewModNScalar(big.NewInt(1)), NewModNScalar(big.NewInt(2)))
	c := NewSignature(NewModNScalar(big.NewInt(1)), NewModNScalar(big.NewInt(3)))

	if !a.IsEqual(b) {
		t.Errorf("identical signatures reported unequal")
	}
	if a.IsEqual(c) {
		t.Errorf("differing signatures reported equal")
	}
}
