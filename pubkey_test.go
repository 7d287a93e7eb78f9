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

	"github.com/davecgh/go-spew/spew"
)

func TestPubKeySerializeParseRoundTrip(t *testing.T) {
	sec := NewModNScalar(big.NewInt(12345))
	priv, err := NewPrivateKey(sec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pub := priv.PubKey()

	uncompressed := pub.SerializeUncompressed()
	if len(uncompressed) != PubKeyBytesLenUncompressed {
		t.Fatalf("uncompressed length = %d, want %d",
			len(uncompressed), PubKeyBytesLenUncompressed)
	}
	if uncompressed[0] != pubkeyUncompressed {
		t.Errorf("uncompressed format byte = %#x, want %#x", uncompressed[0], pubkeyUncompressed)
	}

	gotUncompressed, err := ParsePubKey(uncompressed)
	if err != nil {
		t.Fatalf("ParsePubKey(uncompressed): unexpected error: %v", err)
	}
	if !gotUncompressed.IsEqual(pub) {
		t.Errorf("uncompressed round trip mismatch:\ngot:  %s\nwant: %s",
			spew.Sdump(gotUncompressed), spew.Sdump(pub))
	}

	compressed := pub.SerializeCompressed()
	if len(compressed) != PubKeyBytesLenCompressed {
		t.Fatalf("compressed length = %d, want %d",
			len(compressed), PubKeyBytesLenCompressed)
	}

	gotCompressed, err := ParsePubKey(compressed)
	if err != nil {
		t.Fatalf("ParsePubKey(compressed): unexpected error: %v", err)
	}
	if !gotCompressed.IsEqual(pub) {
		t.Errorf("compressed round trip mismatch:\ngot:  %s\nwant: %s",
			spew.Sdump(gotCompressed), spew.Sdump(pub))
	}
	if !gotCompressed.IsOnCurve() {
		t.Errorf("point recovered from compressed encoding is not on curve")
	}
}

func TestParsePubKeyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want ErrorKind
	}{
		{"empty", nil, ErrPubKeyInvalidLen},
		{"bad length", make([]byte, 10), ErrPubKeyInvalidLen},
		{"bad uncompressed format byte", append([]byte{0x05}, make([]byte, 64)...), ErrPubKeyInvalidFormat},
		{"bad compressed format byte", append([]byte{0x05}, make([]byte, 32)...), ErrPubKeyInvalidFormat},
	}

	for _, test := range tests {
		_, err := ParsePubKey(test.in)
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got error kind %v, want %v", test.name, err, test.want)
		}
	}
}

func TestParsePubKeyXTooBig(t *testing.T) {
	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = pubkeyUncompressed
	// Field prime bytes, guaranteeing x >= p.
	copy(b[1:33], fieldPrime.Bytes())
	if _, err := ParsePubKey(b); !errors.Is(err, ErrPubKeyXTooBig) {
		t.Errorf("got %v, want ErrPubKeyXTooBig", err)
	}
}

func TestParsePubKeyCompressedNotOnCurve(t *testing.T) {
	b := make([]byte, PubKeyBytesLenCompressed)
	b[0] = pubkeyCompressedEven
	// x = 5: 5^3 + 7 = 132 is a quadratic non-residue mod p, so no point on
	// the curve has this x coordinate.
	b[32] = 0x05
	_, err := ParsePubKey(b)
	if err == nil {
		t.Fatalf("ParsePubKey: expected ErrPubKeyNotOnCurve, got nil")
	}
	if !errors.Is(err, ErrPubKeyNotOnCurve) {
		t.Errorf("got %v, want ErrPubKeyNotOnCurve", err)
	}
}

func TestPaddedAppend(t *testing.T) {
	got := paddedAppend(4, nil, []byte{0x01, 0x02})
	want := []byte{0x00, 0x00, 0x01, 0x02}
	if !bytes.Equal(got, want) {
		t.Errorf("paddedAppend(4, nil, [01,02]) = %x, want %x", got, want)
	}
}
