// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ripemd160"
)

// TestPubKeyFromSecKey ensures public keys are derived correctly for known
// scalars and that invalid secret keys are rejected.
func TestPubKeyFromSecKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		pub  string
	}{{
		name: "generator",
		key:  "0000000000000000000000000000000000000000000000000000000000000001",
		pub:  "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	}, {
		name: "negated generator",
		key:  "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
		pub:  "0379be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	}, {
		name: "2G",
		key:  "0000000000000000000000000000000000000000000000000000000000000002",
		pub:  "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
	}}

	for _, test := range tests {
		sk, err := SecKeyFromHex(test.key)
		require.NoError(t, err, test.name)

		pk, err := PubKeyFromSecKey(sk)
		require.NoError(t, err, test.name)
		require.Equal(t, test.pub, pk.Hex(), test.name)
		require.NoError(t, pk.Verify(), test.name)
	}

	pk, sk := GenerateKeyPair()
	pk2, err := PubKeyFromSecKey(sk)
	require.NoError(t, err)
	require.Equal(t, pk, pk2)

	_, err = PubKeyFromSecKey(SecKey{})
	require.ErrorIs(t, err, ErrInvalidKey)

	var overflow SecKey
	copy(overflow[:], hexToBytes(curveOrderHex))
	_, err = PubKeyFromSecKey(overflow)
	require.ErrorIs(t, err, ErrInvalidKey)
}

// TestNewPubKey ensures public keys are only created from exactly 33 bytes
// that decode to a point on the curve.
func TestNewPubKey(t *testing.T) {
	for _, n := range []int{0, 31, 32, 34, 65, 100} {
		_, err := NewPubKey(randBytes(t, n))
		require.ErrorIs(t, err, ErrInvalidLength, "%d bytes", n)
	}

	pk, _ := GenerateKeyPair()
	pk2, err := NewPubKey(pk[:])
	require.NoError(t, err)
	require.Equal(t, pk, pk2)

	uncompressed := append([]byte{0x04}, pk[1:]...)
	_, err = NewPubKey(uncompressed)
	require.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewPubKey(make([]byte, PubKeyBytesLen))
	require.ErrorIs(t, err, ErrInvalidKey)
}

// TestPubKeyVerify ensures bytes that are not a compressed curve point fail
// verification.
func TestPubKeyVerify(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{{
		name: "zero",
		key:  "000000000000000000000000000000000000000000000000000000000000000000",
	}, {
		name: "uncompressed prefix",
		key:  "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	}, {
		name: "hybrid prefix",
		key:  "0679be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	}, {
		name: "x == P",
		key:  "02fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
	}, {
		name: "x > P",
		key:  "03ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	}}

	for _, test := range tests {
		var pk PubKey
		copy(pk[:], hexToBytes(test.key))
		err := pk.Verify()
		require.ErrorIs(t, err, ErrInvalidKey, test.name)
	}

	// Random buffers without a compressed format byte never verify.
	for i := 0; i < 10; i++ {
		var pk PubKey
		copy(pk[:], randBytes(t, PubKeyBytesLen))
		pk[0] |= 0x04
		require.ErrorIs(t, pk.Verify(), ErrInvalidKey, spew.Sdump(pk))
	}
}

// TestPubKeyVerifyGenerated ensures generated keys always verify.
func TestPubKeyVerifyGenerated(t *testing.T) {
	for i := 0; i < 1024; i++ {
		pk, sk := GenerateKeyPair()
		if err := pk.Verify(); err != nil {
			t.Fatalf("generated public key failed to verify: %v\n%s",
				err, spew.Sdump(pk))
		}
		if err := sk.Verify(); err != nil {
			t.Fatalf("generated secret key failed to verify: %v", err)
		}
	}
}

// TestPubKeyFromHex ensures hex decoding enforces encoding, exact length and
// point validity.
func TestPubKeyFromHex(t *testing.T) {
	_, err := PubKeyFromHex("")
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = PubKeyFromHex("cascs")
	require.ErrorIs(t, err, ErrInvalidEncoding)

	pk, _ := GenerateKeyPair()

	_, err = PubKeyFromHex(hex.EncodeToString(pk[:PubKeyBytesLen/2]))
	require.ErrorIs(t, err, ErrInvalidLength)

	p1, err := PubKeyFromHex(pk.Hex())
	require.NoError(t, err)
	require.Equal(t, pk, p1)

	// Hex encoding is stable across round trips.
	require.Equal(t, pk.Hex(), p1.Hex())
	require.Len(t, pk.Hex(), 2*PubKeyBytesLen)
	require.Equal(t, pk.Hex(), pk.String())
}

// TestPubKeyToAddressHash ensures the address hash is
// ripemd160(sha256(sha256(pubkey))).
func TestPubKeyToAddressHash(t *testing.T) {
	pk, _ := GenerateKeyPair()
	h := pk.ToAddressHash()

	x := sha256.Sum256(pk[:])
	x = sha256.Sum256(x[:])
	rh := ripemd160.New()
	rh.Write(x[:])
	y := rh.Sum(nil)

	if !bytes.Equal(h[:], y) {
		t.Fatalf("unexpected address hash: got %x, want %x", h[:], y)
	}
	require.Equal(t, h, pk.ToAddressHash())
}

// TestPubKeyText ensures public keys round trip through their text form.
func TestPubKeyText(t *testing.T) {
	pk, _ := GenerateKeyPair()
	text, err := pk.MarshalText()
	require.NoError(t, err)

	var pk2 PubKey
	require.NoError(t, pk2.UnmarshalText(text))
	require.Equal(t, pk, pk2)
	require.Error(t, pk2.UnmarshalText([]byte("02")))
}
