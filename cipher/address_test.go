// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"
)

// TestAddressVectors ensures addresses derived from known keys encode to the
// expected text.
func TestAddressVectors(t *testing.T) {
	tests := []struct {
		name  string
		pub   string
		hash  string
		cksum string
		addr  string
	}{{
		name:  "generator",
		pub:   "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hash:  "e6c7fcea101d281b95462320397eb2955f286a31",
		cksum: "393a1258",
		addr:  "1N3FzXaF6NQRaEPUaVWbPX4fXfWC7Qbpm5",
	}, {
		name:  "2G",
		pub:   "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
		hash:  "d857a5ecbf3219e002e9b08b9424d467474f03ec",
		cksum: "a006a3ae",
		addr:  "1LiuxLSUdYqqgHjAkbtGdA3FizCtx7rRRw",
	}}

	for _, test := range tests {
		pk, err := PubKeyFromHex(test.pub)
		require.NoError(t, err, test.name)

		addr := AddressFromPubKey(pk)
		require.Equal(t, AddressVersion, addr.Version, test.name)
		require.Equal(t, test.hash, addr.Key.Hex(), test.name)
		cksum := addr.Checksum()
		require.Equal(t, hexToBytes(test.cksum), cksum[:], test.name)
		require.Equal(t, test.addr, addr.String(), test.name)

		decoded, err := DecodeBase58Address(test.addr)
		require.NoError(t, err, test.name)
		require.Equal(t, addr, decoded, test.name)
	}
}

// TestPubKeyToAddress ensures addresses verify against the key they were
// derived from and only that key.
func TestPubKeyToAddress(t *testing.T) {
	pk, sk := GenerateKeyPair()
	addr := AddressFromPubKey(pk)
	require.NoError(t, addr.Verify(pk))

	addr2, err := AddressFromSecKey(sk)
	require.NoError(t, err)
	require.Equal(t, addr, addr2)

	pk2, _ := GenerateKeyPair()
	require.ErrorIs(t, addr.Verify(pk2), ErrMismatch)
	require.ErrorIs(t, addr.Verify(PubKey{}), ErrInvalidKey)

	other := addr
	other.Version = 0x01
	require.ErrorIs(t, other.Verify(pk), ErrMismatch)

	_, err = AddressFromSecKey(SecKey{})
	require.ErrorIs(t, err, ErrInvalidKey)
}

// TestPubKeyToAddressRoundTrip ensures the text form of many generated
// addresses decodes back to an address that still verifies.
func TestPubKeyToAddressRoundTrip(t *testing.T) {
	for i := 0; i < 1024; i++ {
		pk, _ := GenerateKeyPair()
		addr := AddressFromPubKey(pk)
		if err := addr.Verify(pk); err != nil {
			t.Fatalf("address failed to verify: %v", err)
		}

		decoded, err := DecodeBase58Address(addr.String())
		if err != nil {
			t.Fatalf("unable to decode %s: %v", addr, err)
		}
		if decoded != addr {
			t.Fatalf("decoded address mismatch: got %v, want %v",
				decoded, addr)
		}
		if err := decoded.Verify(pk); err != nil {
			t.Fatalf("decoded address failed to verify: %v", err)
		}
	}
}

// TestAddressBytes ensures the binary form matches the decoded text form and
// parses back.
func TestAddressBytes(t *testing.T) {
	pk, _ := GenerateKeyPair()
	addr := AddressFromPubKey(pk)

	b := addr.Bytes()
	require.Len(t, b, AddressBytesLen)
	require.Equal(t, base58.Decode(addr.String()), b)

	addr2, err := AddressFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, addr, addr2)

	_, err = AddressFromBytes(b[:AddressBytesLen-1])
	require.ErrorIs(t, err, ErrInvalidLength)

	b[len(b)-1] ^= 0x01
	_, err = AddressFromBytes(b)
	require.ErrorIs(t, err, ErrInvalidChecksum)
}

// TestDecodeBase58AddressErrors ensures malformed address text is rejected
// with the appropriate error kind.
func TestDecodeBase58AddressErrors(t *testing.T) {
	pk, _ := GenerateKeyPair()
	addr := AddressFromPubKey(pk)
	b := addr.Bytes()

	badChecksum := append([]byte{}, b...)
	badChecksum[AddressBytesLen-1] ^= 0xff

	badKey := append([]byte{}, b...)
	badKey[5] ^= 0x01

	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"empty", "", ErrInvalidEncoding},
		{"zero digit", "0" + addr.String()[1:], ErrInvalidEncoding},
		{"capital O", addr.String() + "O", ErrInvalidEncoding},
		{"capital I", "I" + addr.String(), ErrInvalidEncoding},
		{"lowercase l", addr.String()[:10] + "l", ErrInvalidEncoding},
		{"truncated", base58.Encode(b[:AddressBytesLen-1]), ErrInvalidEncoding},
		{"too long", base58.Encode(append(b, 0x00)), ErrInvalidEncoding},
		{"short", "1", ErrInvalidEncoding},
		{"bad checksum", base58.Encode(badChecksum), ErrInvalidChecksum},
		{"bad key", base58.Encode(badKey), ErrInvalidChecksum},
	}

	for _, test := range tests {
		got, err := DecodeBase58Address(test.in)
		require.ErrorIs(t, err, test.err, test.name)
		require.True(t, got.Null(), test.name)
	}
}

// TestAddressJSON ensures addresses marshal to and from their text form.
func TestAddressJSON(t *testing.T) {
	pk, _ := GenerateKeyPair()
	in := struct {
		Address Address `json:"address"`
		PubKey  PubKey  `json:"pubkey"`
	}{AddressFromPubKey(pk), pk}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(b), in.Address.String())
	require.Contains(t, string(b), pk.Hex())

	out := in
	out.Address = Address{}
	out.PubKey = PubKey{}
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in, out)

	var bad Address
	require.ErrorIs(t, bad.UnmarshalText([]byte("notbase58!")),
		ErrInvalidEncoding)
}
