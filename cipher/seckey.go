// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// SecKeyBytesLen defines the length in bytes of a serialized secret key.
const SecKeyBytesLen = 32

// SecKey is a secp256k1 secret key: a big-endian scalar in [1, N-1] where N
// is the order of the curve's base point.  The zero value is not a valid key.
type SecKey [SecKeyBytesLen]byte

// NewSecKey returns the secret key held in b.  The input must be exactly
// SecKeyBytesLen bytes and encode a nonzero scalar below the curve order.
func NewSecKey(b []byte) (SecKey, error) {
	if len(b) != SecKeyBytesLen {
		str := fmt.Sprintf("malformed secret key: invalid length: %d",
			len(b))
		return SecKey{}, makeError(ErrInvalidLength, str)
	}

	var sk SecKey
	copy(sk[:], b)
	if err := sk.Verify(); err != nil {
		return SecKey{}, err
	}
	return sk, nil
}

// SecKeyFromHex decodes a 64 character hex string into a SecKey.
func SecKeyFromHex(s string) (SecKey, error) {
	b, err := decodeHexExact(s, SecKeyBytesLen, "secret key")
	if err != nil {
		return SecKey{}, err
	}
	return NewSecKey(b)
}

// Verify returns an error unless the key is a nonzero scalar strictly less
// than the curve order.
func (sk SecKey) Verify() error {
	var scalar secp.ModNScalar
	defer scalar.Zero()

	if overflow := scalar.SetByteSlice(sk[:]); overflow {
		return makeError(ErrInvalidKey, "secret key is not less than the "+
			"curve order")
	}
	if scalar.IsZero() {
		return makeError(ErrInvalidKey, "secret key is zero")
	}
	return nil
}

// Null returns true if the key is the all-zero sentinel.
func (sk SecKey) Null() bool {
	return sk == SecKey{}
}

// Hex returns the lowercase hex encoding of the key.
func (sk SecKey) Hex() string {
	return hex.EncodeToString(sk[:])
}

// MarshalText satisfies the encoding.TextMarshaler interface.
func (sk SecKey) MarshalText() ([]byte, error) {
	return []byte(sk.Hex()), nil
}

// UnmarshalText satisfies the encoding.TextUnmarshaler interface.
func (sk *SecKey) UnmarshalText(text []byte) error {
	k, err := SecKeyFromHex(string(text))
	if err != nil {
		return err
	}
	*sk = k
	return nil
}

// privKey returns the btcec form of the key after ensuring it is valid.
// btcec.PrivKeyFromBytes silently reduces its input modulo N, so the range
// check must happen first.
func (sk SecKey) privKey() (*btcec.PrivateKey, error) {
	if err := sk.Verify(); err != nil {
		return nil, err
	}
	priv, _ := btcec.PrivKeyFromBytes(sk[:])
	return priv, nil
}
