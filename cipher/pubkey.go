// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btccipher/digest"
	"github.com/btcsuite/btcd/btcec/v2"
)

// PubKeyBytesLen is the bytes length of a serialized compressed public key.
const PubKeyBytesLen = 33

const (
	pubkeyCompressedEven byte = 0x2 // y_bit clear + x coord
	pubkeyCompressedOdd  byte = 0x3 // y_bit set + x coord
)

// PubKey is a secp256k1 public key in compressed form: a one byte parity
// prefix followed by the 32-byte x coordinate.  The zero value is not a valid
// key.
type PubKey [PubKeyBytesLen]byte

// NewPubKey returns the public key held in b.  The input must be exactly
// PubKeyBytesLen bytes and decode to a point on the curve.
func NewPubKey(b []byte) (PubKey, error) {
	if len(b) != PubKeyBytesLen {
		str := fmt.Sprintf("malformed public key: invalid length: %d",
			len(b))
		return PubKey{}, makeError(ErrInvalidLength, str)
	}

	var pk PubKey
	copy(pk[:], b)
	if err := pk.Verify(); err != nil {
		return PubKey{}, err
	}
	return pk, nil
}

// PubKeyFromHex decodes a 66 character hex string into a PubKey.
func PubKeyFromHex(s string) (PubKey, error) {
	b, err := decodeHexExact(s, PubKeyBytesLen, "public key")
	if err != nil {
		return PubKey{}, err
	}
	return NewPubKey(b)
}

// PubKeyFromSecKey derives the public key for sk by multiplying the base
// point by the secret scalar.  An invalid secret key is rejected rather than
// producing a degenerate point.
func PubKeyFromSecKey(sk SecKey) (PubKey, error) {
	priv, err := sk.privKey()
	if err != nil {
		return PubKey{}, err
	}

	var pk PubKey
	copy(pk[:], priv.PubKey().SerializeCompressed())
	return pk, nil
}

// Verify returns an error unless the key decodes to a point on the curve.
func (pk PubKey) Verify() error {
	_, err := pk.publicKey()
	return err
}

// Null returns true if the key is the all-zero sentinel.
func (pk PubKey) Null() bool {
	return pk == PubKey{}
}

// Hex returns the lowercase hex encoding of the key.
func (pk PubKey) Hex() string {
	return hex.EncodeToString(pk[:])
}

// String returns the lowercase hex encoding of the key.
func (pk PubKey) String() string {
	return pk.Hex()
}

// MarshalText satisfies the encoding.TextMarshaler interface.
func (pk PubKey) MarshalText() ([]byte, error) {
	return []byte(pk.Hex()), nil
}

// UnmarshalText satisfies the encoding.TextUnmarshaler interface.
func (pk *PubKey) UnmarshalText(text []byte) error {
	k, err := PubKeyFromHex(string(text))
	if err != nil {
		return err
	}
	*pk = k
	return nil
}

// ToAddressHash returns ripemd160(sha256(sha256(pk))), the key hash carried
// by an Address.
func (pk PubKey) ToAddressHash() digest.Ripemd160 {
	h := digest.DoubleSHA256(pk[:])
	return digest.HashRipemd160(h[:])
}

// publicKey parses the key into its btcec form.
func (pk PubKey) publicKey() (*btcec.PublicKey, error) {
	if pk.Null() {
		return nil, makeError(ErrInvalidKey, "public key is zero")
	}

	format := pk[0]
	if format != pubkeyCompressedEven && format != pubkeyCompressedOdd {
		str := fmt.Sprintf("invalid public key: unsupported format: %#x",
			format)
		return nil, makeError(ErrInvalidKey, str)
	}

	key, err := btcec.ParsePubKey(pk[:])
	if err != nil {
		str := fmt.Sprintf("invalid public key: %v", err)
		return nil, makeError(ErrInvalidKey, str)
	}
	return key, nil
}
