// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btccipher/internal/cipherr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

const (
	// SHA256Size is the number of bytes in a SHA256 digest.
	SHA256Size = chainhash.HashSize

	// Ripemd160Size is the number of bytes in a Ripemd160 digest.
	Ripemd160Size = ripemd160.Size
)

// SHA256 is a 32-byte SHA-256 digest.
type SHA256 [SHA256Size]byte

// Ripemd160 is a 20-byte RIPEMD-160 digest.
type Ripemd160 [Ripemd160Size]byte

// SumSHA256 calculates sha256(b).
func SumSHA256(b []byte) SHA256 {
	return SHA256(chainhash.HashH(b))
}

// DoubleSHA256 calculates sha256(sha256(b)).
func DoubleSHA256(b []byte) SHA256 {
	return SHA256(chainhash.DoubleHashH(b))
}

// AddSHA256 returns the SHA256 digest of a concatenated with b.
func AddSHA256(a, b SHA256) SHA256 {
	var buf [2 * SHA256Size]byte
	copy(buf[:SHA256Size], a[:])
	copy(buf[SHA256Size:], b[:])
	return SumSHA256(buf[:])
}

// HashRipemd160 calculates ripemd160(b).
func HashRipemd160(b []byte) Ripemd160 {
	hasher := ripemd160.New()
	hasher.Write(b)

	var h Ripemd160
	copy(h[:], hasher.Sum(nil))
	return h
}

// Hex returns the lowercase hex encoding of the digest.
func (h SHA256) Hex() string {
	return hex.EncodeToString(h[:])
}

// String returns the lowercase hex encoding of the digest.
func (h SHA256) String() string {
	return h.Hex()
}

// Null returns true if the digest is all zeros.
func (h SHA256) Null() bool {
	return h == SHA256{}
}

// MarshalText satisfies the encoding.TextMarshaler interface.
func (h SHA256) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText satisfies the encoding.TextUnmarshaler interface.
func (h *SHA256) UnmarshalText(text []byte) error {
	d, err := SHA256FromHex(string(text))
	if err != nil {
		return err
	}
	*h = d
	return nil
}

// SHA256FromHex decodes a 64 character hex string into a SHA256 digest.
func SHA256FromHex(s string) (SHA256, error) {
	var h SHA256
	if err := decodeFixedHex(h[:], s); err != nil {
		return SHA256{}, err
	}
	return h, nil
}

// Hex returns the lowercase hex encoding of the digest.
func (h Ripemd160) Hex() string {
	return hex.EncodeToString(h[:])
}

// String returns the lowercase hex encoding of the digest.
func (h Ripemd160) String() string {
	return h.Hex()
}

// Null returns true if the digest is all zeros.
func (h Ripemd160) Null() bool {
	return h == Ripemd160{}
}

// Ripemd160FromHex decodes a 40 character hex string into a Ripemd160 digest.
func Ripemd160FromHex(s string) (Ripemd160, error) {
	var h Ripemd160
	if err := decodeFixedHex(h[:], s); err != nil {
		return Ripemd160{}, err
	}
	return h, nil
}

// decodeFixedHex decodes s into dst, which must be filled exactly.
func decodeFixedHex(dst []byte, s string) error {
	b, err := DecodeHex(s)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		str := fmt.Sprintf("malformed digest: decoded %d bytes, want %d",
			len(b), len(dst))
		return cipherr.New(cipherr.ErrInvalidLength, str)
	}
	copy(dst, b)
	return nil
}

// DecodeHex decodes a non-empty hex string.  Empty strings, odd lengths and
// characters outside of the hex alphabet are all reported as
// ErrInvalidEncoding.
func DecodeHex(s string) ([]byte, error) {
	if s == "" {
		return nil, cipherr.New(cipherr.ErrInvalidEncoding,
			"invalid hex: empty string")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("invalid hex %q: %v", s, err)
		return nil, cipherr.New(cipherr.ErrInvalidEncoding, str)
	}
	return b, nil
}
