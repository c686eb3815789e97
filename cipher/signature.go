// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/btcsuite/btccipher/digest"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SigBytesLen is the length in bytes of a serialized recoverable signature.
const SigBytesLen = 65

const (
	// sigRecoveryIDOffset is the offset of the recovery id within a Sig.
	sigRecoveryIDOffset = 64

	// maxRecoveryID is the largest valid recovery id.  Bit 0 is the parity
	// of the y coordinate of R and bit 1 records that R.x overflowed N.
	maxRecoveryID = 3

	// compactSigMagicOffset is a value used when creating the compact
	// signature recovery code inherited from Bitcoin and has no meaning, but
	// has been retained for compatibility.
	compactSigMagicOffset = 27

	// compactSigCompPubKey is a value used when creating the compact
	// signature recovery code to indicate the original public key was
	// compressed.
	compactSigCompPubKey = 4
)

// Sig is a recoverable secp256k1 signature laid out as R (32 bytes) || S (32
// bytes) || recovery id (1 byte).  The zero value is not a valid signature.
type Sig [SigBytesLen]byte

// NewSig returns the signature held in b.  The input must be exactly
// SigBytesLen bytes with R in [1, N-1], S in [1, N/2] and a recovery id of at
// most 3.
func NewSig(b []byte) (Sig, error) {
	if len(b) != SigBytesLen {
		str := fmt.Sprintf("malformed signature: invalid length: %d",
			len(b))
		return Sig{}, makeError(ErrInvalidLength, str)
	}

	var sig Sig
	copy(sig[:], b)
	if _, _, err := sig.parse(); err != nil {
		return Sig{}, err
	}
	return sig, nil
}

// SigFromHex decodes a 130 character hex string into a Sig.
func SigFromHex(s string) (Sig, error) {
	b, err := decodeHexExact(s, SigBytesLen, "signature")
	if err != nil {
		return Sig{}, err
	}
	return NewSig(b)
}

// Null returns true if the signature is all zeros.
func (sig Sig) Null() bool {
	return sig == Sig{}
}

// RecoveryID returns the recovery id byte of the signature.
func (sig Sig) RecoveryID() byte {
	return sig[sigRecoveryIDOffset]
}

// Hex returns the lowercase hex encoding of the signature.
func (sig Sig) Hex() string {
	return hex.EncodeToString(sig[:])
}

// String returns the lowercase hex encoding of the signature.
func (sig Sig) String() string {
	return sig.Hex()
}

// MarshalText satisfies the encoding.TextMarshaler interface.
func (sig Sig) MarshalText() ([]byte, error) {
	return []byte(sig.Hex()), nil
}

// UnmarshalText satisfies the encoding.TextUnmarshaler interface.
func (sig *Sig) UnmarshalText(text []byte) error {
	s, err := SigFromHex(string(text))
	if err != nil {
		return err
	}
	*sig = s
	return nil
}

// parse validates the R, S and recovery id fields and returns R and S as mod
// N scalars.
func (sig Sig) parse() (*btcec.ModNScalar, *btcec.ModNScalar, error) {
	if sig.Null() {
		return nil, nil, makeError(ErrInvalidSignature, "signature is zero")
	}

	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(sig[0:32]); overflow {
		return nil, nil, makeError(ErrInvalidSignature, "invalid "+
			"signature: R >= group order")
	}
	if r.IsZero() {
		return nil, nil, makeError(ErrInvalidSignature, "invalid "+
			"signature: R is 0")
	}
	if overflow := s.SetByteSlice(sig[32:64]); overflow {
		return nil, nil, makeError(ErrInvalidSignature, "invalid "+
			"signature: S >= group order")
	}
	if s.IsZero() {
		return nil, nil, makeError(ErrInvalidSignature, "invalid "+
			"signature: S is 0")
	}

	// Only the low S form is accepted.  (R, N-S) with the flipped
	// recovery id is an equally valid signature over the same hash.
	if s.IsOverHalfOrder() {
		return nil, nil, makeError(ErrInvalidSignature, "invalid "+
			"signature: S is not in the lower half of the order")
	}
	if recID := sig.RecoveryID(); recID > maxRecoveryID {
		str := fmt.Sprintf("invalid signature: recovery id %d is not in "+
			"[0, %d]", recID, maxRecoveryID)
		return nil, nil, makeError(ErrInvalidSignature, str)
	}
	return &r, &s, nil
}

// SignHash signs hash with sk.  The nonce is derived deterministically from
// the key and hash per RFC6979 and S is forced into the lower half of the
// order, so signing the same hash with the same key always yields the same
// signature.
func SignHash(hash digest.SHA256, sk SecKey) (Sig, error) {
	priv, err := sk.privKey()
	if err != nil {
		return Sig{}, err
	}

	compact := ecdsa.SignCompact(priv, hash[:], true)

	// The compact format puts the recovery code first, offset by the
	// Bitcoin magic value and the compressed key flag.
	var sig Sig
	copy(sig[:sigRecoveryIDOffset], compact[1:])
	sig[sigRecoveryIDOffset] = compact[0] - compactSigMagicOffset -
		compactSigCompPubKey
	return sig, nil
}

// PubKeyFromSig recovers the public key that produced sig over hash.
func PubKeyFromSig(sig Sig, hash digest.SHA256) (PubKey, error) {
	if _, _, err := sig.parse(); err != nil {
		return PubKey{}, err
	}

	var compact [SigBytesLen]byte
	compact[0] = compactSigMagicOffset + compactSigCompPubKey +
		sig.RecoveryID()
	copy(compact[1:], sig[:sigRecoveryIDOffset])

	key, _, err := ecdsa.RecoverCompact(compact[:], hash[:])
	if err != nil {
		str := fmt.Sprintf("unable to recover public key: %v", err)
		return PubKey{}, makeError(ErrInvalidSignature, str)
	}

	var pk PubKey
	copy(pk[:], key.SerializeCompressed())
	return pk, nil
}

// VerifySignature ensures sig is a valid signature over hash made by the
// secret key belonging to pub.
func VerifySignature(pub PubKey, sig Sig, hash digest.SHA256) error {
	pubKey, err := pub.publicKey()
	if err != nil {
		return err
	}
	r, s, err := sig.parse()
	if err != nil {
		return err
	}

	recovered, err := PubKeyFromSig(sig, hash)
	if err != nil {
		return err
	}
	if recovered != pub {
		return makeError(ErrMismatch, "signature was not made by the "+
			"given public key over the given hash")
	}

	if !ecdsa.NewSignature(r, s).Verify(hash[:], pubKey) {
		return makeError(ErrInvalidSignature, "signature verification "+
			"failed")
	}
	return nil
}

// TestSecKey performs a sign, recover and verify round trip over a random
// hash to ensure sk is usable.
func TestSecKey(sk SecKey) error {
	var buf [128]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		return fmt.Errorf("unable to read random bytes: %w", err)
	}
	return TestSecKeyHash(sk, digest.SumSHA256(buf[:]))
}

// TestSecKeyHash performs a sign, recover and verify round trip over hash to
// ensure sk is usable.
func TestSecKeyHash(sk SecKey, hash digest.SHA256) error {
	pk, err := PubKeyFromSecKey(sk)
	if err != nil {
		return err
	}
	addr := AddressFromPubKey(pk)

	sig, err := SignHash(hash, sk)
	if err != nil {
		return err
	}
	if err := ChkSig(addr, hash, sig); err != nil {
		return fmt.Errorf("signature does not check against own "+
			"address: %w", err)
	}
	if err := VerifySignature(pk, sig, hash); err != nil {
		return fmt.Errorf("signature does not verify against own "+
			"public key: %w", err)
	}
	return nil
}
