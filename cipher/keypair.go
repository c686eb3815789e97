// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/btcsuite/btccipher/digest"
)

// GenerateKeyPair creates a new random key pair using the operating system's
// cryptographically secure random number generator.  Out of range candidates
// are discarded and redrawn, so the returned keys always verify.
//
// It panics only if the system random source fails.
func GenerateKeyPair() (PubKey, SecKey) {
	pk, sk, err := GenerateKeyPairFromReader(rand.Reader)
	if err != nil {
		log.Criticalf("Unable to generate key pair: %v", err)
		panic(err)
	}
	return pk, sk
}

// GenerateKeyPairFromReader is GenerateKeyPair drawing its randomness from r.
// An error is only returned when r fails to provide 32 bytes.
func GenerateKeyPairFromReader(r io.Reader) (PubKey, SecKey, error) {
	for {
		var sk SecKey
		if _, err := io.ReadFull(r, sk[:]); err != nil {
			return PubKey{}, SecKey{}, fmt.Errorf("unable to read random "+
				"bytes: %w", err)
		}

		pk, err := PubKeyFromSecKey(sk)
		if err != nil {
			log.Tracef("Discarding secret key candidate: %v", err)
			continue
		}
		return pk, sk, nil
	}
}

// GenerateDeterministicKeyPair derives a key pair from seed.  The secret key
// is sha256(seed), rehashed until it falls in the valid scalar range, so the
// same seed always yields the same pair.
//
// Only a single pair is derived per seed.  This is not a key stream and must
// not be used to expand a seed into multiple keys.
func GenerateDeterministicKeyPair(seed []byte) (PubKey, SecKey, error) {
	if len(seed) == 0 {
		return PubKey{}, SecKey{}, makeError(ErrInvalidLength,
			"seed must not be empty")
	}

	candidate := digest.SumSHA256(seed)
	for {
		sk := SecKey(candidate)
		pk, err := PubKeyFromSecKey(sk)
		if err == nil {
			return pk, sk, nil
		}

		log.Tracef("Rehashing deterministic secret key candidate: %v", err)
		candidate = digest.SumSHA256(candidate[:])
	}
}
