// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sigcache

import (
	"github.com/btcsuite/btccipher/cipher"
	"github.com/btcsuite/btccipher/digest"
	"github.com/decred/dcrd/lru"
)

// sigInfo represents an entry in the SigCache. Entries in the sigcache are a
// 3-tuple: (sigHash, sig, pubKey).  All fields are fixed size arrays so the
// struct is directly usable as a map key.
type sigInfo struct {
	sigHash digest.SHA256
	sig     cipher.Sig
	pubKey  cipher.PubKey
}

// SigCache implements a signature verification cache with a least recently
// used eviction policy.  Only valid signatures will be added to the cache.
// Checking a (hash, signature, public key) triple that has already been
// verified is then a map lookup rather than a public key recovery followed by
// an ECDSA verification.
type SigCache struct {
	validSigs  lru.Cache
	maxEntries uint
}

// New creates and initializes a new instance of SigCache.  Its sole parameter
// 'maxEntries' represents the maximum number of entries allowed to exist in
// the SigCache at any particular moment.  The least recently used entry is
// evicted to make room for new entries that would cause the number of entries
// in the cache to exceed the max.  A SigCache created with a max of zero never
// stores anything.
func New(maxEntries uint) *SigCache {
	return &SigCache{
		validSigs:  lru.NewCache(maxEntries),
		maxEntries: maxEntries,
	}
}

// Exists returns true if an existing entry of 'sig' over 'sigHash' for public
// key 'pubKey' is found within the SigCache.  Otherwise, false is returned.
//
// NOTE: This function is safe for concurrent access.
func (s *SigCache) Exists(sigHash digest.SHA256, sig cipher.Sig, pubKey cipher.PubKey) bool {
	if s.maxEntries == 0 {
		return false
	}
	return s.validSigs.Contains(sigInfo{sigHash, sig, pubKey})
}

// Add adds an entry for a signature over 'sigHash' under public key 'pubKey'
// to the signature cache.  In the event that the SigCache is 'full', the least
// recently used entry is evicted in order to make space for the new entry.
//
// NOTE: This function is safe for concurrent access.
func (s *SigCache) Add(sigHash digest.SHA256, sig cipher.Sig, pubKey cipher.PubKey) {
	if s.maxEntries == 0 {
		return
	}
	s.validSigs.Add(sigInfo{sigHash, sig, pubKey})
}

// VerifySignature behaves exactly like cipher.VerifySignature, but returns
// early for triples that have previously verified.  Only successful
// verifications are recorded, so a cached failure can never mask a later
// valid check.
//
// NOTE: This function is safe for concurrent access.
func (s *SigCache) VerifySignature(pubKey cipher.PubKey, sig cipher.Sig, sigHash digest.SHA256) error {
	if s.Exists(sigHash, sig, pubKey) {
		log.Tracef("Signature cache hit for %v", sigHash)
		return nil
	}

	if err := cipher.VerifySignature(pubKey, sig, sigHash); err != nil {
		return err
	}

	s.Add(sigHash, sig, pubKey)
	log.Tracef("Added signature over %v to cache", sigHash)
	return nil
}

// ChkSig behaves exactly like cipher.ChkSig, but consults the cache for the
// recovered public key before performing the full verification.
//
// NOTE: This function is safe for concurrent access.
func (s *SigCache) ChkSig(addr cipher.Address, sigHash digest.SHA256, sig cipher.Sig) error {
	pubKey, err := cipher.PubKeyFromSig(sig, sigHash)
	if err != nil {
		return err
	}
	if err := addr.Verify(pubKey); err != nil {
		return err
	}
	return s.VerifySignature(pubKey, sig, sigHash)
}
