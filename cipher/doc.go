// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package cipher implements the key, signature and address primitives of the
value transfer network on top of the secp256k1 curve.

All types are fixed size byte arrays with value semantics.  The zero value of
each of SecKey, PubKey and Sig is the invalid sentinel and never passes
verification.  Every fallible operation returns an error wrapping one of the
ErrorKind values, so callers can use errors.Is to tell a malformed length
apart from, say, a signature made by the wrong key.

# Keys

A SecKey is a 32-byte scalar in [1, N-1] and a PubKey is the 33-byte compressed
encoding of the corresponding curve point.  Pairs come from GenerateKeyPair,
which draws from crypto/rand, or GenerateDeterministicKeyPair, which derives a
single pair from a seed.

# Signatures

SignHash produces a 65-byte recoverable signature, R || S || recovery id, with
an RFC6979 deterministic nonce and a low S value.  The signer's public key can
be recovered with PubKeyFromSig, which is what allows ChkSig to check a
signature against an address without knowing the public key.

# Addresses

An Address carries a version byte and ripemd160(sha256(sha256(pubkey))).  Its
text form is the Base58Check encoding of version || key hash || checksum, where
the checksum is the first four bytes of the double SHA256 of the version and
key hash.

# Errors

Errors returned by this package are of type cipher.Error.  The Err field holds
the ErrorKind, for example:

	if _, err := cipher.DecodeBase58Address(s); errors.Is(err, cipher.ErrInvalidChecksum) {
		// The address was mistyped.
	}
*/
package cipher
