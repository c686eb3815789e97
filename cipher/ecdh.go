// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"github.com/btcsuite/btccipher/digest"
	"github.com/btcsuite/btcd/btcec/v2"
)

// ECDH generates a shared secret from a public key and a secret key using
// Diffie-Hellman key exchange.  The x coordinate of sk*pub is hashed with
// SHA256 to produce the 32-byte result, so ECDH(pubB, secA) equals
// ECDH(pubA, secB).
func ECDH(pub PubKey, sk SecKey) (digest.SHA256, error) {
	pubKey, err := pub.publicKey()
	if err != nil {
		return digest.SHA256{}, err
	}
	priv, err := sk.privKey()
	if err != nil {
		return digest.SHA256{}, err
	}

	// RFC5903 Section 9 states we should only return x.
	x := btcec.GenerateSharedSecret(priv, pubKey)
	return digest.SumSHA256(x), nil
}
