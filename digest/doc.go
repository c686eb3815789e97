// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package digest provides the fixed size digest types and hash functions used to
derive addresses, checksums and signing digests.

SHA256 digests are produced by SumSHA256 and DoubleSHA256; the latter is used
for address checksums.  Ripemd160 digests are only used to shorten a public key
down to the 20-byte key hash carried by an address.

Hex decoding errors wrap the error kinds defined by the cipher package, so
callers can test them with errors.Is(err, cipher.ErrInvalidEncoding) and
friends.
*/
package digest
