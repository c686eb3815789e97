// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package sigcache provides a bounded cache of signatures that have already been
verified.

Recovering a public key from a signature and verifying it are by far the most
expensive operations in the cipher package.  Services that see the same signed
payload many times, for example once when relaying it and again when storing
it, can route their checks through a SigCache to pay that cost once:

	cache := sigcache.New(100000)
	if err := cache.ChkSig(addr, hash, sig); err != nil {
		return err
	}

Only successful verifications are cached.  The cache evicts its least recently
used entry when full, and a cache created with a size of zero is a pass through
to the cipher package.
*/
package sigcache
