// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"github.com/btcsuite/btccipher/internal/cipherr"
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind = cipherr.ErrorKind

// Error identifies an error related to keys, signatures or addresses.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error = cipherr.Error

// These constants are used to identify a specific Error.  They are the same
// kinds returned by the digest package.
const (
	// ErrInvalidLength indicates an input whose byte count does not match
	// the exact size required for the target type.
	ErrInvalidLength = cipherr.ErrInvalidLength

	// ErrInvalidKey indicates correctly sized key bytes that are not a valid
	// secret scalar or public curve point.
	ErrInvalidKey = cipherr.ErrInvalidKey

	// ErrInvalidSignature indicates a malformed or zero signature, or one
	// that fails verification.
	ErrInvalidSignature = cipherr.ErrInvalidSignature

	// ErrInvalidEncoding indicates malformed hex or base58 text.
	ErrInvalidEncoding = cipherr.ErrInvalidEncoding

	// ErrInvalidChecksum indicates an address whose checksum does not match
	// its payload.
	ErrInvalidChecksum = cipherr.ErrInvalidChecksum

	// ErrMismatch indicates valid components that do not belong together,
	// such as a signature made by a different key than the one given.
	ErrMismatch = cipherr.ErrMismatch
)

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return cipherr.New(kind, desc)
}
