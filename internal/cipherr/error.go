// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cipherr houses the error kinds shared by the key, signature, address
// and digest packages so that a single errors.Is check works regardless of
// which package produced the error.
package cipherr

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidLength indicates an input whose byte count does not match the
	// exact fixed size required for the target type.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidKey indicates correctly sized key bytes that do not satisfy
	// the validity rules of the curve, such as a zero or out of range scalar
	// or bytes that do not decode to a point on the curve.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrInvalidSignature indicates a structurally invalid or all-zero
	// signature, or one that fails cryptographic verification.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrInvalidEncoding indicates malformed text such as characters outside
	// of the expected alphabet, an odd hex length or an empty string.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrInvalidChecksum indicates well-formed address data whose trailing
	// checksum does not match the one computed over its payload.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrMismatch indicates individually valid components that do not
	// correspond to each other, for example an address that was not derived
	// from the given public key.
	ErrMismatch = ErrorKind("ErrMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error produced while handling key material, signatures,
// addresses or digests.  It has full support for errors.Is and errors.As, so
// the caller can ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New creates an Error given a set of arguments.
func New(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
