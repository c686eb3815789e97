// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"fmt"

	"github.com/btcsuite/btccipher/digest"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// AddressVersion is the version byte of addresses created by
	// AddressFromPubKey.
	AddressVersion byte = 0x00

	// AddressChecksumLen is the number of checksum bytes appended to an
	// address.
	AddressChecksumLen = 4

	// AddressBytesLen is the length of the binary address form: version ||
	// key hash || checksum.
	AddressBytesLen = 1 + digest.Ripemd160Size + AddressChecksumLen
)

// Address identifies an account by the hash of its public key.
type Address struct {
	Version byte
	Key     digest.Ripemd160
}

// AddressFromPubKey derives the address of pub.
func AddressFromPubKey(pub PubKey) Address {
	return Address{
		Version: AddressVersion,
		Key:     pub.ToAddressHash(),
	}
}

// AddressFromSecKey derives the address of the public key belonging to sk.
func AddressFromSecKey(sk SecKey) (Address, error) {
	pub, err := PubKeyFromSecKey(sk)
	if err != nil {
		return Address{}, err
	}
	return AddressFromPubKey(pub), nil
}

// AddressFromBytes parses the binary form produced by Address.Bytes.
func AddressFromBytes(b []byte) (Address, error) {
	if len(b) != AddressBytesLen {
		str := fmt.Sprintf("malformed address: invalid length: %d",
			len(b))
		return Address{}, makeError(ErrInvalidLength, str)
	}

	addr := Address{Version: b[0]}
	copy(addr.Key[:], b[1:1+digest.Ripemd160Size])

	var cksum [AddressChecksumLen]byte
	copy(cksum[:], b[1+digest.Ripemd160Size:])
	if cksum != addr.Checksum() {
		return Address{}, makeError(ErrInvalidChecksum, "address "+
			"checksum mismatch")
	}
	return addr, nil
}

// DecodeBase58Address decodes the text form produced by Address.String.
func DecodeBase58Address(s string) (Address, error) {
	// The base58 decoder reports invalid characters by returning nothing.
	b := base58.Decode(s)
	if len(b) == 0 {
		return Address{}, makeError(ErrInvalidEncoding, "invalid base58 "+
			"address: empty or contains characters outside the alphabet")
	}
	if len(b) != AddressBytesLen {
		str := fmt.Sprintf("invalid base58 address: decoded %d bytes, "+
			"want %d", len(b), AddressBytesLen)
		return Address{}, makeError(ErrInvalidEncoding, str)
	}
	return AddressFromBytes(b)
}

// Checksum returns the first four bytes of sha256(sha256(version || key)).
func (addr Address) Checksum() [AddressChecksumLen]byte {
	var b [1 + digest.Ripemd160Size]byte
	b[0] = addr.Version
	copy(b[1:], addr.Key[:])

	h := digest.DoubleSHA256(b[:])
	var cksum [AddressChecksumLen]byte
	copy(cksum[:], h[:AddressChecksumLen])
	return cksum
}

// Bytes returns version || key || checksum.
func (addr Address) Bytes() []byte {
	b := make([]byte, 0, AddressBytesLen)
	b = append(b, addr.Version)
	b = append(b, addr.Key[:]...)
	cksum := addr.Checksum()
	return append(b, cksum[:]...)
}

// String returns the Base58Check encoding of the address.
func (addr Address) String() string {
	return base58.CheckEncode(addr.Key[:], addr.Version)
}

// Null returns true if the address is the zero value.
func (addr Address) Null() bool {
	return addr == Address{}
}

// MarshalText satisfies the encoding.TextMarshaler interface.
func (addr Address) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

// UnmarshalText satisfies the encoding.TextUnmarshaler interface.
func (addr *Address) UnmarshalText(text []byte) error {
	a, err := DecodeBase58Address(string(text))
	if err != nil {
		return err
	}
	*addr = a
	return nil
}

// Verify ensures the address was derived from pub.
func (addr Address) Verify(pub PubKey) error {
	if err := pub.Verify(); err != nil {
		return err
	}
	if AddressFromPubKey(pub) != addr {
		return makeError(ErrMismatch, "public key does not match address")
	}
	return nil
}

// ChkSig ensures sig is a valid signature over hash made by the owner of
// addr.  The public key is recovered from the signature, so the key itself
// need not be known.
func ChkSig(addr Address, hash digest.SHA256, sig Sig) error {
	pub, err := PubKeyFromSig(sig, hash)
	if err != nil {
		return err
	}
	if AddressFromPubKey(pub) != addr {
		return makeError(ErrMismatch, "signature was not made by the "+
			"owner of the address over the given hash")
	}
	return VerifySignature(pub, sig, hash)
}
