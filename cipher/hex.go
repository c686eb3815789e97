// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

import (
	"fmt"

	"github.com/btcsuite/btccipher/digest"
)

// decodeHexExact decodes s and ensures the result is exactly size bytes.  The
// decoded bytes are never padded or truncated to fit.
func decodeHexExact(s string, size int, what string) ([]byte, error) {
	b, err := digest.DecodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		str := fmt.Sprintf("malformed %s hex: decoded %d bytes, want %d",
			what, len(b), size)
		return nil, makeError(ErrInvalidLength, str)
	}
	return b, nil
}
