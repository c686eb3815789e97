// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btccipher/cipher"
	"github.com/btcsuite/btccipher/digest"
	clog "github.com/btcsuite/btccipher/internal/log"
)

// writeResult prints a command result either as indented JSON or as the
// result's plain text form depending on the --json option.
func writeResult(w io.Writer, r fmt.Stringer) error {
	if cfg.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	_, err := fmt.Fprintln(w, r.String())
	return err
}

// field formats a single name/value line of plain text output.
func field(name string, value interface{}) string {
	return fmt.Sprintf("%-8s %v", name+":", value)
}

// keyPairResult is the output of genkey.
type keyPairResult struct {
	SecKey  cipher.SecKey  `json:"seckey"`
	PubKey  cipher.PubKey  `json:"pubkey"`
	Address cipher.Address `json:"address"`
}

func (r keyPairResult) String() string {
	return strings.Join([]string{
		field("seckey", r.SecKey.Hex()),
		field("pubkey", r.PubKey),
		field("address", r.Address),
	}, "\n")
}

// keyPairResults is the output of genkey when more than one pair is
// requested.
type keyPairResults []keyPairResult

func (r keyPairResults) String() string {
	lines := make([]string, 0, len(r))
	for _, pair := range r {
		lines = append(lines, pair.String())
	}
	return strings.Join(lines, "\n\n")
}

// addressResult is the output of address and recover.
type addressResult struct {
	PubKey  *cipher.PubKey `json:"pubkey,omitempty"`
	Address cipher.Address `json:"address"`
}

func (r addressResult) String() string {
	if r.PubKey == nil {
		return field("address", r.Address)
	}
	return field("pubkey", *r.PubKey) + "\n" + field("address", r.Address)
}

// signResult is the output of sign.
type signResult struct {
	Hash    digest.SHA256  `json:"hash"`
	Sig     cipher.Sig     `json:"sig"`
	Address cipher.Address `json:"address"`
}

func (r signResult) String() string {
	return strings.Join([]string{
		field("hash", r.Hash),
		field("sig", r.Sig),
		field("address", r.Address),
	}, "\n")
}

// verifyResult is the output of a successful verify.
type verifyResult struct {
	Valid   bool           `json:"valid"`
	Address cipher.Address `json:"address"`
}

func (r verifyResult) String() string {
	return field("valid", r.Valid) + "\n" + field("address", r.Address)
}

// ecdhResult is the output of ecdh.
type ecdhResult struct {
	Secret digest.SHA256 `json:"secret"`
}

func (r ecdhResult) String() string {
	return field("secret", r.Secret)
}

// selfTestResult is the output of a successful selftest.
type selfTestResult struct {
	Iterations uint64 `json:"iterations"`
	Workers    int    `json:"workers"`
}

func (r selfTestResult) String() string {
	return fmt.Sprintf("self test passed: %d %s on %d %s", r.Iterations,
		clog.PickNoun(r.Iterations, "iteration", "iterations"), r.Workers,
		clog.PickNoun(uint64(r.Workers), "worker", "workers"))
}
