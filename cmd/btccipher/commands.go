// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"

	"github.com/btcsuite/btccipher/cipher"
	"github.com/btcsuite/btccipher/digest"
	clog "github.com/btcsuite/btccipher/internal/log"
	"github.com/btcsuite/btccipher/sigcache"
)

// HashOptions selects the digest a command signs or checks.
type HashOptions struct {
	Hash    string `long:"hash" description:"Hex encoded 32-byte digest"`
	Message string `long:"message" description:"Text whose SHA256 digest is used"`
}

// sigHash returns the digest selected by exactly one of --hash and --message.
func (o *HashOptions) sigHash() (digest.SHA256, error) {
	switch {
	case o.Hash != "" && o.Message != "":
		return digest.SHA256{}, errors.New("the --hash and --message " +
			"options can not be mixed")
	case o.Hash != "":
		return digest.SHA256FromHex(o.Hash)
	case o.Message != "":
		return digest.SumSHA256([]byte(o.Message)), nil
	}
	return digest.SHA256{}, errors.New("one of --hash or --message must " +
		"be specified")
}

// genKeyCmd defines the configuration options for the genkey command.
type genKeyCmd struct {
	Seed  string `long:"seed" description:"Derive the key pair deterministically from this seed"`
	Count uint   `short:"n" long:"count" default:"1" description:"Number of random key pairs to generate"`
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *genKeyCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}
	return cmd.run(outWriter)
}

func (cmd *genKeyCmd) run(w io.Writer) error {
	if cmd.Seed != "" {
		if cmd.Count > 1 {
			return errors.New("a seed always derives a single key " +
				"pair -- the --seed and --count options can not be " +
				"mixed")
		}
		pub, sec, err := cipher.GenerateDeterministicKeyPair([]byte(cmd.Seed))
		if err != nil {
			return err
		}
		return writeResult(w, keyPairResult{sec, pub, cipher.AddressFromPubKey(pub)})
	}

	if cmd.Count == 0 {
		return errors.New("the --count option must be positive")
	}
	pairs := make(keyPairResults, 0, cmd.Count)
	for i := uint(0); i < cmd.Count; i++ {
		pub, sec := cipher.GenerateKeyPair()
		pairs = append(pairs, keyPairResult{sec, pub, cipher.AddressFromPubKey(pub)})
	}
	log.Debugf("Generated %d key %s", len(pairs),
		clog.PickNoun(uint64(len(pairs)), "pair", "pairs"))

	if len(pairs) == 1 {
		return writeResult(w, pairs[0])
	}
	return writeResult(w, pairs)
}

// addressCmd defines the configuration options for the address command.
type addressCmd struct {
	PubKey string `long:"pubkey" description:"Hex encoded public key"`
	SecKey string `long:"seckey" description:"Hex encoded secret key"`
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *addressCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}
	return cmd.run(outWriter)
}

func (cmd *addressCmd) run(w io.Writer) error {
	var pub cipher.PubKey
	switch {
	case cmd.PubKey != "" && cmd.SecKey != "":
		return errors.New("the --pubkey and --seckey options can not be " +
			"mixed")
	case cmd.PubKey != "":
		var err error
		if pub, err = cipher.PubKeyFromHex(cmd.PubKey); err != nil {
			return err
		}
	case cmd.SecKey != "":
		sec, err := cipher.SecKeyFromHex(cmd.SecKey)
		if err != nil {
			return err
		}
		if pub, err = cipher.PubKeyFromSecKey(sec); err != nil {
			return err
		}
	default:
		return errors.New("one of --pubkey or --seckey must be specified")
	}

	return writeResult(w, addressResult{&pub, cipher.AddressFromPubKey(pub)})
}

// signCmd defines the configuration options for the sign command.
type signCmd struct {
	SecKey string `long:"seckey" required:"true" description:"Hex encoded secret key"`
	HashOptions
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *signCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}
	return cmd.run(outWriter)
}

func (cmd *signCmd) run(w io.Writer) error {
	sec, err := cipher.SecKeyFromHex(cmd.SecKey)
	if err != nil {
		return err
	}
	hash, err := cmd.sigHash()
	if err != nil {
		return err
	}
	addr, err := cipher.AddressFromSecKey(sec)
	if err != nil {
		return err
	}
	sig, err := cipher.SignHash(hash, sec)
	if err != nil {
		return err
	}

	return writeResult(w, signResult{hash, sig, addr})
}

// verifyCmd defines the configuration options for the verify command.
type verifyCmd struct {
	Sig     string `long:"sig" required:"true" description:"Hex encoded signature"`
	Address string `long:"address" description:"Base58 address of the expected signer"`
	PubKey  string `long:"pubkey" description:"Hex encoded public key of the expected signer"`
	HashOptions
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *verifyCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}
	return cmd.run(outWriter, sigcache.New(cfg.SigCacheMaxSize))
}

func (cmd *verifyCmd) run(w io.Writer, cache *sigcache.SigCache) error {
	sig, err := cipher.SigFromHex(cmd.Sig)
	if err != nil {
		return err
	}
	hash, err := cmd.sigHash()
	if err != nil {
		return err
	}

	var addr cipher.Address
	switch {
	case cmd.Address != "" && cmd.PubKey != "":
		return errors.New("the --address and --pubkey options can not " +
			"be mixed")
	case cmd.Address != "":
		if addr, err = cipher.DecodeBase58Address(cmd.Address); err != nil {
			return err
		}
		if err := cache.ChkSig(addr, hash, sig); err != nil {
			return err
		}
	case cmd.PubKey != "":
		pub, err := cipher.PubKeyFromHex(cmd.PubKey)
		if err != nil {
			return err
		}
		if err := cache.VerifySignature(pub, sig, hash); err != nil {
			return err
		}
		addr = cipher.AddressFromPubKey(pub)
	default:
		return errors.New("one of --address or --pubkey must be specified")
	}

	return writeResult(w, verifyResult{true, addr})
}

// recoverCmd defines the configuration options for the recover command.
type recoverCmd struct {
	Sig string `long:"sig" required:"true" description:"Hex encoded signature"`
	HashOptions
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *recoverCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}
	return cmd.run(outWriter)
}

func (cmd *recoverCmd) run(w io.Writer) error {
	sig, err := cipher.SigFromHex(cmd.Sig)
	if err != nil {
		return err
	}
	hash, err := cmd.sigHash()
	if err != nil {
		return err
	}
	pub, err := cipher.PubKeyFromSig(sig, hash)
	if err != nil {
		return err
	}

	return writeResult(w, addressResult{&pub, cipher.AddressFromPubKey(pub)})
}

// ecdhCmd defines the configuration options for the ecdh command.
type ecdhCmd struct {
	PubKey string `long:"pubkey" required:"true" description:"Hex encoded public key of the other party"`
	SecKey string `long:"seckey" required:"true" description:"Hex encoded secret key"`
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *ecdhCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}
	return cmd.run(outWriter)
}

func (cmd *ecdhCmd) run(w io.Writer) error {
	pub, err := cipher.PubKeyFromHex(cmd.PubKey)
	if err != nil {
		return err
	}
	sec, err := cipher.SecKeyFromHex(cmd.SecKey)
	if err != nil {
		return err
	}
	secret, err := cipher.ECDH(pub, sec)
	if err != nil {
		return err
	}

	return writeResult(w, ecdhResult{secret})
}
