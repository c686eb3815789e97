// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/btcsuite/btccipher/internal/log"
	"github.com/btcsuite/btccipher/internal/version"
	flags "github.com/jessevdk/go-flags"
)

var (
	log = clog.MainLog

	// outWriter receives command results.
	outWriter io.Writer = os.Stdout
)

// newParser returns the command line parser with the global options bound to
// cfg and every command registered.
func newParser(appName string) *flags.Parser {
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("genkey",
		"Generate key pairs",
		"Generate random key pairs, or the single key pair derived "+
			"from a seed.", &genKeyCmd{})
	parser.AddCommand("address",
		"Show the address of a key",
		"Show the address for either a public or a secret key.",
		&addressCmd{})
	parser.AddCommand("sign",
		"Sign a digest or message",
		"Create a recoverable signature over a 32-byte digest, or over "+
			"the SHA256 digest of a message.", &signCmd{})
	parser.AddCommand("verify",
		"Verify a signature",
		"Verify a signature against an address or a public key.",
		&verifyCmd{})
	parser.AddCommand("recover",
		"Recover the signer of a signature",
		"Recover the public key and address that produced a signature.",
		&recoverCmd{})
	parser.AddCommand("ecdh",
		"Derive a shared secret",
		"Derive the ECDH shared secret of a public key and a secret key.",
		&ecdhCmd{})
	parser.AddCommand("selftest",
		"Run the sign and recover self test",
		"Repeatedly generate key pairs and run the sign, recover and "+
			"verify round trip on them.", &selfTestCmd{})
	return parser
}

// loadConfig initializes the global config from the config file and returns
// the parser that will apply the command line on top of it.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//     or the version flag
//  3. Load configuration file overwriting defaults with any specified options
//
// The caller then parses the command line, which always takes precedence.
func loadConfig(appName string, args []string) (*flags.Parser, bool, error) {
	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Help is left to the main
	// parser so the commands are listed.
	preCfg := *cfg
	preParser := flags.NewParser(&preCfg, flags.IgnoreUnknown)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		return nil, false, err
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Fprintln(outWriter, appName, "version", version.String())
		return nil, true, nil
	}

	// Load additional config from file.  A missing default config file is
	// not an error.
	parser := newParser(appName)
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	err = flags.NewIniParser(parser).ParseFile(configFile)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok || preCfg.ConfigFile != defaultConfigFile {
			return nil, false, err
		}
		log.Debugf("No config file at %s", configFile)
	}

	return parser, false, nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	defer clog.CloseLogRotator()

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))

	args := os.Args[1:]
	parser, done, err := loadConfig(appName, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	if done {
		return nil
	}

	// Parse command line and invoke the Execute function for the specified
	// command.
	if _, err := parser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		} else {
			log.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
