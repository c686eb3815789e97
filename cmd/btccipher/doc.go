// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
btccipher is a command line front end to the cipher package.  It generates key
pairs, derives addresses, signs and verifies digests, recovers signers and
derives ECDH shared secrets.

Usage:

	btccipher [global options] <command> [command options]

Global Options:

	-C, --configfile=      Path to configuration file
	-V, --version          Display version information and exit
	    --logdir=          Directory to log output
	    --nofilelogging    Disable file logging
	-d, --debuglevel=      Logging level for all subsystems {trace, debug,
	                       info, warn, error, critical} -- You may also
	                       specify <subsystem>=<level>,<subsystem2>=<level>,...
	                       to set the log level for individual subsystems
	    --sigcachemaxsize= The maximum number of entries in the signature
	                       verification cache (100000)
	    --json             Print command results as JSON

Commands:

	genkey    [--seed=<text>] [-n <count>]
	address   --pubkey=<hex> | --seckey=<hex>
	sign      --seckey=<hex> --hash=<hex> | --message=<text>
	verify    --sig=<hex> --hash=<hex> | --message=<text>
	          --address=<base58> | --pubkey=<hex>
	recover   --sig=<hex> --hash=<hex> | --message=<text>
	ecdh      --pubkey=<hex> --seckey=<hex>
	selftest  [-n <iterations>]

Options may also be set in the config file, which defaults to btccipher.conf in
the application data directory.  Command line options always take precedence:

	json=true
	debuglevel=CPHR=trace,MAIN=info
	sigcachemaxsize=5000

Verify exits with a non-zero status when the signature does not check, so it
can be used directly in scripts.
*/
package main
