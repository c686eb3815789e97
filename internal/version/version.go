// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the btccipher command.
package version

import (
	"fmt"
	"strings"
)

const (
	// preReleaseAlphabet defines the allowed characters for the pre-release
	// portion of a semantic version string.
	preReleaseAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	// buildAlphabet defines the allowed characters for the build metadata
	// portion of a semantic version string.
	buildAlphabet = preReleaseAlphabet + "."
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease may be overridden at link time with
	// '-ldflags "-X github.com/btcsuite/btccipher/internal/version.PreRelease=foo"'.
	// Characters outside preReleaseAlphabet are dropped.
	PreRelease = "beta"

	// BuildMetadata may be overridden at link time with
	// '-ldflags "-X github.com/btcsuite/btccipher/internal/version.BuildMetadata=foo"'.
	// Characters outside buildAlphabet are dropped.
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (http://semver.org/).
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if preRelease := normalize(PreRelease, preReleaseAlphabet); preRelease != "" {
		version += "-" + preRelease
	}
	if build := normalize(BuildMetadata, buildAlphabet); build != "" {
		version += "+" + build
	}
	return version
}

// normalize returns str stripped of every rune not found in alphabet.
func normalize(str, alphabet string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphabet, r) {
			return r
		}
		return -1
	}, str)
}
