// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/btcsuite/btccipher/cipher"
	"github.com/btcsuite/btccipher/sigcache"
	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator.  Standard output is left
// to command results so they can be piped without log noise.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	rotatorMtx.Lock()
	defer rotatorMtx.Unlock()

	// Write errors are dropped.  A failing log sink must not fail the
	// caller, and there is nowhere left to report it.
	stderr.Write(p)
	if LogRotator != nil {
		LogRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
//
// Log lines are only persisted once the log rotator has been initialized with a
// log file by calling InitLogRotator.  Until then they go to standard error
// only.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = btclog.NewBackend(logWriter{})

	// LogRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	LogRotator *rotator.Rotator

	rotatorMtx sync.Mutex
	stderr     io.Writer = os.Stderr

	MainLog = backendLog.Logger("MAIN")
	cphrLog = backendLog.Logger("CPHR")
	scchLog = backendLog.Logger("SCCH")
)

// Initialize package-global logger variables.
func init() {
	cipher.UseLogger(cphrLog)
	sigcache.UseLogger(scchLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"MAIN": MainLog,
	"CPHR": cphrLog,
	"SCCH": scchLog,
}

// InitLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotater variables are used.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	rotatorMtx.Lock()
	LogRotator = r
	rotatorMtx.Unlock()
	return nil
}

// CloseLogRotator flushes and closes the log rotator if one was initialized.
func CloseLogRotator() {
	rotatorMtx.Lock()
	defer rotatorMtx.Unlock()

	if LogRotator != nil {
		LogRotator.Close()
		LogRotator = nil
	}
}

// SetLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	// Ignore invalid subsystems.
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	// Defaults to info if the log level is invalid.
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	// Convert the subsystemLoggers map keys to a slice.
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsystems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// ValidSubsystem returns whether or not subsystemID names a known subsystem.
func ValidSubsystem(subsystemID string) bool {
	_, ok := subsystemLoggers[subsystemID]
	return ok
}

// PickNoun returns the singular or plural form of a noun depending
// on the count n.
func PickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
