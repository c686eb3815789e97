// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/btcsuite/btccipher/internal/log"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btclog"
)

const (
	defaultConfigFilename  = "btccipher.conf"
	defaultLogDirname      = "logs"
	defaultLogFilename     = "btccipher.log"
	defaultLogLevel        = "info"
	defaultSigCacheMaxSize = 100000
)

var (
	defaultHomeDir    = btcutil.AppDataDir("btccipher", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)

	// cfg holds the global options shared by every command.  It is filled
	// in from the config file first and the command line second.
	cfg = defaultConfig()
)

// config defines the global configuration options.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile      string `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion     bool   `short:"V" long:"version" description:"Display version information and exit"`
	LogDir          string `long:"logdir" description:"Directory to log output"`
	NoFileLogging   bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel      string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	SigCacheMaxSize uint   `long:"sigcachemaxsize" description:"The maximum number of entries in the signature verification cache"`
	JSON            bool   `long:"json" description:"Print command results as JSON"`
}

// defaultConfig returns the configuration used when no config file or command
// line options override it.
func defaultConfig() *config {
	return &config{
		ConfigFile:      defaultConfigFile,
		LogDir:          defaultLogDir,
		DebugLevel:      defaultLogLevel,
		SigCacheMaxSize: defaultSigCacheMaxSize,
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// validLogLevel returns whether or not logLevel is a level name btclog
// understands.  Names are matched case insensitively and the short forms such
// as "dbg" are accepted too, exactly as the subsystem loggers parse them.
func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		clog.SetLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if !clog.ValidSubsystem(subsysID) {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, clog.SupportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		clog.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

// setupGlobalConfig examines the global configuration options for any
// conditions which are invalid and performs the logging setup that depends on
// them.  It is invoked by every command before it does any work.
func setupGlobalConfig() error {
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}

	if cfg.NoFileLogging {
		return nil
	}

	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
	if err := clog.InitLogRotator(logFile); err != nil {
		return err
	}
	log.Debugf("Logging to %s", logFile)

	return nil
}
