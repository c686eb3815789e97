// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestSetLogLevel ensures levels are applied to known subsystems and unknown
// subsystems are ignored.
func TestSetLogLevel(t *testing.T) {
	defer SetLogLevels("info")

	SetLogLevel("CPHR", "trace")
	require.Equal(t, btclog.LevelTrace, cphrLog.Level())
	require.Equal(t, btclog.LevelInfo, MainLog.Level())

	// Unknown subsystems are ignored rather than created.
	SetLogLevel("NOPE", "trace")
	require.False(t, ValidSubsystem("NOPE"))

	// Invalid levels default to info.
	SetLogLevel("CPHR", "loud")
	require.Equal(t, btclog.LevelInfo, cphrLog.Level())

	SetLogLevels("error")
	for _, id := range SupportedSubsystems() {
		require.Equal(t, btclog.LevelError, subsystemLoggers[id].Level(), id)
	}
}

// TestSupportedSubsystems ensures the subsystem list is sorted and complete.
func TestSupportedSubsystems(t *testing.T) {
	require.Equal(t, []string{"CPHR", "MAIN", "SCCH"}, SupportedSubsystems())
	for _, id := range SupportedSubsystems() {
		require.True(t, ValidSubsystem(id), id)
	}
}

// TestLogRotator ensures log lines reach both standard error and the log file
// once the rotator is initialized.
func TestLogRotator(t *testing.T) {
	var buf bytes.Buffer
	oldStderr := stderr
	stderr = &buf
	defer func() { stderr = oldStderr }()
	defer SetLogLevels("info")

	logFile := filepath.Join(t.TempDir(), "logs", "btccipher.log")
	require.NoError(t, InitLogRotator(logFile))

	SetLogLevel("MAIN", "info")
	MainLog.Infof("rotator test line")
	CloseLogRotator()
	require.Nil(t, LogRotator)

	require.Contains(t, buf.String(), "[INF] MAIN: rotator test line")
	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(contents), "rotator test line")

	// Closing twice is harmless and logging continues to standard error.
	CloseLogRotator()
	MainLog.Info("after close")
	require.Contains(t, buf.String(), "after close")
}

// TestPickNoun ensures the singular form is only used for a count of one.
func TestPickNoun(t *testing.T) {
	require.Equal(t, "keys", PickNoun(0, "key", "keys"))
	require.Equal(t, "key", PickNoun(1, "key", "keys"))
	require.Equal(t, "keys", PickNoun(2, "key", "keys"))
}
