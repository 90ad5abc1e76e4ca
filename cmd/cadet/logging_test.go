package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from a scratch directory so logs/ never lands in the tree
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		log.SetOutput(io.Discard)
		os.Chdir(wd)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inTempDir(t)

	logFile := setupLogging(false)
	assert.Nil(t, logFile)
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log directory without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inTempDir(t)

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
	assert.NotEqual(t, os.Stdout, log.Writer())
	assert.NotEqual(t, os.Stderr, log.Writer())
}

func TestSetupLogging_Rotation(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.MkdirAll(logDir, 0755))

	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "old log renamed aside")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}
