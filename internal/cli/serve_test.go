package cli

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpp-samouczek/lcpp/internal/model"
)

// restoreWD undoes the chdir the launcher performs, so later tests see
// the original working directory.
func restoreWD(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeStub(t *testing.T, dir, name, script string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+script+"\n"), 0o755))
}

// TestRunServe_NoInterpreter verifies the failure path: quiet exit with
// code 1, EOF on stdin accepted as the keypress.
func TestRunServe_NoInterpreter(t *testing.T) {
	restoreWD(t)
	t.Setenv("PATH", t.TempDir())

	err := runServe(context.Background(), strings.NewReader(""))
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
	assert.True(t, cliErr.Quiet(), "the interactive message already reported the failure")
}

// TestRunServe_PropagatesServerExitCode verifies that the server
// subprocess's exit status becomes the launcher's own.
func TestRunServe_PropagatesServerExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	restoreWD(t)

	dir := t.TempDir()
	writeStub(t, dir, "python3", "exit 7")
	t.Setenv("PATH", dir)
	t.Setenv("BROWSER", "true")

	err := runServe(context.Background(), strings.NewReader(""))
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitCode(7), cliErr.Code)
	assert.True(t, cliErr.Quiet(), "the server already wrote its own diagnostics")
}

// TestRunServe_GracefulExit verifies the success path end to end with a
// stub server that exits 0.
func TestRunServe_GracefulExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	restoreWD(t)

	dir := t.TempDir()
	writeStub(t, dir, "python3", "exit 0")
	t.Setenv("PATH", dir)
	t.Setenv("BROWSER", "true")

	assert.NoError(t, runServe(context.Background(), strings.NewReader("")))
}

func TestWaitForEnter(t *testing.T) {
	// Both a newline and a bare EOF must return.
	waitForEnter(strings.NewReader("\n"))
	waitForEnter(strings.NewReader(""))
}
