// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for building a fresh command tree,
// capturing output, and writing participant files.
package cmd

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	logger "github.com/PolarWolf314/secretsanta/internal/logging"
)

var secretSantaEnvKeys = []string{"SECRETSANTA_FROM", "SECRETSANTA_CSV", "SECRETSANTA_SMTP_HOST", "SECRETSANTA_SMTP_PORT", "SECRETSANTA_AUDIT"}

// setupTestEnvironment isolates a test from the user's configuration and
// environment, and returns a temp directory to work in.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	color.NoColor = true

	for _, key := range secretSantaEnvKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", tempDir)

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		ResetGlobalState()
	})

	ResetGlobalState()
	return tempDir
}

// ResetGlobalState resets all global variables and flags to their default
// values for testing.
func ResetGlobalState() {
	verbose = false
	debugMode = false
	logfile = logger.StdStreams
	configPath = ""
	Logger = logger.Logger{}
	closeLogger = func() error { return nil }
	resetRunCommandState()
	resetConfigShowState()
	resetConfigInitState()
	resetLogCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState restores every flag in the tree to its default to
// prevent test pollution.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}

// setCommandContext hands ctx to every command in the tree. Cobra only fills in
// a subcommand's context when it has none, so without this a later run would
// keep the context of the first one.
func setCommandContext(c *cobra.Command, ctx context.Context) {
	c.SetContext(ctx)
	for _, sub := range c.Commands() {
		setCommandContext(sub, ctx)
	}
}

// runCLI executes the real command tree with args and returns combined
// stdout and stderr plus the exit code.
func runCLI(t *testing.T, ctx context.Context, args ...string) (string, int) {
	t.Helper()
	var code int
	setCommandContext(RootCmd, ctx)
	output := captureOutput(func() {
		RootCmd.SetArgs(args)
		code = execute(ctx, RootCmd)
	})
	RootCmd.SetArgs([]string{})
	return output, code
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func()) string {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)
	copyPipe := func(r io.Reader) {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}
	go copyPipe(stdoutReader)
	go copyPipe(stderrReader)

	fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr
}

// writeParticipants writes a participant CSV into dir and returns its path.
func writeParticipants(t *testing.T, dir string, rows ...string) string {
	t.Helper()
	path := filepath.Join(dir, "people.csv")
	content := "name,email\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write participants: %v", err)
	}
	return path
}
