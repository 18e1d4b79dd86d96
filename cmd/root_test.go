package cmd

import (
	"errors"
	"testing"

	"mastermenu/internal/launch"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCodeError, getExitCode(errors.New("plain failure")))

	// A tool's own exit code passes through in blocking mode.
	toolErr := &launch.NonZeroExitError{ToolID: "backup", Code: 3}
	assert.Equal(t, 3, getExitCode(toolErr))

	wrapped := errors.Join(errors.New("context"), toolErr)
	assert.Equal(t, 3, getExitCode(wrapped))
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, expected := range []string{"doctor", "create", "wrappers", "sweep", "launch", "list", "version"} {
		assert.True(t, names[expected], "missing subcommand %s", expected)
	}
}
