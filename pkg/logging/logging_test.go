package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
}

func TestCLIMode_WritesFormattedEntries(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Info("Registry", "Loaded %d manifests", 4)

	out := buf.String()
	assert.Contains(t, out, "Loaded 4 manifests")
	assert.Contains(t, out, "subsystem=Registry")
	assert.Contains(t, out, "INFO")
}

func TestCLIMode_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("Sweep", "not shown")
	Info("Sweep", "not shown either")
	Warn("Sweep", "shown")

	out := buf.String()
	assert.NotContains(t, out, "not shown")
	assert.Contains(t, out, "shown")
}

func TestCLIMode_ErrorIncludesWrappedError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Error("Launch", errors.New("spawn refused"), "Failed to start %s", "gpu-monitor")

	out := buf.String()
	assert.Contains(t, out, "Failed to start gpu-monitor")
	assert.Contains(t, out, "spawn refused")
}

func TestUIMode_DeliversEntriesOverChannel(t *testing.T) {
	ch := InitForUI()
	defer func() {
		CloseUIChannel()
		// Restore CLI mode so later tests in the package are unaffected.
		InitForCLI(LevelInfo, &bytes.Buffer{})
	}()

	Warn("Menu", "category %q references unknown tool", "main")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Menu", entry.Subsystem)
		assert.Contains(t, entry.Message, "unknown tool")
		require.False(t, entry.Timestamp.IsZero())
	default:
		t.Fatal("expected an entry on the UI channel")
	}
}
