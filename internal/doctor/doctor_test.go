package doctor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"mastermenu/internal/launch"
	"mastermenu/internal/manifest"
	"mastermenu/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	specs    []launch.Spec
	exitCode int
}

func (f *fakeRunner) Run(ctx context.Context, spec launch.Spec) (int, error) {
	f.specs = append(f.specs, spec)
	return f.exitCode, nil
}

func writeHealthyTool(t *testing.T, appsDir, id string) string {
	t.Helper()
	dir := filepath.Join(appsDir, id)
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "id: " + id + "\nname: " + id + "\ncommand: ./run.sh\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest.ManifestFileName), []byte(content), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run.sh"), []byte("#!/bin/sh\n"), 0755))
	return dir
}

func newTestDoctor(appsDir, entryScript string, runner launch.Runner) *Doctor {
	return &Doctor{
		AppsDir:      appsDir,
		LaunchScript: "run.sh",
		EntryScript:  entryScript,
		Runner:       runner,
	}
}

func TestCheck_HealthyTreePasses(t *testing.T) {
	appsDir := t.TempDir()
	writeHealthyTool(t, appsDir, "alpha")
	writeHealthyTool(t, appsDir, "beta")

	report, err := newTestDoctor(appsDir, "", &fakeRunner{}).Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Passed())
}

func TestCheck_AggregatesAllFindings(t *testing.T) {
	appsDir := t.TempDir()

	// Tool with a non-executable launch script.
	dull := writeHealthyTool(t, appsDir, "dull")
	require.NoError(t, os.Chmod(filepath.Join(dull, "run.sh"), 0644))

	// Tool missing its launch script entirely.
	bare := writeHealthyTool(t, appsDir, "bare")
	require.NoError(t, os.Remove(filepath.Join(bare, "run.sh")))

	// Tool with an invalid manifest.
	brokenDir := filepath.Join(appsDir, "broken")
	require.NoError(t, os.MkdirAll(brokenDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(brokenDir, manifest.ManifestFileName), []byte("id: broken\n"), 0644))

	report, err := newTestDoctor(appsDir, "", &fakeRunner{}).Check(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Passed())
	assert.Len(t, report.Findings, 3, "every problem reported, none aborts the pass")
}

func TestCheck_EntryScriptSyntax(t *testing.T) {
	appsDir := t.TempDir()
	writeHealthyTool(t, appsDir, "alpha")

	entry := filepath.Join(t.TempDir(), "mastermenu.sh")
	require.NoError(t, os.WriteFile(entry, []byte("#!/bin/bash\necho ok\n"), 0755))

	runner := &fakeRunner{}
	report, err := newTestDoctor(appsDir, entry, runner).Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Passed())

	require.Len(t, runner.specs, 1)
	assert.Equal(t, []string{"bash", "-n", entry}, runner.specs[0].Argv, "syntax-only parse, never execution")

	// A failing parse becomes a finding.
	failing := &fakeRunner{exitCode: 2}
	report, err = newTestDoctor(appsDir, entry, failing).Check(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Passed())
}

func TestCheck_MissingEntryScriptIsSkipped(t *testing.T) {
	appsDir := t.TempDir()
	writeHealthyTool(t, appsDir, "alpha")

	var logBuf bytes.Buffer
	logging.InitForCLI(logging.LevelDebug, &logBuf)
	t.Cleanup(func() { logging.InitForCLI(logging.LevelInfo, os.Stderr) })

	runner := &fakeRunner{}
	report, err := newTestDoctor(appsDir, filepath.Join(t.TempDir(), "absent.sh"), runner).Check(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Passed())
	assert.Empty(t, runner.specs)
	// The skip leaves a trace so an absent script is not mistaken for a
	// passing check.
	assert.Contains(t, logBuf.String(), "skipping syntax check")
}

func TestCheck_IsReadOnly(t *testing.T) {
	appsDir := t.TempDir()
	dir := writeHealthyTool(t, appsDir, "alpha")

	before, err := os.ReadFile(filepath.Join(dir, manifest.ManifestFileName))
	require.NoError(t, err)

	_, err = newTestDoctor(appsDir, "", &fakeRunner{}).Check(context.Background())
	require.NoError(t, err)

	after, err := os.ReadFile(filepath.Join(dir, manifest.ManifestFileName))
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "nothing created in the tool directory")
}
