package workdir

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvision_CreatesRunAndTmpDir(t *testing.T) {
	root := t.TempDir()
	startedAt := time.Date(2026, 8, 30, 9, 15, 0, 0, time.Local)

	runDir, err := Provision(root, "gpu-monitor", startedAt)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "gpu-monitor", "20260830-091500"), runDir)
	info, err := os.Stat(TmpDir(runDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestProvision_CollisionGetsSuffix(t *testing.T) {
	root := t.TempDir()
	startedAt := time.Date(2026, 8, 30, 9, 15, 0, 0, time.Local)

	first, err := Provision(root, "tool", startedAt)
	require.NoError(t, err)
	second, err := Provision(root, "tool", startedAt)
	require.NoError(t, err)
	third, err := Provision(root, "tool", startedAt)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first+"-2", second)
	assert.Equal(t, first+"-3", third)

	for _, dir := range []string{first, second, third} {
		_, err := os.Stat(TmpDir(dir))
		assert.NoError(t, err)
	}
}
