package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoConfigFile(t *testing.T) {
	root := t.TempDir()

	original := defaultWorkdirRoot
	defer func() { defaultWorkdirRoot = original }()
	defaultWorkdirRoot = func() string { return "/fake/workdirs" }
	t.Setenv(EnvWorkdirRoot, "")

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, "/fake/workdirs", cfg.WorkdirRoot)
	assert.Equal(t, DefaultKeepDays, cfg.Retention.KeepDays)
	assert.Equal(t, filepath.Join(root, "apps"), cfg.AppsDir())
	assert.Equal(t, filepath.Join(root, "bin"), cfg.BinDir())
	assert.Equal(t, filepath.Join(root, "backups"), cfg.BackupDir())
	assert.Equal(t, filepath.Join(root, "menu_config.yaml"), cfg.MenuConfigPath())
}

func TestLoad_ConfigFileValues(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, configFileName), []byte(`
workdirRoot: /srv/runs
retention:
  keepDays: 30
`), 0644))
	t.Setenv(EnvWorkdirRoot, "")

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "/srv/runs", cfg.WorkdirRoot)
	assert.Equal(t, 30, cfg.Retention.KeepDays)
}

func TestLoad_EnvOverridesWorkdirRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, configFileName), []byte("workdirRoot: /srv/runs\n"), 0644))
	t.Setenv(EnvWorkdirRoot, "/pinned/by/launcher")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "/pinned/by/launcher", cfg.WorkdirRoot)
}

func TestLoad_MalformedConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, configFileName), []byte("retention: [broken\n"), 0644))

	_, err := Load(root)
	assert.Error(t, err)
}

func TestResolveRoot(t *testing.T) {
	explicit := t.TempDir()
	viaEnv := t.TempDir()

	root, err := ResolveRoot(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, root)

	t.Setenv(EnvRoot, viaEnv)
	root, err = ResolveRoot("")
	require.NoError(t, err)
	assert.Equal(t, viaEnv, root)

	t.Setenv(EnvRoot, "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	root, err = ResolveRoot("")
	require.NoError(t, err)
	assert.Equal(t, wd, root)
}
