package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mastermenu/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	menuFileName   = "menu_config.yaml"

	// EnvRoot pins the launcher root externally.
	EnvRoot = "MASTERMENU_ROOT"
	// EnvWorkdirRoot pins the per-run workdir root externally, e.g. when the
	// graphical launcher and a bare shell should share run output.
	EnvWorkdirRoot = "MASTERMENU_WORKDIR_ROOT"

	defaultWorkdirSubpath = ".local/share/mastermenu"

	// DefaultKeepDays is the retention threshold applied when config.yaml
	// does not set one.
	DefaultKeepDays = 14

	// LaunchScriptName is the per-tool entry-point script that wrappers and
	// the doctor check for.
	LaunchScriptName = "run.sh"
)

// Config is the top-level configuration for the launcher core. All paths
// are absolute after Load.
type Config struct {
	// Root is the launcher root holding apps/, bin/, backups/ and the menu
	// configuration. Not serialized; resolved from flag/env/cwd.
	Root string `yaml:"-"`

	// WorkdirRoot is where per-run workdirs are allocated.
	WorkdirRoot string `yaml:"workdirRoot,omitempty"`

	// Retention configures the workdir sweep.
	Retention RetentionConfig `yaml:"retention,omitempty"`
}

// RetentionConfig controls how long run workdirs are kept.
type RetentionConfig struct {
	KeepDays int `yaml:"keepDays,omitempty"`
}

// AppsDir returns the directory holding one subdirectory per tool.
func (c Config) AppsDir() string { return filepath.Join(c.Root, "apps") }

// BinDir returns the directory holding generated PATH wrappers.
func (c Config) BinDir() string { return filepath.Join(c.Root, "bin") }

// BackupDir returns the append-only backup directory for configuration saves.
func (c Config) BackupDir() string { return filepath.Join(c.Root, "backups") }

// MenuConfigPath returns the path of the menu configuration file.
func (c Config) MenuConfigPath() string { return filepath.Join(c.Root, menuFileName) }

// EntryScriptPath returns the top-level launcher entry script checked by the
// doctor.
func (c Config) EntryScriptPath() string { return filepath.Join(c.Root, "mastermenu.sh") }

// ResolveRoot determines the launcher root: explicit flag value first, then
// MASTERMENU_ROOT, then the current working directory.
func ResolveRoot(flagValue string) (string, error) {
	if flagValue != "" {
		return filepath.Abs(flagValue)
	}
	if env := os.Getenv(EnvRoot); env != "" {
		return filepath.Abs(env)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not determine working directory: %w", err)
	}
	return wd, nil
}

// defaultWorkdirRoot is a package-level func so tests can substitute it.
var defaultWorkdirRoot = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "mastermenu")
	}
	return filepath.Join(home, defaultWorkdirSubpath)
}

// Load reads config.yaml from the launcher root. A missing file is not an
// error; defaults apply. MASTERMENU_WORKDIR_ROOT overrides any configured
// workdir root.
func Load(root string) (Config, error) {
	config := Config{
		Root:      root,
		Retention: RetentionConfig{KeepDays: DefaultKeepDays},
	}

	configFilePath := filepath.Join(root, configFileName)
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("error reading config from %s: %w", configFilePath, err)
		}
		logging.Debug("Settings", "No config.yaml at %s, using defaults", configFilePath)
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
		}
		config.Root = root
		logging.Info("Settings", "Loaded configuration from %s", configFilePath)
	}

	if env := os.Getenv(EnvWorkdirRoot); env != "" {
		config.WorkdirRoot = env
	}
	if config.WorkdirRoot == "" {
		config.WorkdirRoot = defaultWorkdirRoot()
	}
	if config.Retention.KeepDays <= 0 {
		config.Retention.KeepDays = DefaultKeepDays
	}

	return config, nil
}
