package menu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mastermenu/pkg/logging"

	"gopkg.in/yaml.v3"
)

const backupSubdir = "menu_config"

// timeNow is a package-level clock so tests can pin backup timestamps.
var timeNow = time.Now

// Category is one ordered group of tool references in the menu.
type Category struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Config is the top-level menu configuration: an ordered sequence of
// categories, each an ordered sequence of manifest ids. There is exactly
// one per launcher root.
//
// Concurrent edits from two launcher instances are not merged: the last
// writer wins. Saves are serialized within one process only.
type Config struct {
	Categories []Category `yaml:"categories"`
}

// LoadConfig reads the menu configuration. A missing file yields an empty
// menu, not an error, so a fresh root renders an empty launcher.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Menu", "No menu configuration at %s, starting empty", path)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("cannot read menu configuration %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed menu configuration %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveConfig persists the menu configuration. The previous version is first
// copied into a timestamped backup under backupDir/menu_config (append-only
// undo history), then the new content is written to a temporary file and
// renamed into place so a reader never observes a half-written file.
func SaveConfig(cfg *Config, path string, backupDir string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode menu configuration: %w", err)
	}

	if err := backupExisting(path, backupDir); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".menu_config-*.yaml")
	if err != nil {
		return fmt.Errorf("cannot create temporary menu file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("cannot write temporary menu file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot close temporary menu file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot set menu file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot replace menu configuration: %w", err)
	}

	logging.Info("Menu", "Saved menu configuration to %s", path)
	return nil
}

// backupExisting copies the current file, if any, into the backup directory
// with a timestamped name.
func backupExisting(path string, backupDir string) error {
	current, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cannot read current menu configuration for backup: %w", err)
	}

	target := filepath.Join(backupDir, backupSubdir)
	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("cannot create backup directory %s: %w", target, err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	name := fmt.Sprintf("%s_%s%s", stem, timeNow().Format("20060102_150405"), ext)
	backupPath := filepath.Join(target, name)
	if err := os.WriteFile(backupPath, current, 0644); err != nil {
		return fmt.Errorf("cannot write backup %s: %w", backupPath, err)
	}
	logging.Debug("Menu", "Backed up menu configuration to %s", backupPath)
	return nil
}
