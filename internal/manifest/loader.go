package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the manifest of one tool directory. It returns
// either a complete manifest or a single LoadFailure; it never mutates
// anything on disk.
func Load(toolDir string) (*AppManifest, *LoadFailure) {
	path := filepath.Join(toolDir, ManifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadFailure{
			Dir:     toolDir,
			Kind:    FailureParse,
			Message: fmt.Sprintf("cannot read %s: %v", ManifestFileName, err),
		}
	}

	var m AppManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &LoadFailure{
			Dir:     toolDir,
			Kind:    FailureParse,
			Message: fmt.Sprintf("malformed %s: %v", ManifestFileName, err),
		}
	}
	m.Dir = toolDir

	// Required fields are collected together, not reported one at a time.
	var missing []string
	if strings.TrimSpace(m.ID) == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(m.Name) == "" {
		missing = append(missing, "name")
	}
	if m.Command.Empty() {
		missing = append(missing, "command")
	}
	if len(missing) > 0 {
		return nil, &LoadFailure{
			Dir:    toolDir,
			Kind:   FailureMissingFields,
			Fields: missing,
		}
	}

	if m.ID == ScaffoldDirName {
		return nil, &LoadFailure{
			Dir:     toolDir,
			Kind:    FailureInvalidID,
			Message: fmt.Sprintf("id %q is reserved for the scaffold template", m.ID),
		}
	}

	if m.Icon != "" {
		if _, err := os.Stat(m.IconPath()); err != nil {
			return nil, &LoadFailure{
				Dir:     toolDir,
				Kind:    FailureIconNotFound,
				Message: fmt.Sprintf("icon %q not found under tool directory", m.Icon),
			}
		}
	}

	if m.Category == "" {
		m.Category = DefaultCategory
	}

	return &m, nil
}

// Excluded reports whether a directory entry is skipped by discovery:
// hidden directories and the reserved scaffold template.
func Excluded(name string) bool {
	return strings.HasPrefix(name, ".") || name == ScaffoldDirName
}
