package manifest

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ManifestFileName is the per-tool descriptor file.
	ManifestFileName = "app.yaml"

	// ScaffoldDirName is the reserved template directory under apps/. It is
	// never loaded and no tool may claim it as an id.
	ScaffoldDirName = "_template"

	// DefaultCategory groups tools whose manifest does not set one.
	DefaultCategory = "utilities"

	// TagCLI marks a tool as eligible for PATH wrapper generation.
	TagCLI = "cli"
)

// Command is the tool entry-point invocation. Manifests may write it as a
// single string or as an argv list; both decode to the argv form.
type Command []string

// UnmarshalYAML accepts either a scalar or a sequence of scalars.
func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*c = Command{s}
		return nil
	case yaml.SequenceNode:
		var parts []string
		if err := value.Decode(&parts); err != nil {
			return err
		}
		*c = Command(parts)
		return nil
	default:
		return fmt.Errorf("command must be a string or a list of strings")
	}
}

// MarshalYAML writes single-element commands back as a scalar.
func (c Command) MarshalYAML() (interface{}, error) {
	if len(c) == 1 {
		return c[0], nil
	}
	return []string(c), nil
}

// Empty reports whether the command has no usable entry point.
func (c Command) Empty() bool {
	return len(c) == 0 || c[0] == ""
}

// AppManifest is the validated descriptor of one tool directory.
type AppManifest struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Command  Command           `yaml:"command"`
	Category string            `yaml:"category,omitempty"`
	Synopsis string            `yaml:"synopsis,omitempty"`
	Icon     string            `yaml:"icon,omitempty"`
	Tags     []string          `yaml:"tags,omitempty"`
	Env      map[string]string `yaml:"env,omitempty"`
	Cwd      string            `yaml:"cwd,omitempty"`

	// Dir is the absolute tool directory the manifest was loaded from.
	// Not part of the descriptor itself.
	Dir string `yaml:"-"`
}

// HasTag reports whether the manifest carries the given tag.
func (m *AppManifest) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsCLI reports wrapper-generation eligibility.
func (m *AppManifest) IsCLI() bool { return m.HasTag(TagCLI) }

// IconPath returns the absolute icon path, or "" when no icon is set.
func (m *AppManifest) IconPath() string {
	if m.Icon == "" {
		return ""
	}
	return filepath.Join(m.Dir, m.Icon)
}

// WorkingDir returns the directory a launched process starts in: the tool
// directory, or the manifest cwd override resolved against it.
func (m *AppManifest) WorkingDir() string {
	if m.Cwd == "" {
		return m.Dir
	}
	return filepath.Join(m.Dir, m.Cwd)
}

// EntryPoint resolves the first command element against the tool directory.
// Absolute paths are returned unchanged.
func (m *AppManifest) EntryPoint() string {
	if m.Command.Empty() {
		return ""
	}
	if filepath.IsAbs(m.Command[0]) {
		return m.Command[0]
	}
	return filepath.Join(m.Dir, m.Command[0])
}

// LaunchScriptPath returns the conventional per-tool run.sh used by PATH
// wrappers and checked by the doctor.
func (m *AppManifest) LaunchScriptPath(scriptName string) string {
	return filepath.Join(m.Dir, scriptName)
}
