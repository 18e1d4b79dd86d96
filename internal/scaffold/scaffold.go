// Package scaffold creates new tool directories from the built-in template:
// an app.yaml manifest plus an executable run.sh stub. Scaffolding is a
// maintenance action; the orchestrator itself never writes manifests.
package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"mastermenu/internal/manifest"
	"mastermenu/pkg/logging"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

// idPattern constrains tool identifiers to wrapper- and directory-safe
// names.
var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

const runScriptTemplate = `#!/usr/bin/env bash
set -euo pipefail
cd "$(dirname "${BASH_SOURCE[0]}")"
# {{ .Name }} entry point. Output goes to ${OUTPUT_ROOT:-.}, scratch to ${TMP_ROOT:-/tmp}.
echo "{{ .ID }}: not implemented yet" >&2
exit 1
`

// Options describes the tool to scaffold. ID is required; the rest default
// sensibly.
type Options struct {
	ID       string
	Name     string
	Category string
	Synopsis string
	// CLI tags the tool for PATH wrapper generation.
	CLI bool
}

// Create writes apps/<id>/ with a manifest and an executable run.sh stub.
// It fails if the id is malformed, reserved, or already taken.
func Create(appsDir string, opts Options) (*manifest.AppManifest, error) {
	if !idPattern.MatchString(opts.ID) {
		return nil, fmt.Errorf("invalid tool id %q: must match %s", opts.ID, idPattern.String())
	}
	if opts.ID == manifest.ScaffoldDirName {
		return nil, fmt.Errorf("tool id %q is reserved for the scaffold template", opts.ID)
	}

	toolDir := filepath.Join(appsDir, opts.ID)
	if _, err := os.Stat(toolDir); err == nil {
		return nil, fmt.Errorf("tool %q already exists at %s", opts.ID, toolDir)
	}

	if opts.Name == "" {
		opts.Name = opts.ID
	}
	if opts.Category == "" {
		opts.Category = manifest.DefaultCategory
	}

	m := &manifest.AppManifest{
		ID:       opts.ID,
		Name:     opts.Name,
		Command:  manifest.Command{"./run.sh"},
		Category: opts.Category,
		Synopsis: opts.Synopsis,
		Dir:      toolDir,
	}
	if opts.CLI {
		m.Tags = []string{manifest.TagCLI}
	}

	if err := os.MkdirAll(toolDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create tool directory %s: %w", toolDir, err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("cannot encode manifest: %w", err)
	}
	manifestPath := filepath.Join(toolDir, manifest.ManifestFileName)
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return nil, fmt.Errorf("cannot write %s: %w", manifestPath, err)
	}

	tmpl := template.Must(template.New("run").Funcs(sprig.FuncMap()).Parse(runScriptTemplate))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("cannot render run script: %w", err)
	}
	scriptPath := filepath.Join(toolDir, "run.sh")
	if err := os.WriteFile(scriptPath, buf.Bytes(), 0755); err != nil {
		return nil, fmt.Errorf("cannot write %s: %w", scriptPath, err)
	}

	logging.Info("Scaffold", "Created tool %s at %s", opts.ID, toolDir)
	return m, nil
}
