// Package wrapper regenerates the PATH-exposed command stubs in bin/ from
// the registry. Wrappers are derived state: everything here is
// reconstructable from manifests, and regeneration is idempotent.
package wrapper

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"mastermenu/internal/registry"
	"mastermenu/pkg/logging"

	"github.com/Masterminds/sprig/v3"
)

// stubTemplate is the wrapper body. It resolves the tool directory
// absolutely, so the stub works from any caller working directory.
const stubTemplate = `#!/usr/bin/env bash
set -euo pipefail
APP_DIR={{ .AppDir | quote }}
exec "${APP_DIR}/{{ .Script }}" "$@"
`

// Report summarizes one generation pass.
type Report struct {
	// Written lists the wrapper ids that were (re)generated, in id order.
	Written []string
	// Removed lists stale wrapper files that were deleted: executable files
	// in bin/ no longer backed by a cli-tagged manifest.
	Removed []string
}

// Generator renders wrapper stubs for cli-tagged tools.
type Generator struct {
	// Script is the per-tool entry script the stubs delegate to.
	Script string

	tmpl *template.Template
}

// New returns a generator delegating to the given launch script name.
func New(script string) *Generator {
	return &Generator{
		Script: script,
		tmpl:   template.Must(template.New("wrapper").Funcs(sprig.FuncMap()).Parse(stubTemplate)),
	}
}

// Generate writes one executable stub per cli-tagged manifest into binDir
// and removes stale wrappers. Output is deterministic: the same registry
// produces byte-identical files on every run. Stale removal only touches
// executable regular files, so foreign data dropped into bin/ survives.
func (g *Generator) Generate(idx *registry.Index, binDir string) (*Report, error) {
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create wrapper directory %s: %w", binDir, err)
	}

	report := &Report{}
	valid := make(map[string]bool)

	for _, m := range idx.CLITools() {
		var buf bytes.Buffer
		data := struct {
			AppDir string
			Script string
		}{AppDir: m.Dir, Script: g.Script}
		if err := g.tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("cannot render wrapper for %s: %w", m.ID, err)
		}
		path := filepath.Join(binDir, m.ID)
		if err := os.WriteFile(path, buf.Bytes(), 0755); err != nil {
			return nil, fmt.Errorf("cannot write wrapper %s: %w", path, err)
		}
		// WriteFile's mode only applies on creation; an existing stub keeps
		// whatever mode it had, so the executable bit must be restored.
		if err := os.Chmod(path, 0755); err != nil {
			return nil, fmt.Errorf("cannot set wrapper mode %s: %w", path, err)
		}
		valid[m.ID] = true
		report.Written = append(report.Written, m.ID)
		logging.Debug("Wrapper", "Generated wrapper %s", path)
	}

	removed, err := removeStale(binDir, valid)
	if err != nil {
		return nil, err
	}
	report.Removed = removed
	return report, nil
}

// removeStale deletes executable files in binDir that no longer correspond
// to a cli-tagged manifest, logging each removal.
func removeStale(binDir string, valid map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(binDir)
	if err != nil {
		return nil, fmt.Errorf("cannot read wrapper directory %s: %w", binDir, err)
	}

	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || valid[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Mode()&0111 == 0 {
			continue
		}
		path := filepath.Join(binDir, entry.Name())
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("cannot remove stale wrapper %s: %w", path, err)
		}
		removed = append(removed, entry.Name())
		logging.Info("Wrapper", "Removed stale wrapper %s", path)
	}
	return removed, nil
}
