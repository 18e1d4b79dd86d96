// Package doctor runs the read-only validation pass over the registry and
// the filesystem. It mutates nothing and aggregates every finding instead
// of stopping at the first.
package doctor

import (
	"context"
	"fmt"
	"os"

	"mastermenu/internal/launch"
	"mastermenu/internal/registry"
	"mastermenu/pkg/logging"
)

// Finding is one failed check.
type Finding struct {
	// ToolID is the affected tool, or "" for launcher-level findings.
	ToolID string
	// Reason is the human-readable failure description.
	Reason string
}

// Report aggregates all findings of one doctor pass.
type Report struct {
	Findings []Finding
}

// Passed reports whether the pass produced no findings.
func (r *Report) Passed() bool { return len(r.Findings) == 0 }

func (r *Report) add(toolID, format string, args ...interface{}) {
	r.Findings = append(r.Findings, Finding{ToolID: toolID, Reason: fmt.Sprintf(format, args...)})
}

// Doctor validates manifests, per-tool launch scripts, and the top-level
// entry script.
type Doctor struct {
	// AppsDir is the tool directory root.
	AppsDir string
	// LaunchScript is the per-tool entry script name (run.sh).
	LaunchScript string
	// EntryScript is the top-level launcher script to syntax-check; empty
	// skips the check.
	EntryScript string
	// Runner executes the shell syntax check. Tests substitute a fake.
	Runner launch.Runner
}

// New returns a doctor using the real process runner for syntax checks.
func New(appsDir, launchScript, entryScript string) *Doctor {
	return &Doctor{
		AppsDir:      appsDir,
		LaunchScript: launchScript,
		EntryScript:  entryScript,
		Runner:       launch.ExecRunner{},
	}
}

// Check runs the full pass: manifest loading across all tool directories,
// independent icon re-verification, executable-bit checks on every tool's
// launch script, and a syntax-only parse of the top-level entry script.
func (d *Doctor) Check(ctx context.Context) (*Report, error) {
	report := &Report{}

	idx, failures, err := registry.Build(d.AppsDir)
	if err != nil {
		return nil, err
	}
	for _, f := range failures {
		report.add("", "%s", f.Error())
	}

	for _, m := range idx.All() {
		// Icon existence is already enforced by the loader; re-verified here
		// as an independent safety net.
		if icon := m.IconPath(); icon != "" {
			if _, err := os.Stat(icon); err != nil {
				report.add(m.ID, "icon missing: %s", icon)
			}
		}

		script := m.LaunchScriptPath(d.LaunchScript)
		info, err := os.Stat(script)
		switch {
		case err != nil:
			report.add(m.ID, "launch script missing: %s", script)
		case info.Mode()&0111 == 0:
			report.add(m.ID, "launch script not executable: %s", script)
		}
	}

	// The entry script belongs to the presentation layer; a root without one
	// is valid, so absence skips the check rather than failing it.
	if d.EntryScript != "" {
		if _, err := os.Stat(d.EntryScript); err == nil {
			if err := d.syntaxCheck(ctx, d.EntryScript); err != nil {
				report.add("", "entry script syntax check failed: %v", err)
			}
		} else {
			logging.Debug("Doctor", "Entry script %s not present, skipping syntax check", d.EntryScript)
		}
	}

	return report, nil
}

// syntaxCheck parses the script without executing it (bash -n).
func (d *Doctor) syntaxCheck(ctx context.Context, script string) error {
	code, err := d.Runner.Run(ctx, launch.Spec{
		Argv:  []string{"bash", "-n", script},
		Env:   os.Environ(),
		Block: true,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("bash -n exited with code %d", code)
	}
	return nil
}
