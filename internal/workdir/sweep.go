package workdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mastermenu/pkg/logging"
)

// Action is the sweep decision for one run directory.
type Action int

const (
	// ActionKeep means the directory is younger than the retention threshold.
	ActionKeep Action = iota
	// ActionDelete means the directory is older than the retention threshold.
	ActionDelete
	// ActionSkip means the directory name does not parse as a run timestamp.
	// Unparseable names are treated as "not ours" and never deleted.
	ActionSkip
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionKeep:
		return "keep"
	case ActionDelete:
		return "delete"
	case ActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Decision pairs one run directory with the sweep outcome decided for it.
type Decision struct {
	Path   string
	Action Action
}

// timeNow is a package-level clock to make retention cutoffs testable.
var timeNow = time.Now

// Sweep walks <root>/<tool>/<run> and marks run directories whose encoded
// timestamp is older than keepDays for deletion. The decision list is
// computed identically for dry and real runs; only dryRun=false mutates the
// filesystem. Deletion errors are collected per directory and do not abort
// the remaining sweep.
func Sweep(root string, keepDays int, dryRun bool) ([]Decision, []error) {
	decisions := decide(root, keepDays)
	if dryRun {
		return decisions, nil
	}

	var errs []error
	for _, d := range decisions {
		if d.Action != ActionDelete {
			continue
		}
		if err := os.RemoveAll(d.Path); err != nil {
			errs = append(errs, fmt.Errorf("cannot remove %s: %w", d.Path, err))
			continue
		}
		logging.Info("Sweep", "Removed expired run directory %s", d.Path)
	}
	return decisions, errs
}

// decide enumerates run directories and classifies each one. It performs no
// filesystem mutation.
func decide(root string, keepDays int) []Decision {
	cutoff := timeNow().AddDate(0, 0, -keepDays)

	toolEntries, err := os.ReadDir(root)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Warn("Sweep", "Cannot read workdir root %s: %v", root, err)
		}
		return nil
	}

	var decisions []Decision
	for _, tool := range toolEntries {
		if !tool.IsDir() {
			continue
		}
		toolDir := filepath.Join(root, tool.Name())
		runEntries, err := os.ReadDir(toolDir)
		if err != nil {
			logging.Warn("Sweep", "Cannot read %s: %v", toolDir, err)
			continue
		}
		for _, run := range runEntries {
			if !run.IsDir() {
				continue
			}
			path := filepath.Join(toolDir, run.Name())
			stamp, ok := parseRunName(run.Name())
			if !ok {
				decisions = append(decisions, Decision{Path: path, Action: ActionSkip})
				continue
			}
			action := ActionKeep
			if stamp.Before(cutoff) {
				action = ActionDelete
			}
			decisions = append(decisions, Decision{Path: path, Action: action})
		}
	}
	return decisions
}

// parseRunName recovers the start timestamp from a run directory name,
// tolerating the -N collision suffix appended by Provision. Anything else
// fails the parse and is left alone by the sweep.
func parseRunName(name string) (time.Time, bool) {
	stamp := name
	if len(name) > len(TimestampLayout) {
		rest := name[len(TimestampLayout):]
		if !strings.HasPrefix(rest, "-") {
			return time.Time{}, false
		}
		if _, err := strconv.Atoi(rest[1:]); err != nil {
			return time.Time{}, false
		}
		stamp = name[:len(TimestampLayout)]
	}
	t, err := time.ParseInLocation(TimestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
