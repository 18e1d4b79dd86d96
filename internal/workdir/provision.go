// Package workdir allocates per-run working directories and retires old
// ones on a retention policy.
//
// Layout: <root>/<tool-id>/<YYYYMMDD-HHMMSS>[-N]/ with a tmp/ subdirectory
// for scratch data. The run directory name is the only durable record of a
// launch; the sweeper parses it back to decide retention.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout encodes run start times into filesystem-safe names.
const TimestampLayout = "20060102-150405"

// maxCollisionAttempts bounds the disambiguating suffix search. Two runs of
// the same tool within one second are already rare; dozens are a bug.
const maxCollisionAttempts = 100

// TmpSubdir is the scratch subdirectory inside every run directory.
const TmpSubdir = "tmp"

// Provision allocates a fresh run directory for a tool under root and
// creates its tmp/ subdirectory. On a name collision a numeric suffix is
// appended (-2, -3, ...), so launches within the same second stay distinct.
func Provision(root string, toolID string, startedAt time.Time) (string, error) {
	base := filepath.Join(root, toolID)
	stamp := startedAt.Format(TimestampLayout)

	for attempt := 1; attempt <= maxCollisionAttempts; attempt++ {
		name := stamp
		if attempt > 1 {
			name = fmt.Sprintf("%s-%d", stamp, attempt)
		}
		runDir := filepath.Join(base, name)
		if _, err := os.Stat(runDir); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Join(runDir, TmpSubdir), 0755); err != nil {
			return "", fmt.Errorf("cannot create run directory %s: %w", runDir, err)
		}
		return runDir, nil
	}
	return "", fmt.Errorf("no free run directory name under %s for %s", base, stamp)
}

// TmpDir returns the scratch directory of a run directory.
func TmpDir(runDir string) string {
	return filepath.Join(runDir, TmpSubdir)
}
