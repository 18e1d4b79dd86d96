// Package registry builds the in-memory tool index from the apps directory.
//
// A build is a full pass: every tool directory is loaded independently, so a
// broken manifest never hides its neighbors. The resulting Index is a
// read-only snapshot; callers wanting a fresh view rebuild and swap.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"mastermenu/internal/manifest"
	"mastermenu/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// loadConcurrency bounds parallel manifest reads during a build.
const loadConcurrency = 8

// Index is an immutable snapshot of all valid manifests from one build pass.
type Index struct {
	byID map[string]*manifest.AppManifest
	ids  []string
}

// Get returns the manifest for an id.
func (idx *Index) Get(id string) (*manifest.AppManifest, bool) {
	m, ok := idx.byID[id]
	return m, ok
}

// IDs returns all registered ids in sorted order.
func (idx *Index) IDs() []string {
	out := make([]string, len(idx.ids))
	copy(out, idx.ids)
	return out
}

// Len returns the number of registered tools.
func (idx *Index) Len() int { return len(idx.ids) }

// All returns every manifest in id order.
func (idx *Index) All() []*manifest.AppManifest {
	out := make([]*manifest.AppManifest, 0, len(idx.ids))
	for _, id := range idx.ids {
		out = append(out, idx.byID[id])
	}
	return out
}

// CLITools returns the manifests tagged for wrapper generation, in id order.
func (idx *Index) CLITools() []*manifest.AppManifest {
	var out []*manifest.AppManifest
	for _, id := range idx.ids {
		if idx.byID[id].IsCLI() {
			out = append(out, idx.byID[id])
		}
	}
	return out
}

// Build scans appsDir and loads every tool directory. Directories are
// processed in sorted name order; loads run concurrently but results are
// merged in that order, so repeated builds on the same input are identical.
// Duplicate ids keep the first directory in sort order and report a
// FailureDuplicateID naming both.
func Build(appsDir string) (*Index, []manifest.LoadFailure, error) {
	entries, err := os.ReadDir(appsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read apps directory %s: %w", appsDir, err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() || manifest.Excluded(entry.Name()) {
			continue
		}
		dirs = append(dirs, filepath.Join(appsDir, entry.Name()))
	}
	sort.Strings(dirs)

	type loadResult struct {
		manifest *manifest.AppManifest
		failure  *manifest.LoadFailure
	}
	results := make([]loadResult, len(dirs))

	var g errgroup.Group
	g.SetLimit(loadConcurrency)
	for i, dir := range dirs {
		i, dir := i, dir // per-iteration copies; required under go <1.22
		g.Go(func() error {
			m, failure := manifest.Load(dir)
			results[i] = loadResult{manifest: m, failure: failure}
			return nil
		})
	}
	// Loads never return errors through the group; failures are data.
	_ = g.Wait()

	idx := &Index{byID: make(map[string]*manifest.AppManifest)}
	var failures []manifest.LoadFailure
	for i, res := range results {
		if res.failure != nil {
			failures = append(failures, *res.failure)
			continue
		}
		m := res.manifest
		if existing, ok := idx.byID[m.ID]; ok {
			failures = append(failures, manifest.LoadFailure{
				Dir:         dirs[i],
				Kind:        manifest.FailureDuplicateID,
				Message:     fmt.Sprintf("id %q already registered", m.ID),
				ConflictDir: existing.Dir,
			})
			continue
		}
		idx.byID[m.ID] = m
		idx.ids = append(idx.ids, m.ID)
	}
	sort.Strings(idx.ids)

	logging.Debug("Registry", "Built index with %d tools, %d failures from %s", idx.Len(), len(failures), appsDir)
	return idx, failures, nil
}
