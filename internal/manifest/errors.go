package manifest

import (
	"fmt"
	"strings"
)

// FailureKind categorizes why a tool directory did not produce a usable
// manifest.
type FailureKind int

const (
	// FailureParse means the descriptor is not valid YAML or a field has the
	// wrong shape (e.g. tags given as a scalar or map).
	FailureParse FailureKind = iota
	// FailureMissingFields means one or more required fields are absent or
	// empty. All offending fields are reported in a single failure.
	FailureMissingFields
	// FailureInvalidID means the id claims the reserved scaffold name.
	FailureInvalidID
	// FailureIconNotFound means the manifest names an icon that does not
	// exist under the tool directory.
	FailureIconNotFound
	// FailureDuplicateID means two tool directories claim the same id.
	FailureDuplicateID
)

// String returns a human-readable name for the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureParse:
		return "parse error"
	case FailureMissingFields:
		return "missing required fields"
	case FailureInvalidID:
		return "invalid id"
	case FailureIconNotFound:
		return "icon not found"
	case FailureDuplicateID:
		return "duplicate id"
	default:
		return "unknown failure"
	}
}

// LoadFailure is a structured validation failure for one tool directory.
// A directory yields either a validated manifest or exactly one LoadFailure,
// never both and never a partial record.
type LoadFailure struct {
	// Dir is the tool directory the failure belongs to.
	Dir string
	// Kind categorizes the failure.
	Kind FailureKind
	// Message is the human-readable reason.
	Message string
	// Fields lists the offending field names for FailureMissingFields.
	Fields []string
	// ConflictDir names the other directory for FailureDuplicateID.
	ConflictDir string
}

// Error implements the error interface.
func (f *LoadFailure) Error() string {
	base := fmt.Sprintf("%s: %s", f.Dir, f.Kind)
	switch f.Kind {
	case FailureMissingFields:
		return fmt.Sprintf("%s: %s", base, strings.Join(f.Fields, ", "))
	case FailureDuplicateID:
		return fmt.Sprintf("%s: %s (also claimed by %s)", base, f.Message, f.ConflictDir)
	default:
		if f.Message != "" {
			return fmt.Sprintf("%s: %s", base, f.Message)
		}
		return base
	}
}
