package launch

import "fmt"

// WorkdirError means the per-run working directory could not be allocated.
// No process has been spawned when this is returned.
type WorkdirError struct {
	ToolID string
	Reason error
}

func (e *WorkdirError) Error() string {
	return fmt.Sprintf("cannot allocate workdir for %s: %v", e.ToolID, e.Reason)
}

func (e *WorkdirError) Unwrap() error { return e.Reason }

// CommandNotFoundError means the resolved entry point does not exist on
// disk. No process has been spawned.
type CommandNotFoundError struct {
	ToolID string
	Path   string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command not found for %s: %s", e.ToolID, e.Path)
}

// SpawnError means the operating system refused to start the process.
type SpawnError struct {
	ToolID string
	Reason error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("cannot spawn %s: %v", e.ToolID, e.Reason)
}

func (e *SpawnError) Unwrap() error { return e.Reason }

// NonZeroExitError reports a blocking launch whose tool exited with a
// non-zero code. This is information about the tool, not an orchestrator
// defect; the code is passed through truthfully.
type NonZeroExitError struct {
	ToolID string
	Code   int
}

func (e *NonZeroExitError) Error() string {
	return fmt.Sprintf("tool %s exited with code %d", e.ToolID, e.Code)
}
