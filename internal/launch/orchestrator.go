package launch

import (
	"context"
	"fmt"
	"os"
	"time"

	"mastermenu/internal/manifest"
	"mastermenu/internal/workdir"
	"mastermenu/pkg/logging"

	"github.com/google/uuid"
)

// Environment variables exposed to every launched tool.
const (
	// EnvWorkdir is the durable per-run output directory.
	EnvWorkdir = "MASTERMENU_WORKDIR"
	// EnvOutputRoot aliases the durable output directory for tools that
	// follow the generic contract rather than the launcher-specific one.
	EnvOutputRoot = "OUTPUT_ROOT"
	// EnvTmpRoot is the scratch directory, cleaned with the run directory.
	EnvTmpRoot = "TMP_ROOT"
	// EnvToolID names the launched tool.
	EnvToolID = "MASTERMENU_TOOL_ID"
	// EnvRunID carries the unique run session id.
	EnvRunID = "MASTERMENU_RUN_ID"
)

// Session describes one launch. It is ephemeral: the run directory on disk
// is its only durable trace, and the orchestrator does not track the child
// beyond launch-time failures.
type Session struct {
	ID        string
	ToolID    string
	Workdir   string
	StartedAt time.Time
}

// Result reports a completed launch call. ExitCode is meaningful only when
// Blocked is true.
type Result struct {
	Session  Session
	Blocked  bool
	ExitCode int
}

// Options selects the launch mode.
type Options struct {
	// Block waits for the tool and reports its exit code. Interactive and
	// GUI-bound tools launch detached instead.
	Block bool
}

// Orchestrator starts tool processes with the per-run environment contract.
type Orchestrator struct {
	// WorkdirRoot is the shared root for per-run directories.
	WorkdirRoot string
	// Runner performs the actual process start.
	Runner Runner
}

// New returns an orchestrator spawning real processes.
func New(workdirRoot string) *Orchestrator {
	return &Orchestrator{WorkdirRoot: workdirRoot, Runner: ExecRunner{}}
}

// Launch allocates a run directory, builds the child environment, and
// starts the tool's entry point. The working directory of the child is the
// tool directory, not the run directory; tools find their run directory
// through the environment.
func (o *Orchestrator) Launch(ctx context.Context, m *manifest.AppManifest, opts Options) (*Result, error) {
	session := Session{
		ID:        uuid.New().String(),
		ToolID:    m.ID,
		StartedAt: time.Now(),
	}

	runDir, err := workdir.Provision(o.WorkdirRoot, m.ID, session.StartedAt)
	if err != nil {
		return nil, &WorkdirError{ToolID: m.ID, Reason: err}
	}
	session.Workdir = runDir

	entry := m.EntryPoint()
	if _, err := os.Stat(entry); err != nil {
		return nil, &CommandNotFoundError{ToolID: m.ID, Path: entry}
	}

	argv := append([]string{entry}, m.Command[1:]...)
	spec := Spec{
		Argv:  argv,
		Dir:   m.WorkingDir(),
		Env:   buildEnv(m, session),
		Block: opts.Block,
	}

	logging.Info("Launch", "Starting %s (run %s, workdir %s)", m.ID, session.ID, runDir)
	code, err := o.Runner.Run(ctx, spec)
	if err != nil {
		return nil, &SpawnError{ToolID: m.ID, Reason: err}
	}

	result := &Result{Session: session, Blocked: opts.Block, ExitCode: code}
	if opts.Block && code != 0 {
		return result, &NonZeroExitError{ToolID: m.ID, Code: code}
	}
	return result, nil
}

// buildEnv composes the child environment: the caller's environment, then
// manifest env entries, then the run contract variables.
func buildEnv(m *manifest.AppManifest, session Session) []string {
	env := os.Environ()
	for k, v := range m.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	env = append(env,
		fmt.Sprintf("%s=%s", EnvWorkdir, session.Workdir),
		fmt.Sprintf("%s=%s", EnvOutputRoot, session.Workdir),
		fmt.Sprintf("%s=%s", EnvTmpRoot, workdir.TmpDir(session.Workdir)),
		fmt.Sprintf("%s=%s", EnvToolID, session.ToolID),
		fmt.Sprintf("%s=%s", EnvRunID, session.ID),
	)
	return env
}
