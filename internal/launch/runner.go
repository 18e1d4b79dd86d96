package launch

import (
	"context"
	"os/exec"
)

// Spec is the fully resolved description of one process start: argv,
// working directory, complete environment, and whether the caller waits.
// Building a Spec is pure; only a Runner touches the operating system.
type Spec struct {
	Argv  []string
	Dir   string
	Env   []string
	Block bool
}

// Runner starts processes from specs. The exec-backed implementation is the
// only one used in production; tests substitute fakes to exercise the
// orchestrator without spawning anything.
type Runner interface {
	// Run executes the spec. In blocking mode it waits and returns the exit
	// code. In detached mode it returns 0 as soon as the process started.
	// A start refusal is returned as an error with exit code -1.
	Run(ctx context.Context, spec Spec) (int, error)
}

// ExecRunner runs specs through os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, spec Spec) (int, error) {
	cmd := exec.CommandContext(ctx, spec.Argv[0], spec.Argv[1:]...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env

	if !spec.Block {
		// Detached: the tool owns its own lifetime from here on.
		if err := cmd.Start(); err != nil {
			return -1, err
		}
		// Reap the child when it eventually exits so it does not linger as a
		// zombie while the launcher keeps running.
		go func() { _ = cmd.Wait() }()
		return 0, nil
	}

	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
