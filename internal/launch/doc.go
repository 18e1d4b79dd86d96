// Package launch turns a validated manifest into a running process.
//
// The Orchestrator owns the full launch sequence: provision a timestamped
// working directory, verify the entry point, assemble the environment
// contract, and hand the assembled Spec to a Runner. Runner is an interface
// so tests can capture the exact spawn arguments without forking; the
// production ExecRunner wraps os/exec and supports both blocking and
// fire-and-forget modes. Each failure point in the sequence returns its own
// typed error so callers can map outcomes to exit codes with errors.As.
package launch
