// Package logging provides the structured logging system for mastermenu,
// built on Go's standard slog package.
//
// All log entries carry a timestamp, a level, a subsystem identifier, a
// message, and an optional error. Two modes exist:
//
//   - CLI mode (InitForCLI): entries are written as slog text lines to the
//     given writer, filtered by level. Used by every maintenance command.
//   - UI mode (InitForUI): entries are delivered over a buffered channel to
//     the graphical launcher, which does its own filtering and rendering.
//
// Usage:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Info("Registry", "Loaded %d manifests", n)
//	logging.Error("Launch", err, "Failed to start %s", id)
package logging
