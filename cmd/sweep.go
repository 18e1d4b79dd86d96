package cmd

import (
	"fmt"

	"mastermenu/internal/workdir"

	"github.com/spf13/cobra"
)

var (
	sweepDryRun   bool
	sweepKeepDays int
)

// sweepCmd retires run directories older than the retention threshold.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete run workdirs older than the retention threshold",
	Long: `sweep enumerates per-run workdirs under the workdir root and deletes
those whose encoded timestamp is older than the keep window. Directories
whose name does not parse as a run timestamp are never touched.`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().BoolVar(&sweepDryRun, "dry-run", false, "print decisions without deleting anything")
	sweepCmd.Flags().IntVar(&sweepKeepDays, "keep-days", 0, "retention threshold in days (default: config.yaml or 14)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	// Changed distinguishes --keep-days 0 (delete every completed run) from
	// the flag being left unset.
	keepDays := cfg.Retention.KeepDays
	if cmd.Flags().Changed("keep-days") {
		keepDays = sweepKeepDays
	}

	decisions, errs := workdir.Sweep(cfg.WorkdirRoot, keepDays, sweepDryRun)
	for _, d := range decisions {
		if d.Action != workdir.ActionDelete {
			continue
		}
		verb := "deleted"
		if sweepDryRun {
			verb = "would delete"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, d.Path)
	}

	for _, sweepErr := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "[FAIL] %v\n", sweepErr)
	}
	if len(errs) > 0 {
		return fmt.Errorf("sweep completed with %d error(s)", len(errs))
	}
	return nil
}
