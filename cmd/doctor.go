package cmd

import (
	"fmt"

	"mastermenu/internal/doctor"
	"mastermenu/internal/settings"

	"github.com/spf13/cobra"
)

// doctorCmd runs the read-only validation pass. Exit 0 on a clean registry,
// non-zero with one [FAIL] line per finding on stderr otherwise.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate manifests, launch scripts and the entry script",
	Long: `doctor runs every validation check without mutating anything:
manifest loading across all tool directories, icon existence, the
executable bit on each tool's run.sh, and a syntax-only parse of the
top-level entry script.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	d := doctor.New(cfg.AppsDir(), settings.LaunchScriptName, cfg.EntryScriptPath())
	report, err := d.Check(cmd.Context())
	if err != nil {
		return err
	}

	for _, finding := range report.Findings {
		reason := finding.Reason
		if finding.ToolID != "" {
			reason = fmt.Sprintf("%s: %s", finding.ToolID, reason)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "[FAIL] %s\n", reason)
	}

	if !report.Passed() {
		return fmt.Errorf("doctor found %d problem(s)", len(report.Findings))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All checks passed.")
	return nil
}
