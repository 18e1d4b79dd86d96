package cmd

import (
	"fmt"

	"mastermenu/internal/registry"
	"mastermenu/internal/settings"
	"mastermenu/internal/wrapper"
	"mastermenu/pkg/logging"

	"github.com/spf13/cobra"
)

// wrappersCmd regenerates the PATH wrapper stubs in bin/ from the registry.
// Running it twice against an unchanged registry is a no-op apart from
// mtimes.
var wrappersCmd = &cobra.Command{
	Use:   "wrappers",
	Short: "Regenerate PATH wrappers for cli-tagged tools",
	Args:  cobra.NoArgs,
	RunE:  runWrappers,
}

func init() {
	rootCmd.AddCommand(wrappersCmd)
}

func runWrappers(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	idx, failures, err := registry.Build(cfg.AppsDir())
	if err != nil {
		return err
	}
	for _, f := range failures {
		logging.Warn("Wrapper", "Skipping invalid manifest: %s", f.Error())
	}

	gen := wrapper.New(settings.LaunchScriptName)
	report, err := gen.Generate(idx, cfg.BinDir())
	if err != nil {
		return err
	}

	for _, id := range report.Written {
		fmt.Fprintf(cmd.OutOrStdout(), "Generated bin/%s\n", id)
	}
	for _, id := range report.Removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed stale bin/%s\n", id)
	}
	return nil
}
