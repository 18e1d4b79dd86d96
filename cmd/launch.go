package cmd

import (
	"errors"
	"fmt"

	"mastermenu/internal/launch"
	"mastermenu/internal/registry"

	"github.com/spf13/cobra"
)

var launchDetach bool

// launchCmd starts one tool from the registry. Blocking by default: the
// command waits for the tool and passes its exit code through. --detach
// starts the tool and returns immediately, the mode the graphical launcher
// uses.
var launchCmd = &cobra.Command{
	Use:   "launch <tool-id>",
	Short: "Launch a tool with a fresh per-run workdir",
	Args:  cobra.ExactArgs(1),
	RunE:  runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)

	launchCmd.Flags().BoolVar(&launchDetach, "detach", false, "start the tool and return without waiting")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	idx, failures, err := registry.Build(cfg.AppsDir())
	if err != nil {
		return err
	}

	toolID := args[0]
	m, ok := idx.Get(toolID)
	if !ok {
		for _, f := range failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "[FAIL] %s\n", f.Error())
		}
		return fmt.Errorf("unknown tool %q", toolID)
	}

	orch := launch.New(cfg.WorkdirRoot)
	result, err := orch.Launch(cmd.Context(), m, launch.Options{Block: !launchDetach})
	if err != nil {
		var nonZero *launch.NonZeroExitError
		if errors.As(err, &nonZero) {
			// The tool ran and failed; report truthfully and propagate the
			// code through the exit-code mapping in Execute.
			fmt.Fprintf(cmd.ErrOrStderr(), "%s exited with code %d (workdir %s)\n", toolID, nonZero.Code, result.Session.Workdir)
		}
		return err
	}

	if result.Blocked {
		fmt.Fprintf(cmd.OutOrStdout(), "%s finished (workdir %s)\n", toolID, result.Session.Workdir)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s started (workdir %s)\n", toolID, result.Session.Workdir)
	}
	return nil
}
