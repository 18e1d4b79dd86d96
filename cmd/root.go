package cmd

import (
	"errors"
	"os"

	"mastermenu/internal/launch"
	"mastermenu/internal/settings"
	"mastermenu/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
)

var (
	rootFlag  string
	debugFlag bool
)

// rootCmd represents the base command for the mastermenu application.
var rootCmd = &cobra.Command{
	Use:   "mastermenu",
	Short: "Aggregate many independent tools behind one launcher",
	Long: `mastermenu maintains a registry of tool manifests under apps/,
launches tools with a per-run working directory contract, regenerates
PATH wrappers for cli-tagged tools, and retires old run directories.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if debugFlag {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command. Called from main with
// the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// loadSettings resolves the launcher root and loads its configuration.
// Shared by every subcommand.
func loadSettings() (settings.Config, error) {
	root, err := settings.ResolveRoot(rootFlag)
	if err != nil {
		return settings.Config{}, err
	}
	return settings.Load(root)
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mastermenu version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps error types to semantic exit codes. A tool's own
// non-zero exit in blocking mode is passed through truthfully.
func getExitCode(err error) int {
	var nonZero *launch.NonZeroExitError
	if errors.As(err, &nonZero) && nonZero.Code > 0 {
		return nonZero.Code
	}
	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "launcher root directory (default: $MASTERMENU_ROOT or the working directory)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
}
