package cmd

import (
	"fmt"

	"mastermenu/internal/scaffold"

	"github.com/spf13/cobra"
)

var (
	createName     string
	createCategory string
	createSynopsis string
	createCLI      bool
)

// createCmd scaffolds a new tool directory under apps/.
var createCmd = &cobra.Command{
	Use:   "create <tool-id>",
	Short: "Scaffold a new tool directory",
	Long: `create writes apps/<tool-id>/ with an app.yaml manifest and an
executable run.sh stub. It fails if the identifier is already taken.

Examples:
  mastermenu create gpu-monitor --name "GPU Monitor" --category monitoring
  mastermenu create backup --cli`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createName, "name", "", "display name (default: the tool id)")
	createCmd.Flags().StringVar(&createCategory, "category", "", "menu category (default: utilities)")
	createCmd.Flags().StringVar(&createSynopsis, "synopsis", "", "one-line description")
	createCmd.Flags().BoolVar(&createCLI, "cli", false, "tag the tool for PATH wrapper generation")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	m, err := scaffold.Create(cfg.AppsDir(), scaffold.Options{
		ID:       args[0],
		Name:     createName,
		Category: createCategory,
		Synopsis: createSynopsis,
		CLI:      createCLI,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s at %s\n", m.ID, m.Dir)
	return nil
}
