package cmd

import (
	"fmt"
	"strings"

	"mastermenu/internal/registry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// listCmd prints the current registry as a table, including load failures
// so a broken manifest is visible next to its healthy neighbors.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered tools",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	idx, failures, err := registry.Build(cfg.AppsDir())
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Tags", "Synopsis"})
	for _, m := range idx.All() {
		t.AppendRow(table.Row{m.ID, m.Name, m.Category, strings.Join(m.Tags, ","), m.Synopsis})
	}
	t.Render()

	for _, f := range failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "[FAIL] %s\n", f.Error())
	}
	return nil
}
