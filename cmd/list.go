package cmd

import (
	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/razmans/devlog/internal/filter"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged entries",
	Long: `List logged entries, newest first.

Usage:
  devlog list                        List all entries
  devlog list --year 2026            Only entries from a year
  devlog list --category quality     Only entries in a category`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		year, _ := cmd.Flags().GetString("year")
		category, _ := cmd.Flags().GetString("category")
		handlers.ListEntries(deps, filter.NewFilter("", category, year))
	},
}

func init() {
	listCmd.Flags().StringP("year", "y", "", "Filter entries by year (YYYY)")
	listCmd.Flags().StringP("category", "c", "", "Filter entries by category id")
}
