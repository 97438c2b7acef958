package cmd

import (
	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category entry counts and suggested scores",
	Long: `Show entry counts per KPI category for a year, with the suggested
score tier for each weighted category.

Usage:
  devlog stats              Stats for the configured year
  devlog stats --year 2025  Stats for another year`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		year, _ := cmd.Flags().GetString("year")
		handlers.ShowStats(deps, year)
	},
}

func init() {
	statsCmd.Flags().StringP("year", "y", "", "Year to report on (YYYY)")
}
