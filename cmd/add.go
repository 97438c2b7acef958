package cmd

import (
	"strings"

	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <task...>",
	Short: "Log a new task entry",
	Long: `Log a new task entry under a KPI category.

Usage:
  devlog add 'reviewed onboarding docs' --category collaboration
  devlog add fixed flaky integration test --category quality --date 2026-08-12

The date defaults to today. Categories: initiative, quality, throughput,
collaboration, leadership, other.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		task := strings.Join(args, " ")
		category, _ := cmd.Flags().GetString("category")
		date, _ := cmd.Flags().GetString("date")
		handlers.CreateEntry(deps, task, category, date)
	},
}

func init() {
	addCmd.Flags().StringP("category", "c", "other", "Category id for the entry")
	addCmd.Flags().StringP("date", "d", "", "Entry date as YYYY-MM-DD (default: today)")
}
