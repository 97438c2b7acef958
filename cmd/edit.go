package cmd

import (
	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing entry",
	Long: `Edit the task text, category, or date of an existing entry.

Usage:
  devlog edit 3f2a91bc --task 'shipped search endpoint'
  devlog edit 3f2a91bc --category throughput
  devlog edit 3f2a91bc --date 2026-08-12

The id may be the short prefix shown in list output. At least one of
--task, --category, or --date is required.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		task, _ := cmd.Flags().GetString("task")
		category, _ := cmd.Flags().GetString("category")
		date, _ := cmd.Flags().GetString("date")
		handlers.EditEntry(deps, args[0], task, category, date)
	},
}

func init() {
	editCmd.Flags().String("task", "", "New task text for the entry")
	editCmd.Flags().String("category", "", "New category id for the entry")
	editCmd.Flags().String("date", "", "New date for the entry (YYYY-MM-DD)")
}
