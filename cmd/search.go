package cmd

import (
	"strings"

	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries by task text",
	Long: `Search entries whose task text contains the query, case-insensitive.

Usage:
  devlog search deploy
  devlog search 'code review'`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SearchEntries(deps, strings.Join(args, " "))
	},
}
