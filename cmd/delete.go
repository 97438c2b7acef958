package cmd

import (
	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Long: `Delete an entry by id. The id may be the short prefix shown in list
output. A backup of the storage file is created before deletion.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.DeleteEntry(deps, args[0])
	},
}

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all entries",
	Long: `Delete every entry from storage. Requires the --yes flag to confirm.
A backup of the storage file is created first.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		confirmed, _ := cmd.Flags().GetBool("yes")
		handlers.ClearEntries(deps, confirmed)
	},
}

func init() {
	clearCmd.Flags().Bool("yes", false, "Confirm deleting all entries")
}
