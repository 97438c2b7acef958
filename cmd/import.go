package cmd

import (
	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from a backup file",
	Long: `Import entries from a JSON or plain-text backup file. Entries whose
ids already exist in storage are skipped, so importing the same backup
twice adds nothing. The existing storage file is backed up before any
entries are written.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ImportBackup(deps, args[0])
	},
}
