package cmd

import (
	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [json|text]",
	Short: "Export entries and settings to a backup file",
	Long: `Export all entries and settings to a backup document. The API key is
never included in exports.

Usage:
  devlog export                 JSON backup to devlog_backup_<date>.json
  devlog export text            Plain-text backup
  devlog export --out-file -    Write the backup to stdout`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"json", "text"},
	Run: func(cmd *cobra.Command, args []string) {
		format := "json"
		if len(args) == 1 {
			format = args[0]
		}
		path, _ := cmd.Flags().GetString("out-file")
		handlers.ExportBackup(deps, format, path)
	},
}

func init() {
	exportCmd.Flags().String("out-file", "", "Output path (default: conventional backup filename, - for stdout)")
}
