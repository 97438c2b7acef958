package cmd

import (
	"fmt"
	"strconv"

	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check storage file health",
	Long:  `Validate the storage file and report on its health status, including any corrupted entries.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ValidateStorage(deps)
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [n]",
	Short: "Restore entries from a backup",
	Long: `Restore the storage file from a rotating backup. Backup 1 is the most
recent. The current state is backed up before restoring.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := 1
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number %q\n", args[0])
				deps.Exit(1)
				return
			}
			n = parsed
		}
		handlers.RestoreStorage(deps, n)
	},
}
