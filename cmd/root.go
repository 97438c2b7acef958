package cmd

import (
	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/razmans/devlog/internal/filter"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devlog",
	Short: "A daily work logging and performance evaluation CLI",
	Long: `devlog is a CLI tool for logging daily work tasks by KPI category
and compiling year-end performance self-assessments.

Usage:
  devlog add 'fixed the build' --category quality   Log a new entry
  devlog                                            List all entries
  devlog list --year 2026                           List entries for a year
  devlog stats                                      Per-category counts and scores
  devlog compile --out                              Write the self-assessment file
  devlog compile --ai                               Compile via external AI service
  devlog export json                                Back up entries and settings
  devlog import backup.json                         Merge a backup into storage

Categories: initiative, quality, throughput, collaboration, leadership, other`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListEntries(deps, filter.NewFilter("", "", ""))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"devlog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
