package cmd

import (
	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show or change settings. The API key is always displayed masked.

Usage:
  devlog settings                              Show current settings
  devlog settings set --name 'Jane Smith'      Set the employee name
  devlog settings set --year 2026              Set the default evaluation year
  devlog settings set --api-key sk-ant-...     Set the AI service API key`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowSettings(deps)
	},
}

// settingsSetCmd represents the settings set command
var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		update := handlers.SettingsUpdate{}
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			update.Name = &v
		}
		if cmd.Flags().Changed("designation") {
			v, _ := cmd.Flags().GetString("designation")
			update.Designation = &v
		}
		if cmd.Flags().Changed("department") {
			v, _ := cmd.Flags().GetString("department")
			update.Department = &v
		}
		if cmd.Flags().Changed("year") {
			v, _ := cmd.Flags().GetString("year")
			update.Year = &v
		}
		if cmd.Flags().Changed("api-key") {
			v, _ := cmd.Flags().GetString("api-key")
			update.APIKey = &v
		}
		if cmd.Flags().Changed("theme") {
			v, _ := cmd.Flags().GetString("theme")
			update.Theme = &v
		}
		handlers.UpdateSettings(deps, update)
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)

	settingsSetCmd.Flags().String("name", "", "Employee name for evaluations")
	settingsSetCmd.Flags().String("designation", "", "Job title for evaluations")
	settingsSetCmd.Flags().String("department", "", "Department for evaluations")
	settingsSetCmd.Flags().String("year", "", "Default evaluation year (YYYY)")
	settingsSetCmd.Flags().String("api-key", "", "API key for the AI completion service")
	settingsSetCmd.Flags().String("theme", "", "TUI color theme name")
}
