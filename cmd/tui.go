package cmd

import (
	"fmt"
	"os"

	"github.com/razmans/devlog/internal/service"
	"github.com/razmans/devlog/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for devlog.

Views available:
  - Entries: Browse, add, delete, and search entries by year
  - Stats: Per-category entry counts and suggested scores
  - Settings: View settings and change the color theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - j/k or arrows: Navigate within lists
  - h/l: Cycle years
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, err := service.NewServices()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing services: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
