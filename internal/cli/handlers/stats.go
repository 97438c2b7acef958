package handlers

import (
	"fmt"
	"strings"

	"github.com/razmans/devlog/internal/cli"
)

// ShowStats prints per-category counts and suggested scores for a year.
// An empty year falls back to the configured default year.
func ShowStats(deps *cli.Deps, year string) {
	if year == "" {
		year = deps.Services.Settings.Get().Year
	}

	result, err := deps.Services.Stats.ForYear(year)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Stats for %s\n", result.Year)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	for _, stat := range result.Categories {
		line := fmt.Sprintf("  %s %-20s %3d", stat.Category.Icon, stat.Category.Label, stat.Count)
		if stat.Score != "" {
			line += "  " + stat.Score
		}
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "  Total: %d %s\n", result.Total, cli.Pluralize("entry", result.Total))

	if len(result.Years) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "  Years with entries: %s\n", strings.Join(result.Years, ", "))
	}
}
