package handlers

import (
	"fmt"

	"github.com/razmans/devlog/internal/cli"
)

// SettingsUpdate carries the optional fields a settings change may set.
// Nil means "leave unchanged".
type SettingsUpdate struct {
	Name        *string
	Designation *string
	Department  *string
	Year        *string
	APIKey      *string
	Theme       *string
}

func (u SettingsUpdate) isEmpty() bool {
	return u.Name == nil && u.Designation == nil && u.Department == nil &&
		u.Year == nil && u.APIKey == nil && u.Theme == nil
}

// ShowSettings prints the current settings with the API key masked
func ShowSettings(deps *cli.Deps) {
	cfg := deps.Services.Settings.Get()

	_, _ = fmt.Fprintf(deps.Stdout, "Settings (%s)\n\n", deps.Services.Settings.GetPath())
	_, _ = fmt.Fprintf(deps.Stdout, "  Name:        %s\n", orUnset(cfg.Name))
	_, _ = fmt.Fprintf(deps.Stdout, "  Designation: %s\n", orUnset(cfg.Designation))
	_, _ = fmt.Fprintf(deps.Stdout, "  Department:  %s\n", orUnset(cfg.Department))
	_, _ = fmt.Fprintf(deps.Stdout, "  Year:        %s\n", orUnset(cfg.Year))
	_, _ = fmt.Fprintf(deps.Stdout, "  API key:     %s\n", cli.MaskAPIKey(cfg.APIKey))
	_, _ = fmt.Fprintf(deps.Stdout, "  Theme:       %s\n", orUnset(cfg.Theme))
}

// UpdateSettings applies the given fields and persists the result
func UpdateSettings(deps *cli.Deps, update SettingsUpdate) {
	if update.isEmpty() {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No settings specified")
		deps.Exit(1)
		return
	}

	cfg := deps.Services.Settings.Get()
	if update.Name != nil {
		cfg.Name = *update.Name
	}
	if update.Designation != nil {
		cfg.Designation = *update.Designation
	}
	if update.Department != nil {
		cfg.Department = *update.Department
	}
	if update.Year != nil {
		cfg.Year = *update.Year
	}
	if update.APIKey != nil {
		cfg.APIKey = *update.APIKey
	}
	if update.Theme != nil {
		cfg.Theme = *update.Theme
	}

	if err := deps.Services.Settings.Update(cfg); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to save settings: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Settings saved")
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
