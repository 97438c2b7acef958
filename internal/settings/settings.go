// Package settings manages the per-user configuration record. Settings are
// device-local (never part of the synced entry data) because they carry the
// external completion service credential.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for the config directory
	AppName = "devlog"
	// SettingsFile is the name of the TOML settings file
	SettingsFile = "settings.toml"
)

// Settings represents the per-user configuration.
type Settings struct {
	// Name is the employee name used in compiled evaluations
	Name string `toml:"name"`
	// Designation is the job title used in compiled evaluations
	Designation string `toml:"designation"`
	// Department is the department used in compiled evaluations
	Department string `toml:"department"`
	// Year is the default evaluation year (YYYY)
	Year string `toml:"year"`
	// APIKey is the credential for the external completion service.
	// It is stripped from every export.
	APIKey string `toml:"api_key"`
	// Theme is the TUI color theme name
	Theme string `toml:"theme"`
}

// Default returns Settings with empty identity fields and the current year.
func Default() Settings {
	return Settings{
		Year: time.Now().Format("2006"),
	}
}

// Path returns the path to the settings file, creating the config directory
// if needed. Uses os.UserConfigDir() for cross-platform XDG compliance.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, SettingsFile), nil
}

// LoadOrDefault reads settings from the given path. A missing or corrupt file
// falls back to defaults so a broken settings file never blocks the
// application.
func LoadOrDefault(path string) Settings {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Default()
	}
	if s.Year == "" {
		s.Year = time.Now().Format("2006")
	}
	return s
}

// Save writes settings to the given path in TOML format.
func Save(path string, s Settings) error {
	content := fmt.Sprintf(`# devlog settings file

# Identity used in compiled evaluations
name = %q
designation = %q
department = %q

# Default evaluation year
year = %q

# Credential for the external completion service (kept device-local)
api_key = %q

# TUI color theme
theme = %q
`, s.Name, s.Designation, s.Department, s.Year, s.APIKey, s.Theme)

	return os.WriteFile(path, []byte(content), 0600)
}

// SanitizeForExport returns a copy of s safe to embed in exported documents.
// The returned value always has an empty APIKey.
func SanitizeForExport(s Settings) Settings {
	s.APIKey = ""
	return s
}
