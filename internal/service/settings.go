package service

import (
	"fmt"
	"os"

	"github.com/razmans/devlog/internal/settings"
)

// SettingsService provides operations for managing the per-user settings
type SettingsService struct {
	path     string
	settings settings.Settings
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(path string, s settings.Settings) *SettingsService {
	return &SettingsService{
		path:     path,
		settings: s,
	}
}

// Get returns the current settings
func (s *SettingsService) Get() settings.Settings {
	return s.settings
}

// GetPath returns the path to the settings file
func (s *SettingsService) GetPath() string {
	return s.path
}

// Exists checks if the settings file exists
func (s *SettingsService) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Update persists new settings and updates the in-memory copy. The in-memory
// copy is only replaced after a successful write.
func (s *SettingsService) Update(cfg settings.Settings) error {
	if err := settings.Save(s.path, cfg); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	s.settings = cfg
	return nil
}

// Reload re-reads settings from disk
func (s *SettingsService) Reload() {
	s.settings = settings.LoadOrDefault(s.path)
}
