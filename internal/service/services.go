package service

import (
	"github.com/razmans/devlog/internal/aiclient"
	"github.com/razmans/devlog/internal/settings"
	"github.com/razmans/devlog/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Entry    *EntryService
	Compile  *CompileService
	Backup   *BackupService
	Stats    *StatsService
	Search   *SearchService
	Settings *SettingsService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	storagePath, err := storage.GetStoragePath()
	if err != nil {
		return nil, err
	}

	settingsPath, err := settings.Path()
	if err != nil {
		return nil, err
	}

	cfg := settings.LoadOrDefault(settingsPath)

	return NewServicesWithPaths(storagePath, settingsPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths
// (useful for testing)
func NewServicesWithPaths(storagePath, settingsPath string, cfg settings.Settings) *Services {
	return &Services{
		Entry:    NewEntryService(storagePath),
		Compile:  NewCompileService(storagePath, aiclient.NewClient()),
		Backup:   NewBackupService(storagePath),
		Stats:    NewStatsService(storagePath),
		Search:   NewSearchService(storagePath),
		Settings: NewSettingsService(settingsPath, cfg),
	}
}
