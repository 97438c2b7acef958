package service

import (
	"fmt"
	"time"

	"github.com/razmans/devlog/internal/backup"
	"github.com/razmans/devlog/internal/settings"
	"github.com/razmans/devlog/internal/storage"
)

// BackupService handles backup export and import
type BackupService struct {
	storagePath string
}

// NewBackupService creates a new BackupService
func NewBackupService(storagePath string) *BackupService {
	return &BackupService{storagePath: storagePath}
}

// ExportJSON renders all entries and sanitized settings as a JSON backup
// document, newest date first.
func (s *BackupService) ExportJSON(cfg settings.Settings, now time.Time) ([]byte, string, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read entries: %w", err)
	}
	storage.SortByDateDesc(entries)

	data, err := backup.ExportJSON(entries, cfg, now)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, backup.Filename(now, "json"), nil
}

// ExportText renders all entries as the day-grouped text backup, newest day
// first.
func (s *BackupService) ExportText(cfg settings.Settings, now time.Time) ([]byte, string, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read entries: %w", err)
	}
	storage.SortByDateDesc(entries)

	return backup.ExportText(entries, cfg, now), backup.Filename(now, "txt"), nil
}

// Import parses a backup payload, merges its entries with storage by id, and
// persists the merged collection. Storage is only rewritten when the merge
// added something, so a failed parse or a duplicate-only file leaves the
// store untouched.
func (s *BackupService) Import(data []byte) (*ImportResult, error) {
	imported, err := backup.Parse(data)
	if err != nil {
		return nil, err
	}

	existing, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	merged, added := backup.Merge(imported, existing)
	if added > 0 {
		if err := storage.CreateBackup(s.storagePath); err != nil {
			return nil, fmt.Errorf("failed to back up storage: %w", err)
		}
		if err := storage.WriteEntries(s.storagePath, merged); err != nil {
			return nil, fmt.Errorf("failed to save merged entries: %w", err)
		}
	}

	return &ImportResult{Added: added, Total: len(merged)}, nil
}
