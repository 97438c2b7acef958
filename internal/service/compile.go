package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/razmans/devlog/internal/report"
	"github.com/razmans/devlog/internal/settings"
	"github.com/razmans/devlog/internal/storage"
)

// ErrMissingAPIKey is returned when AI compilation is requested without a
// configured credential. Checked before any prompt is built.
var ErrMissingAPIKey = errors.New("API key is required, set it with 'devlog settings set --api-key'")

// Completer abstracts the external completion service for testing.
type Completer interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}

// CompileService turns stored entries into evaluation documents
type CompileService struct {
	storagePath string
	completer   Completer
}

// NewCompileService creates a new CompileService
func NewCompileService(storagePath string, completer Completer) *CompileService {
	return &CompileService{
		storagePath: storagePath,
		completer:   completer,
	}
}

// Template compiles the year's entries with the built-in template formatter.
// No external call is made.
func (s *CompileService) Template(cfg settings.Settings, year string) (string, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read entries: %w", err)
	}
	storage.SortByDateDesc(entries)

	return report.Compile(entries, cfg, year)
}

// AI compiles the year's entries by building a prompt and calling the
// external completion service. The credential check happens first; a missing
// key never reaches the network.
func (s *CompileService) AI(ctx context.Context, cfg settings.Settings, year string) (string, error) {
	if cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read entries: %w", err)
	}
	storage.SortByDateDesc(entries)

	yearEntries := report.FilterYear(entries, year)
	if len(yearEntries) == 0 {
		return "", fmt.Errorf("%w: %s", report.ErrNoEntries, year)
	}

	prompt := report.BuildPrompt(yearEntries, cfg, year)
	return s.completer.Complete(ctx, cfg.APIKey, prompt)
}

// Prompt returns the prompt that AI compilation would send, for inspection.
func (s *CompileService) Prompt(cfg settings.Settings, year string) (string, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read entries: %w", err)
	}
	storage.SortByDateDesc(entries)

	yearEntries := report.FilterYear(entries, year)
	if len(yearEntries) == 0 {
		return "", fmt.Errorf("%w: %s", report.ErrNoEntries, year)
	}

	return report.BuildPrompt(yearEntries, cfg, year), nil
}
