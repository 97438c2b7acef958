package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/razmans/devlog/internal/entry"
)

const (
	// AppName is the application name used for the config directory
	AppName = "devlog"
	// EntriesFile is the name of the JSON Lines storage file
	EntriesFile = "entries.jsonl"
)

// ErrNotFound is returned when no entry with the requested id exists.
var ErrNotFound = fmt.Errorf("entry not found")

// ParseWarning represents a warning about a corrupted or malformed entry
type ParseWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the corrupted line
	Error      string // Description of the parsing error
}

// ReadResult contains the results of reading entries from storage,
// including both successfully parsed entries and any warnings about
// corrupted or malformed lines.
type ReadResult struct {
	Entries  []entry.Entry  // Successfully parsed entries
	Warnings []ParseWarning // Warnings about corrupted lines
}

// GetStoragePath returns the path to the entries storage file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetStoragePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, EntriesFile), nil
}

// AppendEntry appends a single entry to the JSON Lines storage file.
// Creates the file if it doesn't exist.
// Uses O_APPEND for atomic append operations.
func AppendEntry(filepath string, e entry.Entry) error {
	file, err := os.OpenFile(filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	_, err = file.WriteString(string(line) + "\n")
	return err
}

// ReadEntriesWithWarnings reads all entries from the JSON Lines storage file
// and returns both successfully parsed entries and warnings about corrupted
// lines. Returns an empty ReadResult if the file doesn't exist.
func ReadEntriesWithWarnings(filepath string) (ReadResult, error) {
	result := ReadResult{
		Entries:  []entry.Entry{},
		Warnings: []ParseWarning{},
	}

	file, err := os.Open(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		lineContent := scanner.Text()

		var e entry.Entry
		if err := json.Unmarshal([]byte(lineContent), &e); err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: lineNumber,
				Content:    lineContent,
				Error:      err.Error(),
			})
			continue
		}
		result.Entries = append(result.Entries, e)
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// ReadEntries reads all entries from the JSON Lines storage file.
// Returns an empty slice if the file doesn't exist.
// Skips malformed lines for fault tolerance.
func ReadEntries(filepath string) ([]entry.Entry, error) {
	result, err := ReadEntriesWithWarnings(filepath)
	return result.Entries, err
}

// SortByDateDesc sorts entries newest-date-first in place. The sort is stable
// so entries sharing a date keep their logged order.
func SortByDateDesc(entries []entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

// WriteEntries writes all entries to the JSON Lines storage file.
// Uses atomic write pattern (write to temp file, then rename) so a failed
// write never leaves a half-written storage file behind.
func WriteEntries(filepath string, entries []entry.Entry) error {
	tmpFile := filepath + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	for _, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
		if _, err := file.WriteString(string(line) + "\n"); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, filepath)
}

// UpdateEntry replaces the stored entry carrying the same id as e.
// Returns ErrNotFound if no entry with that id exists.
func UpdateEntry(filepath string, e entry.Entry) error {
	entries, err := ReadEntries(filepath)
	if err != nil {
		return err
	}

	found := false
	for i := range entries {
		if entries[i].ID == e.ID {
			entries[i] = e
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, e.ID)
	}

	return WriteEntries(filepath, entries)
}

// DeleteEntry removes the entry with the given id and returns it.
// Creates a rotating backup before rewriting the file.
func DeleteEntry(filepath, id string) (entry.Entry, error) {
	entries, err := ReadEntries(filepath)
	if err != nil {
		return entry.Entry{}, err
	}

	idx := -1
	for i := range entries {
		if entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entry.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	deleted := entries[idx]

	if err := CreateBackup(filepath); err != nil {
		return entry.Entry{}, err
	}

	remaining := append(entries[:idx], entries[idx+1:]...)
	if err := WriteEntries(filepath, remaining); err != nil {
		return entry.Entry{}, err
	}

	return deleted, nil
}

// DeleteAll removes every stored entry and returns the count removed.
// Creates a rotating backup first so the wipe is recoverable.
func DeleteAll(filepath string) (int, error) {
	entries, err := ReadEntries(filepath)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	if err := CreateBackup(filepath); err != nil {
		return 0, err
	}

	if err := WriteEntries(filepath, nil); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// StorageHealth contains information about the health status of the storage
// file: total lines, valid entries, corrupted entries, and detailed warnings.
type StorageHealth struct {
	TotalLines       int
	ValidEntries     int
	CorruptedEntries int
	Warnings         []ParseWarning
}

// ValidateStorage analyzes the storage file and returns health status
// information. Returns empty health status if the file doesn't exist.
func ValidateStorage(filepath string) (StorageHealth, error) {
	health := StorageHealth{
		Warnings: []ParseWarning{},
	}

	file, err := os.Open(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return health, nil
		}
		return health, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		health.TotalLines++
	}
	if err := scanner.Err(); err != nil {
		return health, err
	}

	result, err := ReadEntriesWithWarnings(filepath)
	if err != nil {
		return health, err
	}

	health.ValidEntries = len(result.Entries)
	health.CorruptedEntries = len(result.Warnings)
	health.Warnings = result.Warnings

	return health, nil
}
