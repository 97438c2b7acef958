package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/razmans/devlog/internal/category"
	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/filter"
	"github.com/razmans/devlog/internal/storage"
)

// Common errors for the entry service
var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrNoChangesSpecified = errors.New("at least one change must be specified")
	ErrNotFound           = storage.ErrNotFound
)

// EntryService provides operations for managing logged entries
type EntryService struct {
	storagePath string
}

// NewEntryService creates a new EntryService
func NewEntryService(storagePath string) *EntryService {
	return &EntryService{storagePath: storagePath}
}

// Create validates and stores a new entry. The date defaults to today when
// empty; the category must be in the fixed set.
func (s *EntryService) Create(task, categoryID, date string) (*entry.Entry, error) {
	if !category.IsKnown(categoryID) {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownCategory, categoryID, strings.Join(category.IDs(), ", "))
	}

	e, err := entry.New(task, categoryID, date)
	if err != nil {
		return nil, err
	}

	if err := storage.AppendEntry(s.storagePath, e); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	return &e, nil
}

// List returns entries matching the filter, newest date first.
func (s *EntryService) List(f *filter.Filter) (*ListResult, error) {
	result, err := storage.ReadEntriesWithWarnings(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	entries := result.Entries
	storage.SortByDateDesc(entries)

	total := len(entries)
	if f != nil && !f.IsEmpty() {
		entries = filter.FilterEntries(entries, f)
	}

	return &ListResult{
		Entries:  entries,
		Warnings: result.Warnings,
		Total:    total,
	}, nil
}

// All returns every stored entry, newest date first.
func (s *EntryService) All() ([]entry.Entry, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	storage.SortByDateDesc(entries)
	return entries, nil
}

// Get returns the entry with the given id.
func (s *EntryService) Get(id string) (*entry.Entry, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	for _, e := range entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Update applies the non-empty fields to the entry with the given id.
func (s *EntryService) Update(id, task, categoryID, date string) (*entry.Entry, error) {
	if task == "" && categoryID == "" && date == "" {
		return nil, ErrNoChangesSpecified
	}

	e, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if task != "" {
		task = strings.TrimSpace(task)
		if task == "" {
			return nil, entry.ErrEmptyTask
		}
		e.Task = task
	}
	if categoryID != "" {
		if !category.IsKnown(categoryID) {
			return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownCategory, categoryID, strings.Join(category.IDs(), ", "))
		}
		e.Category = categoryID
	}
	if date != "" {
		if err := entry.ValidateDate(date); err != nil {
			return nil, err
		}
		e.Date = date
	}

	if err := storage.UpdateEntry(s.storagePath, *e); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	return e, nil
}

// Delete removes the entry with the given id and returns it.
func (s *EntryService) Delete(id string) (*entry.Entry, error) {
	deleted, err := storage.DeleteEntry(s.storagePath, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}
	return &deleted, nil
}

// Clear removes every stored entry and returns the count removed.
func (s *EntryService) Clear() (int, error) {
	count, err := storage.DeleteAll(s.storagePath)
	if err != nil {
		return 0, fmt.Errorf("failed to clear entries: %w", err)
	}
	return count, nil
}

// Count returns the number of stored entries.
func (s *EntryService) Count() (int, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read entries: %w", err)
	}
	return len(entries), nil
}

// Years returns every distinct year present in storage, newest first.
func (s *EntryService) Years() ([]string, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	seen := make(map[string]bool)
	var years []string
	for _, e := range entries {
		y := e.Year()
		if y != "" && !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years, nil
}
