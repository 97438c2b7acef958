// Package service provides the business logic layer for the devlog
// application. It wraps the storage, settings, report, and backup packages,
// providing a clean API for both CLI and TUI frontends.
package service

import (
	"github.com/razmans/devlog/internal/category"
	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/storage"
)

// ListResult contains the results of listing entries
type ListResult struct {
	Entries  []entry.Entry          // Matching entries, newest date first
	Warnings []storage.ParseWarning // Warnings about corrupted storage lines
	Total    int                    // Total entries in storage before filtering
}

// SearchResult contains search results
type SearchResult struct {
	Entries  []entry.Entry
	Warnings []storage.ParseWarning
	Query    string // The search query used
}

// CategoryStat holds the per-category entry count and suggested score for a
// year.
type CategoryStat struct {
	Category category.Category
	Count    int
	Score    string // Formatted tier, e.g. "Meeting expectation (3)"
}

// StatsResult contains per-category statistics for one evaluation year
type StatsResult struct {
	Year       string
	Total      int            // Entries in the year
	Categories []CategoryStat // One per fixed category, declared order
	Years      []string       // All years present in storage, newest first
}

// ImportResult reports the outcome of a backup import
type ImportResult struct {
	Added int // Entries actually added (duplicates by id are dropped)
	Total int // Collection size after the merge
}
