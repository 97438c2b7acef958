package service

import (
	"fmt"

	"github.com/razmans/devlog/internal/filter"
	"github.com/razmans/devlog/internal/storage"
)

// SearchService provides operations for searching entries
type SearchService struct {
	storagePath string
}

// NewSearchService creates a new SearchService
func NewSearchService(storagePath string) *SearchService {
	return &SearchService{storagePath: storagePath}
}

// Search returns entries whose task contains the query (case-insensitive),
// newest date first.
func (s *SearchService) Search(query string) (*SearchResult, error) {
	result, err := storage.ReadEntriesWithWarnings(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	entries := result.Entries
	storage.SortByDateDesc(entries)

	f := filter.NewFilter(query, "", "")
	entries = filter.FilterEntries(entries, f)

	return &SearchResult{
		Entries:  entries,
		Warnings: result.Warnings,
		Query:    query,
	}, nil
}
