package filter

import (
	"strings"

	"github.com/razmans/devlog/internal/entry"
)

// Filter represents search and filtering criteria for logged entries.
// All filter fields are optional - empty values match all entries.
type Filter struct {
	Keyword  string // Case-insensitive substring search in entry tasks
	Category string // Exact category id match
	Year     string // Year prefix match on the entry date
}

// NewFilter creates a new Filter with the given criteria.
// All parameters are optional - pass empty values to match all entries.
func NewFilter(keyword, categoryID, year string) *Filter {
	return &Filter{
		Keyword:  keyword,
		Category: categoryID,
		Year:     year,
	}
}

// IsEmpty returns true if all filter fields are empty (matches all entries)
func (f *Filter) IsEmpty() bool {
	return f.Keyword == "" && f.Category == "" && f.Year == ""
}

// FilterEntries returns a new slice containing only entries that match the
// filter criteria. If the filter is empty, returns all entries.
func FilterEntries(entries []entry.Entry, f *Filter) []entry.Entry {
	if f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the entry's task
// (case-insensitive). An empty keyword matches all entries.
func (f *Filter) MatchesKeyword(e entry.Entry) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Task), strings.ToLower(f.Keyword))
}

// MatchesCategory returns true if the entry's category id matches exactly.
// An empty category filter matches all entries.
func (f *Filter) MatchesCategory(e entry.Entry) bool {
	if f.Category == "" {
		return true
	}
	return e.Category == f.Category
}

// MatchesYear returns true if the entry date falls in the filter year.
// An empty year filter matches all entries.
func (f *Filter) MatchesYear(e entry.Entry) bool {
	if f.Year == "" {
		return true
	}
	return e.InYear(f.Year)
}

// Matches returns true if the entry satisfies every set criterion.
func (f *Filter) Matches(e entry.Entry) bool {
	return f.MatchesKeyword(e) && f.MatchesCategory(e) && f.MatchesYear(e)
}
