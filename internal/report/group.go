// Package report turns logged entries into evaluation documents: a grouping
// engine, a deterministic template compiler, and a prompt builder for the
// external completion service.
package report

import (
	"errors"

	"github.com/razmans/devlog/internal/category"
	"github.com/razmans/devlog/internal/entry"
)

// ErrNoEntries is returned when compilation is requested for a year with no
// matching entries.
var ErrNoEntries = errors.New("no entries found for the requested year")

// GroupByCategory partitions entries into per-category buckets keyed by
// category id, preserving the relative order of the input. Entries whose
// category id is not in the fixed set are omitted from every bucket; they do
// not appear in any per-category summary.
func GroupByCategory(entries []entry.Entry) map[string][]entry.Entry {
	grouped := make(map[string][]entry.Entry, len(category.All()))
	for _, c := range category.All() {
		grouped[c.ID] = []entry.Entry{}
	}
	for _, e := range entries {
		if _, ok := grouped[e.Category]; ok {
			grouped[e.Category] = append(grouped[e.Category], e)
		}
	}
	return grouped
}

// DayGroup is the ordered sub-sequence of entries sharing one calendar date.
type DayGroup struct {
	Date    string
	Entries []entry.Entry
}

// GroupByDate partitions entries by exact date value, returning day groups in
// the order each date first appears in the input. Callers that want the
// export's reverse-chronological day sections sort the input by date
// descending first.
func GroupByDate(entries []entry.Entry) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DayGroup{Date: e.Date})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// FilterYear returns the entries whose date falls in the given year, in input
// order. The match is a string-prefix comparison.
func FilterYear(entries []entry.Entry, year string) []entry.Entry {
	var out []entry.Entry
	for _, e := range entries {
		if e.InYear(year) {
			out = append(out, e)
		}
	}
	return out
}
