package service

import (
	"fmt"
	"sort"

	"github.com/razmans/devlog/internal/category"
	"github.com/razmans/devlog/internal/report"
	"github.com/razmans/devlog/internal/storage"
)

// StatsService computes per-category statistics
type StatsService struct {
	storagePath string
}

// NewStatsService creates a new StatsService
func NewStatsService(storagePath string) *StatsService {
	return &StatsService{storagePath: storagePath}
}

// ForYear returns per-category counts and suggested score tiers for the given
// year. Every fixed category appears, in declared order, even with zero
// entries; entries with unknown category ids count toward the year total but
// toward no category (the grouping drops them).
func (s *StatsService) ForYear(year string) (*StatsResult, error) {
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

	yearEntries := report.FilterYear(entries, year)
	grouped := report.GroupByCategory(yearEntries)

	result := &StatsResult{
		Year:  year,
		Total: len(yearEntries),
		Years: years,
	}
	for _, c := range category.All() {
		count := len(grouped[c.ID])
		stat := CategoryStat{Category: c, Count: count}
		if c.Weight > 0 {
			stat.Score = report.FormatScore(count)
		}
		result.Categories = append(result.Categories, stat)
	}

	return result, nil
}
