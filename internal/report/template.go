package report

import (
	"fmt"
	"strings"

	"github.com/razmans/devlog/internal/category"
	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/settings"
)

// Compile renders the entries for a year into a finished evaluation document
// without any external call. Output is pure text and fully deterministic for
// identical inputs.
//
// Section rules: a category section is emitted when the category has nonzero
// weight or at least one matching entry; zero-weight categories with no
// entries are omitted entirely. Weighted categories with entries get a
// suggested score from the count thresholds in score.go.
func Compile(entries []entry.Entry, s settings.Settings, year string) (string, error) {
	yearEntries := FilterYear(entries, year)
	if len(yearEntries) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoEntries, year)
	}

	grouped := GroupByCategory(yearEntries)

	var b strings.Builder
	fmt.Fprintf(&b, "PERFORMANCE EVALUATION SELF-ASSESSMENT — %s\n", year)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, c := range category.All() {
		bucket := grouped[c.ID]
		if c.Weight == 0 && len(bucket) == 0 {
			continue
		}

		if c.Weight > 0 {
			fmt.Fprintf(&b, "%s %s (%d%%)\n", c.Icon, c.Label, c.Weight)
		} else {
			fmt.Fprintf(&b, "%s %s\n", c.Icon, c.Label)
		}
		fmt.Fprintf(&b, "Entries: %d\n", len(bucket))
		for _, e := range bucket {
			fmt.Fprintf(&b, "- [%s] %s\n", e.Date, e.Task)
		}
		if c.Weight > 0 && len(bucket) > 0 {
			fmt.Fprintf(&b, "Suggested score: %s\n", FormatScore(len(bucket)))
		}
		b.WriteString("\n")
	}

	b.WriteString("VALUES ASSESSMENT\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, v := range category.Values {
		fmt.Fprintf(&b, "%s: (describe how you demonstrated this value)\n", v)
	}
	b.WriteString("\n")

	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	fmt.Fprintf(&b, "Employee: %s\n", orNA(s.Name))
	fmt.Fprintf(&b, "Designation: %s\n", orNA(s.Designation))
	fmt.Fprintf(&b, "Department: %s\n", orNA(s.Department))
	fmt.Fprintf(&b, "Year: %s\n", year)
	fmt.Fprintf(&b, "Total entries: %d\n", len(yearEntries))
	for _, c := range category.Weighted() {
		count := len(grouped[c.ID])
		fmt.Fprintf(&b, "%s: %d → %s\n", c.Short, count, FormatScore(count))
	}

	return b.String(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
