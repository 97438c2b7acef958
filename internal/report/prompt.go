package report

import (
	"fmt"
	"strings"

	"github.com/razmans/devlog/internal/category"
	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/settings"
)

// BuildPrompt renders the entries for a year into a natural-language prompt
// for the external completion service. Credential and empty-input checks are
// the caller's responsibility; this function only formats.
func BuildPrompt(entries []entry.Entry, s settings.Settings, year string) string {
	grouped := GroupByCategory(entries)

	var sections []string
	for _, c := range category.All() {
		bucket := grouped[c.ID]
		if len(bucket) == 0 {
			continue
		}
		var items []string
		for _, e := range bucket {
			items = append(items, fmt.Sprintf("- [%s] %s", e.Date, e.Task))
		}
		sections = append(sections, fmt.Sprintf("## %s (%d%%)\n%s", c.Label, c.Weight, strings.Join(items, "\n")))
	}
	summary := strings.Join(sections, "\n\n")

	var kpiLines []string
	for i, c := range category.Weighted() {
		kpiLines = append(kpiLines, fmt.Sprintf("%d. **%s (%d%%)** — %s", i+1, c.Label, c.Weight, c.Desc))
	}

	return fmt.Sprintf(`You are helping a software developer compile their year-end performance evaluation. Below are their daily task logs organized by KPI category for the year %s.

Employee: %s
Designation: %s
Department: %s

The performance evaluation has these KPI categories (QUANTITATIVE, weighted):
%s

And QUALITATIVE values (each 20%%): %s

Scoring guide:
- 1 = Not meeting expectation
- 2 = Could be doing more
- 3 = Meeting expectation
- 4 = Exceeding expectation
- 5 = Outstanding

Here are the daily task logs:

%s

Please compile this into a well-structured performance evaluation self-assessment. For each KPI category:
1. Write a brief paragraph summarizing achievements
2. List key accomplishments as bullet points (combine similar tasks, highlight impact)
3. Suggest a self-assessment score (1-5) with justification

Then for the Values section, based on the work patterns observed, suggest how the employee demonstrated each value.

Format the output as clean text suitable for pasting into a performance evaluation form. Be specific, use numbers where possible (e.g., "Completed X features", "Resolved Y bugs"), and emphasize impact.`,
		year,
		orNA(s.Name),
		orNA(s.Designation),
		orNA(s.Department),
		strings.Join(kpiLines, "\n"),
		strings.Join(category.Values, ", "),
		summary,
	)
}
