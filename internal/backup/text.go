package backup

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/report"
	"github.com/razmans/devlog/internal/settings"
)

// textMagic is the first line of every text-format backup. Import detection
// keys off it.
const textMagic = "DEVLOG BACKUP"

// ExportText renders a human-readable backup: a metadata header block
// followed by day-grouped entry listings, newest day first. The format
// round-trips through parseText, so the id stays on every line.
func ExportText(entries []entry.Entry, s settings.Settings, now time.Time) []byte {
	s = settings.SanitizeForExport(s)

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n", textMagic)
	fmt.Fprintf(&b, "version: %d\n", Version)
	fmt.Fprintf(&b, "exported: %s\n", now.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "name: %s\n", s.Name)
	fmt.Fprintf(&b, "designation: %s\n", s.Designation)
	fmt.Fprintf(&b, "department: %s\n", s.Department)
	fmt.Fprintf(&b, "entries: %d\n", len(entries))
	b.WriteString(strings.Repeat("=", 60) + "\n")

	for _, day := range report.GroupByDate(entries) {
		fmt.Fprintf(&b, "\n## %s\n", day.Date)
		for _, e := range day.Entries {
			fmt.Fprintf(&b, "- [%s] (%s) %s\n", e.ID, e.Category, e.Task)
		}
	}

	return b.Bytes()
}

// entryLine matches "- [id] (category) task" lines in the text format.
var entryLine = regexp.MustCompile(`^- \[([^\]]+)\] \(([^)]+)\) (.+)$`)

func parseText(data []byte) ([]entry.Entry, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	// First non-empty line must be the magic marker.
	sawMagic := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sawMagic = line == textMagic
		break
	}
	if !sawMagic {
		return nil, ErrInvalidFormat
	}

	var entries []entry.Entry
	currentDate := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "## ") {
			currentDate = strings.TrimSpace(strings.TrimPrefix(line, "## "))
			continue
		}
		m := entryLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if currentDate == "" || entry.ValidateDate(currentDate) != nil {
			return nil, ErrInvalidFormat
		}
		entries = append(entries, entry.Entry{
			ID:       m[1],
			Category: m[2],
			Task:     m[3],
			Date:     currentDate,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return entries, nil
}

// EvaluationDocument prepends the standard header block to a compiled
// evaluation for download/archival.
func EvaluationDocument(text string, s settings.Settings, year string, now time.Time) string {
	header := strings.Join([]string{
		fmt.Sprintf("PERFORMANCE EVALUATION — %s", year),
		fmt.Sprintf("Employee: %s", orNA(s.Name)),
		fmt.Sprintf("Designation: %s", orNA(s.Designation)),
		fmt.Sprintf("Department: %s", orNA(s.Department)),
		fmt.Sprintf("Generated: %s", now.Format("2006-01-02 15:04:05")),
		strings.Repeat("═", 60),
		"",
		"",
	}, "\n")
	return header + text
}

// EvaluationFilename returns the conventional download name for a compiled
// evaluation, e.g. "Performance_Eval_Jane_Doe_2026.txt".
func EvaluationFilename(s settings.Settings, year string) string {
	name := s.Name
	if name == "" {
		name = "Employee"
	}
	name = strings.Join(strings.Fields(name), "_")
	return fmt.Sprintf("Performance_Eval_%s_%s.txt", name, year)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
