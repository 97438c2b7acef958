package views

import (
	"fmt"
	"strings"

	"github.com/razmans/devlog/internal/category"
	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected entry index (-1 for none)
}

// RenderEntryList renders a list of entries with aligned columns
func RenderEntryList(entries []entry.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	for i, e := range entries {
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		c := category.Of(e.Category)
		catStr := fmt.Sprintf("%s %-14s", c.Icon, c.Short)

		maxTaskWidth := opts.Width - 12 - 18 - 4
		if maxTaskWidth < 20 {
			maxTaskWidth = 20
		}
		task := e.Task
		if len(task) > maxTaskWidth {
			task = task[:maxTaskWidth-1] + "…"
		}

		line := fmt.Sprintf("%s %s %s",
			styles.EntryDate.Render(e.Date),
			styles.EntryCategory.Render(catStr),
			styles.EntryTask.Render(task))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
