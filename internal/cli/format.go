// Package cli provides the CLI presentation layer for the devlog
// application. It handles command-line output formatting and dependency
// injection for handlers.
package cli

import (
	"fmt"
	"strings"

	"github.com/razmans/devlog/internal/category"
	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/storage"
)

// FormatEntryLine formats one entry for list output:
// "a1b2c3d4  2024-03-01  ✨ Quality     Fix bug"
func FormatEntryLine(e entry.Entry) string {
	c := category.Of(e.Category)
	return fmt.Sprintf("%s  %s  %s %-11s %s", ShortID(e.ID), e.Date, c.Icon, c.Short, e.Task)
}

// ShortID returns the first 8 characters of an entry id for display.
// Commands still accept the full id.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatCategory formats a category for display with its icon and weight.
func FormatCategory(c category.Category) string {
	if c.Weight > 0 {
		return fmt.Sprintf("%s %s (%d%%)", c.Icon, c.Label, c.Weight)
	}
	return fmt.Sprintf("%s %s", c.Icon, c.Label)
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
// with line number, truncated content (max 50 chars), and error description.
func FormatCorruptionWarning(warning storage.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", warning.LineNumber, content, warning.Error)
}

// MaskAPIKey hides all but the last 4 characters of a credential for display.
func MaskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}
