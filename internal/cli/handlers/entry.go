package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/razmans/devlog/internal/cli"
	"github.com/razmans/devlog/internal/filter"
	"github.com/razmans/devlog/internal/service"
	"github.com/razmans/devlog/internal/storage"
)

// CreateEntry logs a new task entry
func CreateEntry(deps *cli.Deps, task, categoryID, date string) {
	e, err := deps.Services.Entry.Create(task, categoryID, date)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s\n", cli.FormatEntryLine(*e))
}

// ListEntries lists entries matching the filter, newest first
func ListEntries(deps *cli.Deps, f *filter.Filter) {
	result, err := deps.Services.Entry.List(f)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	printWarnings(deps, result.Warnings)

	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries found")
		return
	}

	for _, e := range result.Entries {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryLine(e))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s\n", len(result.Entries), cli.Pluralize("entry", len(result.Entries)))
}

// EditEntry updates an entry by id
func EditEntry(deps *cli.Deps, id, task, categoryID, date string) {
	e, err := deps.Services.Entry.Update(resolveID(deps, id), task, categoryID, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoChangesSpecified):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag (--task, --category or --date) is required")
		case errors.Is(err, service.ErrNotFound):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No entry with id %q\n", id)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'devlog' to see ids")
		default:
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated: %s\n", cli.FormatEntryLine(*e))
}

// DeleteEntry removes an entry by id
func DeleteEntry(deps *cli.Deps, id string) {
	e, err := deps.Services.Entry.Delete(resolveID(deps, id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No entry with id %q\n", id)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'devlog' to see ids")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s\n", cli.FormatEntryLine(*e))
}

// ClearEntries deletes every stored entry
func ClearEntries(deps *cli.Deps, confirmed bool) {
	if !confirmed {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Clearing removes ALL entries and cannot be undone")
		_, _ = fmt.Fprintln(deps.Stderr, "Re-run with --yes to confirm")
		deps.Exit(1)
		return
	}

	count, err := deps.Services.Entry.Clear()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Cleared %d %s\n", count, cli.Pluralize("entry", count))
}

// SearchEntries searches entry tasks by keyword
func SearchEntries(deps *cli.Deps, query string) {
	result, err := deps.Services.Search.Search(query)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	printWarnings(deps, result.Warnings)

	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries matching %q\n", query)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entries matching %q:\n", query)
	for _, e := range result.Entries {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryLine(e))
	}
}

// resolveID expands a short id prefix to a full entry id when it matches
// exactly one stored entry. Ambiguous or unmatched prefixes are returned
// unchanged so the service layer reports not-found.
func resolveID(deps *cli.Deps, id string) string {
	entries, err := deps.Services.Entry.All()
	if err != nil {
		return id
	}

	match := ""
	for _, e := range entries {
		if e.ID == id {
			return id
		}
		if strings.HasPrefix(e.ID, id) {
			if match != "" {
				return id // ambiguous
			}
			match = e.ID
		}
	}
	if match != "" {
		return match
	}
	return id
}

func printWarnings(deps *cli.Deps, warnings []storage.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d corrupted line(s) in storage file:\n", len(warnings))
	for _, warning := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(warning))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}
