package handlers

import (
	"errors"
	"fmt"
	"os"

	"github.com/razmans/devlog/internal/backup"
	"github.com/razmans/devlog/internal/cli"
)

// ExportBackup writes a backup document to a file, or stdout when path is
// "-". Format is "json" or "text". The embedded settings snapshot never
// carries the API credential.
func ExportBackup(deps *cli.Deps, format, path string) {
	cfg := deps.Services.Settings.Get()
	now := deps.Now()

	var data []byte
	var defaultName string
	var err error
	switch format {
	case "json":
		data, defaultName, err = deps.Services.Backup.ExportJSON(cfg, now)
	case "text":
		data, defaultName, err = deps.Services.Backup.ExportText(cfg, now)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown export format %q (use json or text)\n", format)
		deps.Exit(1)
		return
	}
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if path == "-" {
		_, _ = deps.Stdout.Write(data)
		return
	}
	if path == "" {
		path = defaultName
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write %s: %v\n", path, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
}

// ImportBackup merges entries from a backup file into storage and reports
// how many were actually added
func ImportBackup(deps *cli.Deps, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read %s: %v\n", path, err)
		deps.Exit(1)
		return
	}

	result, err := deps.Services.Backup.Import(data)
	if err != nil {
		switch {
		case errors.Is(err, backup.ErrInvalidFormat):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %s is not a valid backup file\n", path)
		case errors.Is(err, backup.ErrParse):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to parse %s\n", path)
		default:
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Imported %d new %s (%d total)\n",
		result.Added, cli.Pluralize("entry", result.Added), result.Total)
}
