package handlers

import (
	"fmt"

	"github.com/razmans/devlog/internal/cli"
	"github.com/razmans/devlog/internal/storage"
)

// ValidateStorage reports the health of the storage file, listing any
// corrupted lines that will be skipped on read
func ValidateStorage(deps *cli.Deps) {
	path, err := deps.StoragePath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine storage location: %v\n", err)
		deps.Exit(1)
		return
	}

	health, err := storage.ValidateStorage(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to validate storage: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Storage: %s\n", path)
	_, _ = fmt.Fprintf(deps.Stdout, "  Total lines:       %d\n", health.TotalLines)
	_, _ = fmt.Fprintf(deps.Stdout, "  Valid entries:     %d\n", health.ValidEntries)
	_, _ = fmt.Fprintf(deps.Stdout, "  Corrupted entries: %d\n", health.CorruptedEntries)

	if health.CorruptedEntries > 0 {
		_, _ = fmt.Fprintln(deps.Stdout)
		for _, w := range health.Warnings {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", cli.FormatCorruptionWarning(w))
		}
		_, _ = fmt.Fprintln(deps.Stdout, "\nCorrupted lines are skipped when reading. Restore a backup to recover them.")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "\nStorage is healthy")
	}

	backups, err := storage.ListBackups(path)
	if err == nil && len(backups) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Backups available: %d\n", len(backups))
	}
}

// RestoreStorage replaces the storage file with the given backup.
// Backup 1 is the most recent.
func RestoreStorage(deps *cli.Deps, backupNum int) {
	path, err := deps.StoragePath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine storage location: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := storage.RestoreBackup(path, backupNum); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored backup %d\n", backupNum)
}
