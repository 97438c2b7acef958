package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for safety backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// GetBackupPath returns the backup path for a storage file with the given
// rotation number. Backups are named entries.jsonl.bak.N; lower numbers are
// more recent (.bak.1 is the latest).
func GetBackupPath(storagePath string, n int) (string, error) {
	if storagePath == "" {
		var err error
		storagePath, err = GetStoragePath()
		if err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n), nil
}

// rotateBackups shifts existing backup files to make room for a new backup.
// Renames .bak.1 -> .bak.2, .bak.2 -> .bak.3, deleting the oldest.
func rotateBackups(storagePath string) error {
	oldestPath, err := GetBackupPath(storagePath, MaxBackupCount)
	if err != nil {
		return err
	}
	if err := os.Remove(oldestPath); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		currentPath, err := GetBackupPath(storagePath, i)
		if err != nil {
			return err
		}

		nextPath, err := GetBackupPath(storagePath, i+1)
		if err != nil {
			return err
		}

		if err := os.Rename(currentPath, nextPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup creates a rotating backup of the storage file before a
// destructive modification. If the storage file doesn't exist, no backup is
// created and no error is returned.
func CreateBackup(storagePath string) error {
	if _, err := os.Stat(storagePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath); err != nil {
		return err
	}

	backupPath, err := GetBackupPath(storagePath, 1)
	if err != nil {
		return err
	}

	sourceFile, err := os.Open(storagePath)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(backupPath)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return nil
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1, 2, or 3)
	Path   string // The full path to the backup file
}

// ListBackups returns available backup files for a storage path sorted by
// recency. Returns an empty slice if no backups exist.
func ListBackups(storagePath string) ([]BackupInfo, error) {
	var backups []BackupInfo

	for i := 1; i <= MaxBackupCount; i++ {
		backupPath, err := GetBackupPath(storagePath, i)
		if err != nil {
			return nil, err
		}

		if _, err := os.Stat(backupPath); err == nil {
			backups = append(backups, BackupInfo{
				Number: i,
				Path:   backupPath,
			})
		}
	}

	return backups, nil
}

// RestoreBackup restores a backup file to the main storage file.
// backupNum specifies which backup to restore (1 is most recent).
// Creates a backup of the current state before restoring.
func RestoreBackup(storagePath string, backupNum int) error {
	if backupNum < 1 || backupNum > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", backupNum, MaxBackupCount)
	}

	backupPath, err := GetBackupPath(storagePath, backupNum)
	if err != nil {
		return err
	}

	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", backupNum)
		}
		return err
	}

	if storagePath == "" {
		storagePath, err = GetStoragePath()
		if err != nil {
			return err
		}
	}

	if err := CreateBackup(storagePath); err != nil {
		return err
	}

	sourceFile, err := os.Open(backupPath)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(storagePath)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return nil
}
