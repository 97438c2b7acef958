package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/razmans/devlog/internal/entry"
)

func tempStoragePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), EntriesFile)
}

func makeEntry(id, task, category, date string) entry.Entry {
	return entry.Entry{ID: id, Task: task, Category: category, Date: date}
}

func TestAppendAndRead(t *testing.T) {
	path := tempStoragePath(t)

	e1 := makeEntry("id-1", "fixed flaky test", "quality", "2026-03-01")
	e2 := makeEntry("id-2", "mentored intern", "leadership", "2026-03-02")

	if err := AppendEntry(path, e1); err != nil {
		t.Fatalf("AppendEntry() returned unexpected error: %v", err)
	}
	if err := AppendEntry(path, e2); err != nil {
		t.Fatalf("AppendEntry() returned unexpected error: %v", err)
	}

	entries, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("ReadEntries() returned unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadEntries() returned %d entries, expected 2", len(entries))
	}
	if entries[0] != e1 || entries[1] != e2 {
		t.Errorf("entries round-trip mismatch: %+v", entries)
	}
}

func TestReadEntries_MissingFile(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("ReadEntries() on missing file returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("ReadEntries() on missing file returned %d entries", len(entries))
	}
}

func TestReadEntriesWithWarnings_CorruptedLines(t *testing.T) {
	path := tempStoragePath(t)
	content := `{"id":"id-1","task":"valid one","category":"quality","date":"2026-03-01"}
this is not json
{"id":"id-2","task":"valid two","category":"other","date":"2026-03-02"}
{broken json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() returned unexpected error: %v", err)
	}

	result, err := ReadEntriesWithWarnings(path)
	if err != nil {
		t.Fatalf("ReadEntriesWithWarnings() returned unexpected error: %v", err)
	}

	if len(result.Entries) != 2 {
		t.Errorf("got %d valid entries, expected 2", len(result.Entries))
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("got %d warnings, expected 2", len(result.Warnings))
	}
	if result.Warnings[0].LineNumber != 2 {
		t.Errorf("first warning line = %d, expected 2", result.Warnings[0].LineNumber)
	}
	if result.Warnings[1].LineNumber != 4 {
		t.Errorf("second warning line = %d, expected 4", result.Warnings[1].LineNumber)
	}
	if result.Warnings[0].Content != "this is not json" {
		t.Errorf("warning content = %q", result.Warnings[0].Content)
	}
}

func TestSortByDateDesc_Stable(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("a", "first of day", "other", "2026-01-05"),
		makeEntry("b", "older", "other", "2026-01-01"),
		makeEntry("c", "second of day", "other", "2026-01-05"),
		makeEntry("d", "newest", "other", "2026-02-01"),
	}

	SortByDateDesc(entries)

	expected := []string{"d", "a", "c", "b"}
	for i, id := range expected {
		if entries[i].ID != id {
			t.Errorf("entries[%d].ID = %q, expected %q", i, entries[i].ID, id)
		}
	}
}

func TestWriteEntries_Overwrites(t *testing.T) {
	path := tempStoragePath(t)

	if err := AppendEntry(path, makeEntry("old", "stale", "other", "2026-01-01")); err != nil {
		t.Fatalf("AppendEntry() returned unexpected error: %v", err)
	}

	replacement := []entry.Entry{
		makeEntry("new-1", "fresh one", "quality", "2026-02-01"),
		makeEntry("new-2", "fresh two", "other", "2026-02-02"),
	}
	if err := WriteEntries(path, replacement); err != nil {
		t.Fatalf("WriteEntries() returned unexpected error: %v", err)
	}

	entries, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("ReadEntries() returned unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "new-1" {
		t.Errorf("WriteEntries did not replace the file contents: %+v", entries)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after WriteEntries")
	}
}

func TestUpdateEntry(t *testing.T) {
	path := tempStoragePath(t)
	if err := AppendEntry(path, makeEntry("id-1", "original", "other", "2026-01-01")); err != nil {
		t.Fatalf("AppendEntry() returned unexpected error: %v", err)
	}

	updated := makeEntry("id-1", "rewritten", "quality", "2026-01-02")
	if err := UpdateEntry(path, updated); err != nil {
		t.Fatalf("UpdateEntry() returned unexpected error: %v", err)
	}

	entries, _ := ReadEntries(path)
	if len(entries) != 1 || entries[0] != updated {
		t.Errorf("UpdateEntry result = %+v, expected %+v", entries, updated)
	}
}

func TestUpdateEntry_NotFound(t *testing.T) {
	path := tempStoragePath(t)
	if err := AppendEntry(path, makeEntry("id-1", "task", "other", "2026-01-01")); err != nil {
		t.Fatalf("AppendEntry() returned unexpected error: %v", err)
	}

	err := UpdateEntry(path, makeEntry("missing", "task", "other", "2026-01-01"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEntry(missing id) error = %v, expected ErrNotFound", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	path := tempStoragePath(t)
	e1 := makeEntry("id-1", "keep", "other", "2026-01-01")
	e2 := makeEntry("id-2", "remove", "other", "2026-01-02")
	_ = AppendEntry(path, e1)
	_ = AppendEntry(path, e2)

	deleted, err := DeleteEntry(path, "id-2")
	if err != nil {
		t.Fatalf("DeleteEntry() returned unexpected error: %v", err)
	}
	if deleted != e2 {
		t.Errorf("DeleteEntry returned %+v, expected %+v", deleted, e2)
	}

	entries, _ := ReadEntries(path)
	if len(entries) != 1 || entries[0].ID != "id-1" {
		t.Errorf("remaining entries = %+v", entries)
	}

	// Deletion must leave a backup of the pre-delete state
	backupPath, err := GetBackupPath(path, 1)
	if err != nil {
		t.Fatalf("GetBackupPath() returned unexpected error: %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Errorf("no backup created before delete: %v", err)
	}
}

func TestDeleteEntry_NotFound(t *testing.T) {
	path := tempStoragePath(t)
	_ = AppendEntry(path, makeEntry("id-1", "task", "other", "2026-01-01"))

	if _, err := DeleteEntry(path, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteEntry(missing id) error = %v, expected ErrNotFound", err)
	}
}

func TestDeleteAll(t *testing.T) {
	path := tempStoragePath(t)
	_ = AppendEntry(path, makeEntry("id-1", "one", "other", "2026-01-01"))
	_ = AppendEntry(path, makeEntry("id-2", "two", "other", "2026-01-02"))

	count, err := DeleteAll(path)
	if err != nil {
		t.Fatalf("DeleteAll() returned unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("DeleteAll() = %d, expected 2", count)
	}

	entries, _ := ReadEntries(path)
	if len(entries) != 0 {
		t.Errorf("entries remain after DeleteAll: %+v", entries)
	}
}

func TestDeleteAll_Empty(t *testing.T) {
	path := tempStoragePath(t)
	count, err := DeleteAll(path)
	if err != nil {
		t.Fatalf("DeleteAll() on empty storage returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("DeleteAll() on empty storage = %d, expected 0", count)
	}
}

func TestValidateStorage(t *testing.T) {
	path := tempStoragePath(t)
	content := `{"id":"id-1","task":"valid","category":"quality","date":"2026-03-01"}
garbage line
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() returned unexpected error: %v", err)
	}

	health, err := ValidateStorage(path)
	if err != nil {
		t.Fatalf("ValidateStorage() returned unexpected error: %v", err)
	}
	if health.TotalLines != 2 {
		t.Errorf("TotalLines = %d, expected 2", health.TotalLines)
	}
	if health.ValidEntries != 1 {
		t.Errorf("ValidEntries = %d, expected 1", health.ValidEntries)
	}
	if health.CorruptedEntries != 1 {
		t.Errorf("CorruptedEntries = %d, expected 1", health.CorruptedEntries)
	}
}

func TestValidateStorage_MissingFile(t *testing.T) {
	health, err := ValidateStorage(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("ValidateStorage() on missing file returned error: %v", err)
	}
	if health.TotalLines != 0 || health.ValidEntries != 0 {
		t.Errorf("missing file health = %+v, expected zeros", health)
	}
}
