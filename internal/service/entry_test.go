package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/razmans/devlog/internal/filter"
	"github.com/razmans/devlog/internal/settings"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	dir := t.TempDir()
	return NewServicesWithPaths(
		filepath.Join(dir, "entries.jsonl"),
		filepath.Join(dir, "settings.toml"),
		settings.Default(),
	)
}

func mustCreate(t *testing.T, svc *EntryService, task, category, date string) string {
	t.Helper()
	e, err := svc.Create(task, category, date)
	if err != nil {
		t.Fatalf("Create(%q, %q, %q) returned unexpected error: %v", task, category, date, err)
	}
	return e.ID
}

func TestEntryService_Create(t *testing.T) {
	s := newTestServices(t)

	e, err := s.Entry.Create("shipped the importer", "quality", "2026-03-01")
	if err != nil {
		t.Fatalf("Create() returned unexpected error: %v", err)
	}
	if e.ID == "" {
		t.Error("Create() returned entry without an id")
	}

	got, err := s.Entry.Get(e.ID)
	if err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if got.Task != "shipped the importer" || got.Category != "quality" || got.Date != "2026-03-01" {
		t.Errorf("stored entry = %+v", got)
	}
}

func TestEntryService_CreateRejectsUnknownCategory(t *testing.T) {
	s := newTestServices(t)

	_, err := s.Entry.Create("task", "bogus", "")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Create with unknown category error = %v, expected ErrUnknownCategory", err)
	}

	if count, _ := s.Entry.Count(); count != 0 {
		t.Errorf("Count() = %d after rejected create, expected 0", count)
	}
}

func TestEntryService_List(t *testing.T) {
	s := newTestServices(t)
	mustCreate(t, s.Entry, "older", "quality", "2025-06-01")
	mustCreate(t, s.Entry, "newer", "initiative", "2026-01-15")
	mustCreate(t, s.Entry, "newest", "quality", "2026-03-01")

	result, err := s.Entry.List(nil)
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("Total = %d, expected 3", result.Total)
	}
	if len(result.Entries) != 3 || result.Entries[0].Task != "newest" || result.Entries[2].Task != "older" {
		t.Errorf("List order wrong: %+v", result.Entries)
	}
}

func TestEntryService_ListFiltered(t *testing.T) {
	s := newTestServices(t)
	mustCreate(t, s.Entry, "older", "quality", "2025-06-01")
	mustCreate(t, s.Entry, "newer", "initiative", "2026-01-15")
	mustCreate(t, s.Entry, "newest", "quality", "2026-03-01")

	result, err := s.Entry.List(filter.NewFilter("", "quality", "2026"))
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}
	if len(result.Entries) != 1 || result.Entries[0].Task != "newest" {
		t.Errorf("filtered entries = %+v, expected only the 2026 quality entry", result.Entries)
	}
	if result.Total != 3 {
		t.Errorf("Total = %d, expected pre-filter count 3", result.Total)
	}
}

func TestEntryService_Update(t *testing.T) {
	s := newTestServices(t)
	id := mustCreate(t, s.Entry, "original", "other", "2026-01-01")

	updated, err := s.Entry.Update(id, "rewritten", "quality", "2026-02-02")
	if err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}
	if updated.Task != "rewritten" || updated.Category != "quality" || updated.Date != "2026-02-02" {
		t.Errorf("updated entry = %+v", updated)
	}

	got, err := s.Entry.Get(id)
	if err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if *got != *updated {
		t.Errorf("stored entry %+v does not match update result %+v", got, updated)
	}
}

func TestEntryService_UpdatePartial(t *testing.T) {
	s := newTestServices(t)
	id := mustCreate(t, s.Entry, "original", "other", "2026-01-01")

	updated, err := s.Entry.Update(id, "", "leadership", "")
	if err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}
	if updated.Task != "original" || updated.Category != "leadership" || updated.Date != "2026-01-01" {
		t.Errorf("partial update changed unexpected fields: %+v", updated)
	}
}

func TestEntryService_UpdateErrors(t *testing.T) {
	s := newTestServices(t)
	id := mustCreate(t, s.Entry, "original", "other", "2026-01-01")

	if _, err := s.Entry.Update(id, "", "", ""); !errors.Is(err, ErrNoChangesSpecified) {
		t.Errorf("Update with no fields error = %v, expected ErrNoChangesSpecified", err)
	}
	if _, err := s.Entry.Update(id, "", "bogus", ""); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Update with unknown category error = %v, expected ErrUnknownCategory", err)
	}
	if _, err := s.Entry.Update("missing-id", "x", "", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update on missing id error = %v, expected ErrNotFound", err)
	}
}

func TestEntryService_Delete(t *testing.T) {
	s := newTestServices(t)
	id := mustCreate(t, s.Entry, "to delete", "other", "2026-01-01")
	mustCreate(t, s.Entry, "to keep", "other", "2026-01-02")

	deleted, err := s.Entry.Delete(id)
	if err != nil {
		t.Fatalf("Delete() returned unexpected error: %v", err)
	}
	if deleted.Task != "to delete" {
		t.Errorf("Delete() returned %+v, expected the deleted entry", deleted)
	}

	if count, _ := s.Entry.Count(); count != 1 {
		t.Errorf("Count() = %d after delete, expected 1", count)
	}

	if _, err := s.Entry.Delete("missing-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete on missing id error = %v, expected ErrNotFound", err)
	}
}

func TestEntryService_Clear(t *testing.T) {
	s := newTestServices(t)
	mustCreate(t, s.Entry, "one", "other", "2026-01-01")
	mustCreate(t, s.Entry, "two", "other", "2026-01-02")

	count, err := s.Entry.Clear()
	if err != nil {
		t.Fatalf("Clear() returned unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("Clear() = %d, expected 2", count)
	}

	if remaining, _ := s.Entry.Count(); remaining != 0 {
		t.Errorf("Count() = %d after clear, expected 0", remaining)
	}
}

func TestEntryService_Years(t *testing.T) {
	s := newTestServices(t)
	mustCreate(t, s.Entry, "a", "other", "2024-05-01")
	mustCreate(t, s.Entry, "b", "other", "2026-01-01")
	mustCreate(t, s.Entry, "c", "other", "2026-07-04")
	mustCreate(t, s.Entry, "d", "other", "2025-12-31")

	years, err := s.Entry.Years()
	if err != nil {
		t.Fatalf("Years() returned unexpected error: %v", err)
	}

	expected := []string{"2026", "2025", "2024"}
	if len(years) != len(expected) {
		t.Fatalf("Years() = %v, expected %v", years, expected)
	}
	for i := range expected {
		if years[i] != expected[i] {
			t.Errorf("Years()[%d] = %q, expected %q", i, years[i], expected[i])
		}
	}
}
