package backup

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/settings"
)

func makeEntry(id, task, category, date string) entry.Entry {
	return entry.Entry{ID: id, Task: task, Category: category, Date: date}
}

func testSettings() settings.Settings {
	return settings.Settings{
		Name:        "Jane Smith",
		Designation: "Senior Engineer",
		Department:  "Platform",
		Year:        "2026",
		APIKey:      "sk-ant-secret",
	}
}

var exportTime = time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

func TestExportJSON_Envelope(t *testing.T) {
	entries := []entry.Entry{makeEntry("id-1", "a task", "quality", "2026-02-01")}

	data, err := ExportJSON(entries, testSettings(), exportTime)
	if err != nil {
		t.Fatalf("ExportJSON() returned unexpected error: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if doc.App != "devlog" {
		t.Errorf("App = %q, expected %q", doc.App, "devlog")
	}
	if doc.Version != 1 {
		t.Errorf("Version = %d, expected 1", doc.Version)
	}
	if doc.ExportedAt != "2026-08-29T10:30:00Z" {
		t.Errorf("ExportedAt = %q", doc.ExportedAt)
	}
	if len(doc.Entries) != 1 || doc.Entries[0].ID != "id-1" {
		t.Errorf("Entries = %+v", doc.Entries)
	}
}

func TestExportJSON_NeverCarriesAPIKey(t *testing.T) {
	data, err := ExportJSON(nil, testSettings(), exportTime)
	if err != nil {
		t.Fatalf("ExportJSON() returned unexpected error: %v", err)
	}

	if strings.Contains(string(data), "sk-ant-secret") {
		t.Fatal("exported document contains the API key")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc.Settings.APIKey != "" {
		t.Errorf("Settings.APIKey = %q, expected empty", doc.Settings.APIKey)
	}
	if doc.Settings.Name != "Jane Smith" {
		t.Errorf("Settings.Name = %q, sanitizing dropped other fields", doc.Settings.Name)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(exportTime, "json"); got != "devlog_backup_2026-08-29.json" {
		t.Errorf("Filename() = %q", got)
	}
	if got := Filename(exportTime, "txt"); got != "devlog_backup_2026-08-29.txt" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestMerge_DedupesByID(t *testing.T) {
	existing := []entry.Entry{
		makeEntry("id-1", "kept", "quality", "2026-01-01"),
		makeEntry("id-2", "also kept", "other", "2026-01-02"),
	}
	imported := []entry.Entry{
		makeEntry("id-2", "duplicate, different text", "initiative", "2026-05-05"),
		makeEntry("id-3", "new", "quality", "2026-01-03"),
	}

	merged, added := Merge(imported, existing)

	if added != 1 {
		t.Errorf("added = %d, expected 1", added)
	}
	if len(merged) != 3 {
		t.Fatalf("merged has %d entries, expected 3", len(merged))
	}
	// Existing entry wins over an imported duplicate id
	if merged[1].Task != "also kept" {
		t.Errorf("duplicate import replaced existing entry: %q", merged[1].Task)
	}
	if merged[2].ID != "id-3" {
		t.Errorf("merged order wrong, last id = %q", merged[2].ID)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	imported := []entry.Entry{
		makeEntry("id-1", "one", "quality", "2026-01-01"),
		makeEntry("id-2", "two", "other", "2026-01-02"),
	}

	merged, added := Merge(imported, nil)
	if added != 2 {
		t.Fatalf("first merge added %d, expected 2", added)
	}

	again, added := Merge(imported, merged)
	if added != 0 {
		t.Errorf("re-import added %d, expected 0", added)
	}
	if len(again) != 2 {
		t.Errorf("re-import changed entry count to %d", len(again))
	}
}

func TestMerge_DuplicateIDsWithinImport(t *testing.T) {
	imported := []entry.Entry{
		makeEntry("id-1", "first", "quality", "2026-01-01"),
		makeEntry("id-1", "second with same id", "other", "2026-01-02"),
	}

	merged, added := Merge(imported, nil)
	if added != 1 {
		t.Errorf("added = %d, expected 1 (intra-file duplicate dropped)", added)
	}
	if len(merged) != 1 || merged[0].Task != "first" {
		t.Errorf("merged = %+v", merged)
	}
}

func TestParse_JSONRoundTrip(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("id-1", "one", "quality", "2026-01-01"),
		makeEntry("id-2", "two", "other", "2026-01-02"),
	}
	data, err := ExportJSON(entries, testSettings(), exportTime)
	if err != nil {
		t.Fatalf("ExportJSON() returned unexpected error: %v", err)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if len(parsed) != 2 || parsed[0] != entries[0] || parsed[1] != entries[1] {
		t.Errorf("Parse round trip mismatch: %+v", parsed)
	}
}

func TestParse_JSONWithoutEntries(t *testing.T) {
	tests := []string{
		`{}`,
		`{"app":"devlog","version":1}`,
		`{"entries":"not an array"}`,
		`{"app":"devlog","version":1,"entries":null}`,
		`{"entries": null}`,
		`{"entries":{}}`,
	}
	for _, payload := range tests {
		if _, err := Parse([]byte(payload)); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, expected ErrInvalidFormat", payload, err)
		}
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"entries": [`)); !errors.Is(err, ErrParse) {
		t.Errorf("Parse(truncated JSON) error = %v, expected ErrParse", err)
	}
}

func TestParse_UnrecognizedText(t *testing.T) {
	tests := []string{
		"just some random notes",
		"[1, 2, 3]",
		"",
	}
	for _, payload := range tests {
		if _, err := Parse([]byte(payload)); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, expected ErrInvalidFormat", payload, err)
		}
	}
}

func TestParse_LeadingWhitespaceJSON(t *testing.T) {
	payload := "\n  \t" + `{"entries":[{"id":"id-1","task":"t","category":"other","date":"2026-01-01"}]}`
	parsed, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if len(parsed) != 1 {
		t.Errorf("Parse returned %d entries, expected 1", len(parsed))
	}
}
