// Package backup implements the portable backup document: a versioned JSON
// envelope (and a human-readable text form) holding entries plus a sanitized
// settings snapshot, along with the id-based deduplicating merge used on
// import.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/settings"
)

const (
	// App is the application marker in exported documents
	App = "devlog"
	// Version is the backup document format version
	Version = 1
)

// Import errors. ErrInvalidFormat covers structurally wrong payloads (no
// entries array, unrecognized text); ErrParse covers bytes that are not
// well-formed at all.
var (
	ErrInvalidFormat = errors.New("invalid backup file")
	ErrParse         = errors.New("failed to parse backup file")
)

// Document is the versioned backup envelope. The embedded settings snapshot
// never carries the API credential.
type Document struct {
	App        string            `json:"app"`
	Version    int               `json:"version"`
	ExportedAt string            `json:"exportedAt"`
	Entries    []entry.Entry     `json:"entries"`
	Settings   settings.Settings `json:"settings"`
}

// ExportJSON renders entries and sanitized settings as an indented JSON
// backup document.
func ExportJSON(entries []entry.Entry, s settings.Settings, now time.Time) ([]byte, error) {
	doc := Document{
		App:        App,
		Version:    Version,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Entries:    entries,
		Settings:   settings.SanitizeForExport(s),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Filename returns the conventional backup file name for the given moment,
// e.g. "devlog_backup_2026-08-29.json".
func Filename(now time.Time, format string) string {
	return fmt.Sprintf("devlog_backup_%s.%s", now.Format("2006-01-02"), format)
}

// Merge appends imported entries to the existing collection, dropping any
// imported entry whose id already exists. Surviving entries keep their file
// order. Returns the merged collection and the count actually added; the
// count is the sole user-facing signal, and re-importing a file that was
// already merged yields zero.
func Merge(imported, existing []entry.Entry) ([]entry.Entry, int) {
	existingIDs := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		existingIDs[e.ID] = struct{}{}
	}

	merged := make([]entry.Entry, len(existing), len(existing)+len(imported))
	copy(merged, existing)

	added := 0
	for _, e := range imported {
		if _, dup := existingIDs[e.ID]; dup {
			continue
		}
		existingIDs[e.ID] = struct{}{}
		merged = append(merged, e)
		added++
	}

	return merged, added
}

// Parse decodes a backup payload in either supported format and returns its
// entries. Payloads that parse as a JSON object must carry an entries array;
// anything else goes through the text parser. No partial results: an invalid
// payload yields no entries at all.
func Parse(data []byte) ([]entry.Entry, error) {
	if looksLikeJSON(data) {
		return parseJSON(data)
	}
	return parseText(data)
}

func looksLikeJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return b == '{'
		}
	}
	return false
}

func parseJSON(data []byte) ([]entry.Entry, error) {
	// Entries is deliberately raw here: a document whose "entries" key holds
	// a non-array must be rejected as invalid, not as a parse failure.
	var probe struct {
		Entries json.RawMessage `json:"entries"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	// A missing key leaves the raw message empty; "null" passes unmarshal but
	// is not an entries array either.
	if !isJSONArray(probe.Entries) {
		return nil, ErrInvalidFormat
	}

	var entries []entry.Entry
	if err := json.Unmarshal(probe.Entries, &entries); err != nil {
		return nil, ErrInvalidFormat
	}
	return entries, nil
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return b == '['
		}
	}
	return false
}
