// Package entry defines the core task entry model.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the calendar date layout used by all entries (no time zone).
const DateFormat = "2006-01-02"

// Common validation errors
var (
	ErrEmptyTask   = errors.New("task cannot be empty")
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
)

// Entry represents a single logged unit of work.
type Entry struct {
	ID       string `json:"id"`
	Task     string `json:"task"`
	Category string `json:"category"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// New creates an Entry with a generated id. The task is trimmed; date defaults
// to today when empty.
func New(task, category, date string) (Entry, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return Entry{}, ErrEmptyTask
	}
	if date == "" {
		date = time.Now().Format(DateFormat)
	}
	if err := ValidateDate(date); err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:       uuid.NewString(),
		Task:     task,
		Category: category,
		Date:     date,
	}, nil
}

// ValidateDate checks that a date string is a real calendar date in
// YYYY-MM-DD form.
func ValidateDate(date string) error {
	if len(date) != len(DateFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// Year extracts the year portion of the entry date (first 4 characters).
func (e Entry) Year() string {
	if len(e.Date) < 4 {
		return ""
	}
	return e.Date[:4]
}

// InYear reports whether the entry falls in the given year. The match is a
// string-prefix comparison on the date, so entries from adjacent years never
// leak in.
func (e Entry) InYear(year string) bool {
	return strings.HasPrefix(e.Date, year)
}
