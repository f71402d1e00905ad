package dailylog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Store owns the daily/ directory. All mutations are either pure appends
// (activity entries) or whole-read/whole-rewrite (section fills); there is
// no locking — the host serializes hook invocations.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given daily/ directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the log path for an ISO date string.
func (s *Store) Path(date string) string {
	return filepath.Join(s.dir, date+".md")
}

// Load reads and parses the log for the given date.
// Returns nil, nil when no log exists for that date.
func (s *Store) Load(date string) (*Document, error) {
	data, err := os.ReadFile(s.Path(date))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading daily log: %w", err)
	}
	return ParseDocument(string(data)), nil
}

// Ensure creates today's log with its template skeleton when missing.
func (s *Store) Ensure(now time.Time) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating daily log directory: %w", err)
	}

	path := s.Path(now.Format("2006-01-02"))
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(Template(now)), 0o644); err != nil {
		return fmt.Errorf("creating daily log: %w", err)
	}
	return nil
}

// Append adds one activity entry to today's log, creating the log first
// when needed. Entries are append-only and chronological by construction.
func (s *Store) Append(now time.Time, e Entry) error {
	if err := s.Ensure(now); err != nil {
		return err
	}

	f, err := os.OpenFile(s.Path(now.Format("2006-01-02")), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening daily log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, e.String()); err != nil {
		return fmt.Errorf("appending activity entry: %w", err)
	}
	return nil
}

// FillSummary replaces the summary sentinel with text. A no-op when the
// sentinel is already gone (idempotent fill).
func (s *Store) FillSummary(date, text string) error {
	return s.replace(date, SummarySentinel, text)
}

// ChangeRow is one row of the Changes Made table.
type ChangeRow struct {
	File   string
	Action string
	Reason string
}

// FillChanges replaces the sentinel table row with one row per change.
// A no-op when the sentinel row is already gone.
func (s *Store) FillChanges(date string, rows []ChangeRow) error {
	if len(rows) == 0 {
		return nil
	}

	rendered := make([]string, len(rows))
	for i, r := range rows {
		reason := r.Reason
		if reason == "" {
			reason = "-"
		}
		rendered[i] = fmt.Sprintf("| `%s` | %s | %s |", r.File, r.Action, reason)
	}
	return s.replace(date, ChangesSentinel, strings.Join(rendered, "\n"))
}

// replace swaps the first occurrence of sentinel for text and rewrites the
// whole file. Missing file or missing sentinel are both no-ops.
func (s *Store) replace(date, sentinel, text string) error {
	path := s.Path(date)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading daily log: %w", err)
	}

	content := string(data)
	if !strings.Contains(content, sentinel) {
		return nil
	}

	content = strings.Replace(content, sentinel, text, 1)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("rewriting daily log: %w", err)
	}
	return nil
}

// Dates lists every date with a log file, sorted ascending. Filenames that
// are not ISO dates are skipped.
func (s *Store) Dates() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading daily log directory: %w", err)
	}

	var dates []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		date := strings.TrimSuffix(name, ".md")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			continue
		}
		dates = append(dates, date)
	}

	sort.Strings(dates)
	return dates, nil
}
