// Package sessionindex persists per-day session statistics in
// .claude/memory/.index.json and writes session-end breadcrumbs under
// .claude/sessions/. The index is append-only: multiple sessions per day
// accumulate as a list, and nothing is ever evicted.
package sessionindex

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Stats summarizes one ended session.
type Stats struct {
	ActivityCount int      `json:"activity_count"`
	FilesChanged  []string `json:"files_changed"`
	EndedAt       string   `json:"ended_at"`
}

// Index is the on-disk shape of .index.json.
type Index struct {
	Sessions    map[string][]Stats `json:"sessions"`
	LastUpdated string             `json:"last_updated"`
}

// Store reads and appends to one index file.
type Store struct {
	path string
}

// NewStore creates a store for the given .index.json path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the index. A missing or malformed file yields an empty index,
// never an error.
func (s *Store) Load() *Index {
	idx := &Index{Sessions: map[string][]Stats{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return idx
	}
	if err := json.Unmarshal(data, idx); err != nil {
		return &Index{Sessions: map[string][]Stats{}}
	}
	if idx.Sessions == nil {
		idx.Sessions = map[string][]Stats{}
	}
	return idx
}

// Append records stats under the given date key and rewrites the file.
func (s *Store) Append(date string, stats Stats, now time.Time) error {
	idx := s.Load()
	idx.Sessions[date] = append(idx.Sessions[date], stats)
	idx.LastUpdated = now.Format(time.RFC3339)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating memory directory: %w", err)
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session index: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing session index: %w", err)
	}
	return nil
}

// Breadcrumb is the minimal session-end record written for recovery.
type Breadcrumb struct {
	EndedAt     string `json:"ended_at"`
	ProjectRoot string `json:"project_root"`
	Cwd         string `json:"cwd"`
}

// WriteBreadcrumb persists a session breadcrumb as session-<id>.json in
// the given directory.
func WriteBreadcrumb(dir, id string, crumb Breadcrumb) error {
	if id == "" {
		return errors.New("empty session id")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating sessions directory: %w", err)
	}

	data, err := json.MarshalIndent(crumb, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session state: %w", err)
	}

	path := filepath.Join(dir, "session-"+id+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session state: %w", err)
	}
	return nil
}
