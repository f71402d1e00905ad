// Package learnings extracts heuristic learnings from daily logs and
// persists them in a capped JSON store (.claude/memory/learnings.json).
package learnings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Record types.
const (
	TypeCorrection = "correction"
	TypePattern    = "pattern"
	TypeDecision   = "decision"
	TypeIssue      = "issue"
)

// maxRecords caps the store; the oldest records are truncated on overflow
// (a ring buffer by insertion order).
const maxRecords = 100

// Record is one extracted learning.
type Record struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Confidence  float64  `json:"confidence"`
	Date        string   `json:"date"`
	Files       []string `json:"files"`
	Source      string   `json:"source"`
}

// File is the on-disk shape of learnings.json.
type File struct {
	Learnings   []Record `json:"learnings"`
	LastUpdated string   `json:"last_updated"`
}

// Store reads and appends to one learnings file.
type Store struct {
	path string
}

// NewStore creates a store for the given learnings.json path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the store. A missing or malformed file yields an empty store.
func (s *Store) Load() *File {
	f := &File{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return f
	}
	if err := json.Unmarshal(data, f); err != nil {
		return &File{}
	}
	return f
}

// Append adds records, truncates to the newest maxRecords, and rewrites
// the file. A no-op when records is empty.
func (s *Store) Append(records []Record, now time.Time) error {
	if len(records) == 0 {
		return nil
	}

	f := s.Load()
	f.Learnings = append(f.Learnings, records...)
	if len(f.Learnings) > maxRecords {
		f.Learnings = f.Learnings[len(f.Learnings)-maxRecords:]
	}
	f.LastUpdated = now.Format(time.RFC3339)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating memory directory: %w", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling learnings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing learnings: %w", err)
	}
	return nil
}
