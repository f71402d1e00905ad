package memorydoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads and parses a MEMORY.md file.
// Returns nil, nil when the file does not exist.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading memory document: %w", err)
	}
	return Parse(string(data)), nil
}

// Save rewrites the document in place.
func Save(path string, doc *Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating memory directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc.Render()), 0o644); err != nil {
		return fmt.Errorf("writing memory document: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
