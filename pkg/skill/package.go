package skill

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Package validates a skill directory and zips it into
// <outDir>/<name>.zip with all entries under a <name>/ prefix.
// Validation errors abort packaging.
func Package(dir, outDir string) (string, error) {
	issues, err := Validate(dir)
	if err != nil {
		return "", err
	}
	if Errors(issues) {
		return "", fmt.Errorf("skill failed validation: %s", issues[0])
	}

	name := filepath.Base(dir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walking skill directory: %w", err)
	}
	sort.Strings(files)

	zipPath := filepath.Join(outDir, name+".zip")
	out, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, rel := range files {
		w, err := zw.Create(name + "/" + rel)
		if err != nil {
			return "", fmt.Errorf("creating archive entry %s: %w", rel, err)
		}

		f, err := os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", rel, err)
		}
		if _, err := io.Copy(w, f); err != nil {
			f.Close()
			return "", fmt.Errorf("writing archive entry %s: %w", rel, err)
		}
		f.Close()
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalizing archive: %w", err)
	}
	return zipPath, nil
}
