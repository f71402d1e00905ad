// Package ooxml packs and unpacks Office Open XML containers (.pptx,
// .xlsx, .docx). The container is a zip archive; the OOXML spec requires
// [Content_Types].xml as the first archive entry.
package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ContentTypesName is the mandatory first archive entry.
const ContentTypesName = "[Content_Types].xml"

// ErrNoContentTypes is returned when a directory being packed lacks the
// mandatory content types part.
var ErrNoContentTypes = errors.New("[Content_Types].xml not found in directory")

// Pack creates an OOXML archive from the contents of dir. Entries after
// [Content_Types].xml are written in sorted path order.
func Pack(dir, outFile string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("reading input directory: %w", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ContentTypesName)); err != nil {
		return ErrNoContentTypes
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == ContentTypesName {
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
		return fmt.Errorf("walking input directory: %w", err)
	}
	sort.Strings(files)

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	if err := addEntry(zw, dir, ContentTypesName); err != nil {
		return err
	}
	for _, name := range files {
		if err := addEntry(zw, dir, name); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

func addEntry(zw *zip.Writer, dir, name string) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("creating archive entry %s: %w", name, err)
	}

	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("writing archive entry %s: %w", name, err)
	}
	return nil
}

// Unpack extracts an OOXML archive into dir, preserving structure.
// Entries that would escape dir are rejected.
func Unpack(file, dir string) error {
	zr, err := zip.OpenReader(file)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, entry := range zr.File {
		if !filepath.IsLocal(filepath.FromSlash(entry.Name)) {
			return fmt.Errorf("archive entry escapes output directory: %s", entry.Name)
		}

		target := filepath.Join(dir, filepath.FromSlash(entry.Name))
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", entry.Name, err)
			}
			continue
		}

		if err := extractEntry(entry, target); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", entry.Name, err)
	}

	r, err := entry.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry %s: %w", entry.Name, err)
	}
	defer r.Close()

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("extracting %s: %w", entry.Name, err)
	}
	return nil
}

// ValidationError describes one invalid part found by Validate.
type ValidationError struct {
	Part    string
	Message string
}

func (e ValidationError) String() string {
	return e.Part + ": " + e.Message
}

// Validate checks that the archive carries [Content_Types].xml and that
// every .xml part is well-formed. This is the deliberate hard-failure
// surface: callers exit non-zero on findings.
func Validate(file string) ([]ValidationError, error) {
	zr, err := zip.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	var findings []ValidationError
	hasContentTypes := false

	for _, entry := range zr.File {
		if entry.Name == ContentTypesName {
			hasContentTypes = true
		}
		if !strings.HasSuffix(entry.Name, ".xml") && !strings.HasSuffix(entry.Name, ".rels") {
			continue
		}

		if msg := checkWellFormed(entry); msg != "" {
			findings = append(findings, ValidationError{Part: entry.Name, Message: msg})
		}
	}

	if !hasContentTypes {
		findings = append(findings, ValidationError{
			Part:    ContentTypesName,
			Message: "missing mandatory part",
		})
	}
	return findings, nil
}

func checkWellFormed(entry *zip.File) string {
	r, err := entry.Open()
	if err != nil {
		return "unreadable: " + err.Error()
	}
	defer r.Close()

	dec := xml.NewDecoder(r)
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return ""
		}
		if err != nil {
			return "malformed XML: " + err.Error()
		}
	}
}
