// Package memorydoc owns the long-lived MEMORY.md document: named
// sections of dated bullet entries that survive across sessions. High
// confidence learnings are promoted into it, and a byte-size cap keeps it
// from growing without bound.
package memorydoc

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Section names the propagator targets.
const (
	SectionDecisions = "Key Decisions"
	SectionIssues    = "Known Issues & Workarounds"
	SectionPatterns  = "Patterns & Conventions"
)

// Template renders the initial MEMORY.md for a project.
func Template(name, projectType, root string, now time.Time) string {
	ts := now.Format("2006-01-02 15:04:05")
	return fmt.Sprintf(`# Project Memory

## Project Overview

**Name**: %s
**Type**: %s
**Root**: %s

[Add project description here]

## Key Decisions

*No decisions recorded yet.*

## Architecture Notes

*Architecture documentation will be added as the project evolves.*

## Patterns & Conventions

*Project-specific patterns will be documented here.*

## Known Issues & Workarounds

*No known issues documented yet.*

## Important Context

*Domain knowledge and business rules will be captured here.*

---
*Memory initialized: %s*
*Last updated: %s*
`, name, projectType, root, ts, ts)
}

// ProjectType guesses the project kind from manifest files at root.
func ProjectType(root string) string {
	checks := []struct {
		marker string
		kind   string
	}{
		{"package.json", "Node.js/JavaScript"},
		{"pyproject.toml", "Python"},
		{"setup.py", "Python"},
		{"Cargo.toml", "Rust"},
		{"go.mod", "Go"},
	}
	for _, c := range checks {
		if fileExists(filepath.Join(root, c.marker)) {
			return c.kind
		}
	}
	return "Unknown"
}

// Document is a parsed MEMORY.md. Parsing and rendering are line-exact:
// an unmutated document renders back byte-for-byte.
type Document struct {
	prelude  []string
	sections []*Section
}

// Section is one "## " block of the document.
type Section struct {
	Name  string
	lines []string
}

// Parse splits content into a prelude and its "## " sections.
func Parse(content string) *Document {
	doc := &Document{}
	var current *Section

	for line := range strings.SplitSeq(content, "\n") {
		if name, ok := strings.CutPrefix(line, "## "); ok {
			current = &Section{Name: strings.TrimSpace(name)}
			doc.sections = append(doc.sections, current)
			continue
		}
		if current == nil {
			doc.prelude = append(doc.prelude, line)
		} else {
			current.lines = append(current.lines, line)
		}
	}
	return doc
}

// Render reassembles the document.
func (d *Document) Render() string {
	var b strings.Builder
	b.WriteString(strings.Join(d.prelude, "\n"))
	for _, s := range d.sections {
		b.WriteString("\n## " + s.Name + "\n")
		b.WriteString(strings.Join(s.lines, "\n"))
	}
	return b.String()
}

// Size returns the rendered byte size.
func (d *Document) Size() int {
	return len(d.Render())
}

// Contains reports whether text appears verbatim anywhere in the document.
// The propagator's substring dedup — coarse but cheap.
func (d *Document) Contains(text string) bool {
	return strings.Contains(d.Render(), text)
}

// Section returns the named section, or nil.
func (d *Document) Section(name string) *Section {
	for _, s := range d.sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Body returns the section's trimmed body text.
func (s *Section) Body() string {
	return strings.TrimSpace(strings.Join(s.lines, "\n"))
}

// bulletIndexes returns line indexes of bullet entries, oldest first.
func (s *Section) bulletIndexes() []int {
	var idx []int
	for i, line := range s.lines {
		if strings.HasPrefix(strings.TrimSpace(line), "- ") {
			idx = append(idx, i)
		}
	}
	return idx
}

// BulletCount returns the number of bullet entries in the section.
func (s *Section) BulletCount() int {
	return len(s.bulletIndexes())
}

// isPlaceholder reports whether the section body still holds its emphasis
// sentinel: every non-empty line wrapped in asterisks.
func (s *Section) isPlaceholder() bool {
	for _, line := range s.lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "*") || !strings.HasSuffix(line, "*") {
			return false
		}
	}
	return true
}

// AddBullet inserts a bullet entry. When the section still holds its
// placeholder, the placeholder line is replaced; otherwise the bullet goes
// after the section's last existing bullet, or at the end of the body when
// there are none.
func (s *Section) AddBullet(bullet string) {
	if s.isPlaceholder() {
		for i, line := range s.lines {
			if strings.TrimSpace(line) != "" {
				s.lines[i] = bullet
				return
			}
		}
		// Section was entirely blank lines.
		s.lines = append(s.lines, bullet, "")
		return
	}

	if idx := s.bulletIndexes(); len(idx) > 0 {
		last := idx[len(idx)-1]
		s.lines = append(s.lines[:last+1], append([]string{bullet}, s.lines[last+1:]...)...)
		return
	}

	// Non-placeholder free text and no bullets yet: append after the last
	// non-empty line.
	for i := len(s.lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(s.lines[i]) != "" {
			s.lines = append(s.lines[:i+1], append([]string{bullet}, s.lines[i+1:]...)...)
			return
		}
	}
	s.lines = append(s.lines, bullet)
}

// RemoveOldestBullet drops the section's first bullet entry.
// Returns false when the section has no bullets.
func (s *Section) RemoveOldestBullet() bool {
	idx := s.bulletIndexes()
	if len(idx) == 0 {
		return false
	}
	i := idx[0]
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return true
}
