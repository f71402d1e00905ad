// Package project resolves the project root and the per-project memory
// directory layout. Every hook constructs one Context per invocation and
// passes it down; nothing else in the codebase consults the working
// directory.
package project

import (
	"os"
	"path/filepath"
)

// markers are the files and directories that identify a project root.
// Checked in order at each ancestor directory.
var markers = []string{".git", "package.json", "pyproject.toml", "Cargo.toml", "go.mod"}

// EnvRoot is the environment variable that, when set, overrides
// directory-walk root discovery entirely.
const EnvRoot = "CLAUDE_PROJECT_DIR"

// Context holds the resolved filesystem layout for one hook invocation.
type Context struct {
	// Root is the project root directory.
	Root string

	// Cwd is the working directory the hook was invoked from.
	Cwd string
}

// Resolve builds a Context starting from the given directory. If start is
// empty the process working directory is used. Resolution order:
//
//  1. The CLAUDE_PROJECT_DIR environment variable, when set.
//  2. The nearest ancestor of start containing a project marker.
//  3. start itself, when no marker is found. Resolve never fails.
func Resolve(start string) Context {
	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		} else {
			start = "."
		}
	}

	if env := os.Getenv(EnvRoot); env != "" {
		return Context{Root: env, Cwd: start}
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return Context{Root: start, Cwd: start}
	}

	return Context{Root: findRoot(abs), Cwd: abs}
}

// findRoot walks ancestor directories looking for a project marker.
// Returns start unchanged when nothing matches.
func findRoot(start string) string {
	dir := start
	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// MemoryDir returns <root>/.claude/memory.
func (c Context) MemoryDir() string {
	return filepath.Join(c.Root, ".claude", "memory")
}

// DailyDir returns the directory holding per-date logs.
func (c Context) DailyDir() string {
	return filepath.Join(c.MemoryDir(), "daily")
}

// ArchiveDir returns the directory holding month-bucketed archived logs.
func (c Context) ArchiveDir() string {
	return filepath.Join(c.MemoryDir(), "archive")
}

// RulesDir returns <root>/.claude/rules for generated guidance documents.
func (c Context) RulesDir() string {
	return filepath.Join(c.Root, ".claude", "rules")
}

// SessionsDir returns <root>/.claude/sessions for session breadcrumbs.
func (c Context) SessionsDir() string {
	return filepath.Join(c.Root, ".claude", "sessions")
}

// MemoryFile returns the path of the long-lived MEMORY.md document.
func (c Context) MemoryFile() string {
	return filepath.Join(c.MemoryDir(), "MEMORY.md")
}

// LearningsFile returns the path of the learnings store.
func (c Context) LearningsFile() string {
	return filepath.Join(c.MemoryDir(), "learnings.json")
}

// IndexFile returns the path of the session index.
func (c Context) IndexFile() string {
	return filepath.Join(c.MemoryDir(), ".index.json")
}

// DailyLogFile returns the log path for the given ISO date (YYYY-MM-DD).
func (c Context) DailyLogFile(date string) string {
	return filepath.Join(c.DailyDir(), date+".md")
}

// Rel converts an absolute path to one relative to the project root.
// Paths outside the root are returned unchanged.
func (c Context) Rel(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(c.Root, abs)
	if err != nil || !filepath.IsLocal(rel) {
		return path
	}
	return rel
}
