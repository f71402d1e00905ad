// Package bootstrap creates the project memory structure: the
// .claude/memory directory tree, the initial MEMORY.md, and today's daily
// log. Every operation is idempotent; existing content is never touched.
package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/memorydoc"
	"github.com/recallhq/recall/pkg/project"
)

// EnsureStructure creates the memory directory tree.
func EnsureStructure(ctx project.Context) error {
	for _, dir := range []string{ctx.MemoryDir(), ctx.DailyDir(), ctx.ArchiveDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating memory structure: %w", err)
		}
	}
	return nil
}

// EnsureMemoryDoc creates MEMORY.md from its template when missing.
// Returns whether a new document was written.
func EnsureMemoryDoc(ctx project.Context, now time.Time) (bool, error) {
	path := ctx.MemoryFile()
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	content := memorydoc.Template(projectName(ctx.Root), memorydoc.ProjectType(ctx.Root), ctx.Root, now)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("writing memory document: %w", err)
	}
	return true, nil
}

// EnsureDailyLog creates today's log skeleton when missing.
// Returns whether a new log was written.
func EnsureDailyLog(ctx project.Context, now time.Time) (bool, error) {
	store := dailylog.NewStore(ctx.DailyDir())
	path := store.Path(now.Format("2006-01-02"))
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := store.Ensure(now); err != nil {
		return false, err
	}
	return true, nil
}

// projectName derives a display name from the project's manifest files,
// falling back to the directory name.
func projectName(root string) string {
	if data, err := os.ReadFile(filepath.Join(root, "package.json")); err == nil {
		var pkg struct {
			Name string `json:"name"`
		}
		if json.Unmarshal(data, &pkg) == nil && pkg.Name != "" {
			return pkg.Name
		}
	}

	if data, err := os.ReadFile(filepath.Join(root, "pyproject.toml")); err == nil {
		for line := range strings.SplitSeq(string(data), "\n") {
			if after, found := strings.CutPrefix(strings.TrimSpace(line), "name"); found {
				if _, value, ok := strings.Cut(after, "="); ok {
					return strings.Trim(strings.TrimSpace(value), `"'`)
				}
			}
		}
	}

	return filepath.Base(root)
}
