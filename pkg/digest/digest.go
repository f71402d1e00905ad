// Package digest builds the memory-context.md rule: a session-continuity
// summary assembled from the memory document and recent daily logs,
// written to .claude/rules/ and offered to the host as injected context.
package digest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/memorydoc"
	"github.com/recallhq/recall/pkg/project"
)

// maxTODOs bounds how many open checklist items the digest surfaces.
const maxTODOs = 5

// Input holds the pieces of context worth carrying into a new session.
type Input struct {
	OpenTODOs        []string
	KnownIssues      string
	YesterdaySummary string
	RecentActivity   string
	KeyDecisions     string
}

// Empty reports whether there is nothing worth injecting.
func (i Input) Empty() bool {
	return len(i.OpenTODOs) == 0 &&
		i.KnownIssues == "" &&
		i.YesterdaySummary == "" &&
		i.RecentActivity == "" &&
		i.KeyDecisions == ""
}

// Collect gathers digest input from MEMORY.md and the daily logs.
// Missing files and placeholder sections simply contribute nothing.
func Collect(ctx project.Context, store *dailylog.Store, now time.Time) Input {
	var in Input

	if doc, err := memorydoc.Load(ctx.MemoryFile()); err == nil && doc != nil {
		in.KeyDecisions = sectionText(doc, memorydoc.SectionDecisions, 15)
		in.KnownIssues = sectionText(doc, memorydoc.SectionIssues, 10)
	}

	if today, err := store.Load(now.Format("2006-01-02")); err == nil && today != nil {
		in.OpenTODOs = today.OpenTODOs()
		if len(in.OpenTODOs) > maxTODOs {
			in.OpenTODOs = in.OpenTODOs[:maxTODOs]
		}
		if activity, ok := today.Section(dailylog.SectionActivity); ok {
			in.RecentActivity = lastLines(activity, 10)
		}
	}

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if doc, err := store.Load(yesterday); err == nil && doc != nil && doc.SummaryFilled() {
		if summary, ok := doc.Section(dailylog.SectionSummary); ok && !dailylog.IsPlaceholder(summary) {
			in.YesterdaySummary = summary
		}
	}

	return in
}

// Render produces the memory-context.md rule body.
func Render(in Input) string {
	var parts []string
	parts = append(parts,
		"# Project Memory Context",
		"",
		"*Auto-loaded from `.claude/memory/` - Progressive disclosure of project context.*",
		"")

	if len(in.OpenTODOs) > 0 {
		parts = append(parts, "## Open TODOs")
		for _, todo := range in.OpenTODOs {
			parts = append(parts, "- [ ] "+todo)
		}
		parts = append(parts, "")
	}

	if in.KnownIssues != "" {
		parts = append(parts, "## Known Issues", in.KnownIssues, "")
	}

	if in.YesterdaySummary != "" {
		parts = append(parts, "## Yesterday's Summary", in.YesterdaySummary, "")
	}

	if in.RecentActivity != "" {
		parts = append(parts, "## Recent Activity (Today)", in.RecentActivity, "")
	}

	if in.KeyDecisions != "" {
		parts = append(parts, "## Key Decisions", in.KeyDecisions, "")
	}

	parts = append(parts,
		"---",
		"*Full memory: `.claude/memory/MEMORY.md` | Daily logs: `.claude/memory/daily/`*")

	return strings.Join(parts, "\n")
}

// Write renders the digest and persists it as the memory-context rule.
// Returns the rendered content and whether anything was written; an empty
// digest writes nothing.
func Write(ctx project.Context, in Input) (string, bool, error) {
	if in.Empty() {
		return "", false, nil
	}

	if err := os.MkdirAll(ctx.RulesDir(), 0o755); err != nil {
		return "", false, fmt.Errorf("creating rules directory: %w", err)
	}

	content := Render(in)
	path := filepath.Join(ctx.RulesDir(), "memory-context.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", false, fmt.Errorf("writing memory context rule: %w", err)
	}
	return content, true, nil
}

// sectionText returns a section body capped at maxLines, or "" for
// missing or placeholder sections.
func sectionText(doc *memorydoc.Document, name string, maxLines int) string {
	s := doc.Section(name)
	if s == nil {
		return ""
	}
	body := s.Body()
	if body == "" || isPlaceholderText(body) {
		return ""
	}

	lines := strings.Split(body, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

func isPlaceholderText(body string) bool {
	return strings.HasPrefix(body, "*") && strings.HasSuffix(body, "*") && len(body) < 100
}

// lastLines returns up to n trailing non-empty lines of text.
func lastLines(text string, n int) string {
	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
