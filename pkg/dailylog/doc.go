// Package dailylog owns the per-date markdown session logs under
// .claude/memory/daily/. A log is a small fixed schema of named sections:
// free-text summary, a changes table, decision/issue lists, TODOs, and an
// append-only activity log. Sections start life holding a sentinel
// placeholder; once a sentinel has been replaced with real content it is
// never replaced again.
package dailylog

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Section names, in on-disk order.
const (
	SectionSummary   = "Session Summary"
	SectionChanges   = "Changes Made"
	SectionDecisions = "Decisions Made"
	SectionIssues    = "Issues Encountered"
	SectionTODO      = "TODO / Follow-up"
	SectionActivity  = "Activity Log"
)

// Sentinels marking not-yet-filled sections.
const (
	SummarySentinel = "*Session in progress...*"
	ChangesSentinel = "| - | - | - |"
)

// Template renders the skeleton for a new daily log, including the opening
// "Session started" activity entry.
func Template(now time.Time) string {
	date := now.Format("2006-01-02")
	weekday := now.Weekday().String()

	return fmt.Sprintf(`# %s (%s) - Session Log

## Session Summary

%s

## Changes Made

| File | Change | Reason |
|------|--------|--------|
%s

## Decisions Made

*No decisions recorded yet today.*

## Issues Encountered

*No issues recorded yet today.*

## TODO / Follow-up

- [ ] *Add follow-up items as they arise*

## Activity Log

- `+"`%s`"+` - Session started
`, date, weekday, SummarySentinel, ChangesSentinel, now.Format("15:04"))
}

// Document is the parsed, read-only view of a daily log. Mutations go
// through the Store, which rewrites the underlying file.
type Document struct {
	content string
}

// ParseDocument wraps raw log content for section-level reads.
func ParseDocument(content string) *Document {
	return &Document{content: content}
}

// Content returns the raw markdown.
func (d *Document) Content() string {
	return d.content
}

// Section returns the body of the named "## " section, trimmed, and
// whether the section exists. A missing section is absence, not an error.
func (d *Document) Section(name string) (string, bool) {
	header := "## " + name
	idx := strings.Index(d.content, header+"\n")
	if idx < 0 {
		return "", false
	}

	body := d.content[idx+len(header):]
	if next := strings.Index(body, "\n## "); next >= 0 {
		body = body[:next]
	}
	return strings.TrimSpace(body), true
}

// Activities parses every entry in the Activity Log section, in append
// order.
func (d *Document) Activities() []Entry {
	section, ok := d.Section(SectionActivity)
	if !ok {
		return nil
	}

	var entries []Entry
	for line := range strings.SplitSeq(section, "\n") {
		if e, ok := parseEntry(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// HasSessionEnd reports whether a "Session ended" entry is already present
// in the activity log. The session-end hook uses this as its
// duplicate-fire guard.
func (d *Document) HasSessionEnd() bool {
	for _, e := range d.Activities() {
		if e.Kind == KindSessionEnd {
			return true
		}
	}
	return false
}

// SummaryFilled reports whether the summary sentinel has been replaced.
func (d *Document) SummaryFilled() bool {
	return !strings.Contains(d.content, SummarySentinel)
}

// ChangesFilled reports whether the changes-table sentinel row has been
// replaced.
func (d *Document) ChangesFilled() bool {
	return !strings.Contains(d.content, ChangesSentinel)
}

var todoPattern = regexp.MustCompile(`(?m)^- \[ \] (.+)$`)

// OpenTODOs returns unchecked checklist items, skipping the emphasis
// placeholder item.
func (d *Document) OpenTODOs() []string {
	var todos []string
	for _, m := range todoPattern.FindAllStringSubmatch(d.content, -1) {
		if strings.HasPrefix(m[1], "*") {
			continue
		}
		todos = append(todos, m[1])
	}
	return todos
}

// IsPlaceholder reports whether a section body is placeholder text by the
// emphasis convention: every non-empty line wrapped in asterisks. An empty
// body counts as placeholder.
func IsPlaceholder(body string) bool {
	for line := range strings.SplitSeq(body, "\n") {
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
