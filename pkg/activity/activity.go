// Package activity classifies incoming tool events and appends formatted
// entries to the daily log. Logging is best-effort: a failure here must
// never abort the host's tool call, so the hook wraps Record accordingly.
package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/hookio"
	"github.com/recallhq/recall/pkg/project"
	"github.com/recallhq/recall/pkg/utils"
)

// skipPatterns filters noise: version-control internals, dependency and
// build output directories, lockfiles, and the memory store's own files.
// Matched case-insensitively as substrings of the target path.
var skipPatterns = []string{
	"node_modules/",
	".git/",
	"__pycache__/",
	".pyc",
	".log",
	".tmp",
	".cache/",
	"dist/",
	"build/",
	".next/",
	".claude/memory/",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
}

// Logger appends classified tool events to the daily log store.
type Logger struct {
	ctx        project.Context
	store      *dailylog.Store
	snippetLen int
}

// NewLogger creates a Logger. snippetLen bounds the detail text recorded
// per entry.
func NewLogger(ctx project.Context, store *dailylog.Store, snippetLen int) *Logger {
	if snippetLen <= 0 {
		snippetLen = 60
	}
	return &Logger{ctx: ctx, store: store, snippetLen: snippetLen}
}

// Record formats and appends one entry for the given event. Events whose
// target path matches the denylist are silently dropped.
func (l *Logger) Record(ev hookio.ToolEvent, now time.Time) error {
	if ev.Path != "" && !Loggable(ev.Path) {
		return nil
	}

	entry, ok := l.entryFor(ev, now)
	if !ok {
		return nil
	}
	return l.store.Append(now, entry)
}

func (l *Logger) entryFor(ev hookio.ToolEvent, now time.Time) (dailylog.Entry, bool) {
	ts := now.Format("15:04:05")

	switch ev.Kind {
	case hookio.EventEdit:
		return dailylog.Entry{
			Time:   ts,
			Kind:   dailylog.KindEdited,
			Path:   l.ctx.Rel(ev.Path),
			Detail: fmt.Sprintf("%q", utils.Truncate(firstLine(ev.NewText), l.snippetLen)),
		}, true

	case hookio.EventWrite:
		return dailylog.Entry{
			Time:   ts,
			Kind:   dailylog.KindCreated,
			Path:   l.ctx.Rel(ev.Path),
			Detail: fmt.Sprintf("~%d chars", len(ev.Content)),
		}, true

	case hookio.EventBash:
		return dailylog.Entry{
			Time:   ts,
			Kind:   dailylog.KindRan,
			Detail: utils.Truncate(firstLine(ev.Command), l.snippetLen),
		}, true

	case hookio.EventSearch:
		return dailylog.Entry{
			Time:   ts,
			Kind:   dailylog.KindSearched,
			Detail: utils.Truncate(ev.Query, l.snippetLen),
		}, true

	case hookio.EventFetch:
		return dailylog.Entry{
			Time: ts,
			Kind: dailylog.KindFetched,
			Path: ev.URL,
		}, true

	case hookio.EventRead:
		return dailylog.Entry{
			Time: ts,
			Kind: dailylog.KindRead,
			Path: l.ctx.Rel(ev.Path),
		}, true
	}

	return dailylog.Entry{}, false
}

// Loggable reports whether a path is worth recording.
func Loggable(path string) bool {
	lower := strings.ToLower(path)
	for _, pattern := range skipPatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return true
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
