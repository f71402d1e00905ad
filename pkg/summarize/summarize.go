// Package summarize implements the session-end summarizer: a fixed
// sequence of idempotent steps that close out the day's log, roll
// statistics into the session index, and archive expired logs.
package summarize

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/recallhq/recall/pkg/archive"
	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/hookio"
	"github.com/recallhq/recall/pkg/project"
	"github.com/recallhq/recall/pkg/sessionindex"
)

// changesRowCap bounds the Changes Made table.
const changesRowCap = 20

// Summarizer runs the five session-end steps in order. Each step is
// individually best-effort: one failing step never blocks the rest.
type Summarizer struct {
	ctx      project.Context
	store    *dailylog.Store
	index    *sessionindex.Store
	archiver *archive.Archiver
	log      *slog.Logger
}

// New creates a Summarizer.
func New(ctx project.Context, store *dailylog.Store, index *sessionindex.Store, archiver *archive.Archiver, log *slog.Logger) *Summarizer {
	return &Summarizer{ctx: ctx, store: store, index: index, archiver: archiver, log: log}
}

// Run executes the summarizer for the given moment. When today's log
// already carries a "Session ended" marker the whole run short-circuits:
// a second stop event on an unchanged log must be a no-op.
func (s *Summarizer) Run(now time.Time) error {
	if _, err := os.Stat(s.ctx.MemoryDir()); err != nil {
		return nil // memory never initialized, nothing to summarize
	}

	today := now.Format("2006-01-02")
	doc, err := s.store.Load(today)
	if err != nil {
		return err
	}
	if doc != nil && doc.HasSessionEnd() {
		s.log.Info("session already summarized, skipping duplicate")
		return nil
	}

	if doc != nil {
		_ = hookio.BestEffort(s.log, "session-end-marker", func() error {
			return s.store.Append(now, dailylog.Entry{
				Time: now.Format("15:04:05"),
				Kind: dailylog.KindSessionEnd,
			})
		})
		_ = hookio.BestEffort(s.log, "fill-summary", func() error {
			return s.fillSummary(today)
		})
		_ = hookio.BestEffort(s.log, "fill-changes", func() error {
			return s.fillChanges(today)
		})
	}

	_ = hookio.BestEffort(s.log, "session-index", func() error {
		return s.recordStats(today, now)
	})
	_ = hookio.BestEffort(s.log, "archive", func() error {
		_, err := s.archiver.Run(now)
		return err
	})
	return nil
}

// fillSummary computes the session digest and replaces the summary
// sentinel. A no-op when the sentinel was already replaced.
func (s *Summarizer) fillSummary(date string) error {
	doc, err := s.store.Load(date)
	if err != nil || doc == nil {
		return err
	}
	if doc.SummaryFilled() {
		return nil
	}

	activities := doc.Activities()
	files, counts := changedFiles(activities)

	dirs := map[string]struct{}{}
	for _, f := range files {
		if dir := parentDir(f); dir != "" {
			dirs[dir] = struct{}{}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Edited %d files across %d directories. %d total activities.",
		len(files), len(dirs), len(activities))

	if top := topFiles(files, counts, 5); len(top) > 0 {
		b.WriteString("\n\nMost-edited files:")
		for _, f := range top {
			fmt.Fprintf(&b, "\n- `%s` (%d edits)", f, counts[f])
		}
	}

	return s.store.FillSummary(date, b.String())
}

// fillChanges derives one table row per distinct file, last action and
// reason winning, capped at changesRowCap rows. A no-op when the sentinel
// row was already replaced.
func (s *Summarizer) fillChanges(date string) error {
	doc, err := s.store.Load(date)
	if err != nil || doc == nil {
		return err
	}
	if doc.ChangesFilled() {
		return nil
	}

	type change struct {
		action string
		reason string
	}
	seen := map[string]change{}
	var order []string

	for _, a := range doc.Activities() {
		if a.Path == "" {
			continue
		}
		var action string
		switch a.Kind {
		case dailylog.KindEdited:
			action = "edited"
		case dailylog.KindCreated:
			action = "created"
		default:
			continue
		}
		if _, ok := seen[a.Path]; !ok {
			order = append(order, a.Path)
		}
		seen[a.Path] = change{action: action, reason: strings.Trim(a.Detail, `"`)}
	}

	if len(order) > changesRowCap {
		order = order[:changesRowCap]
	}

	rows := make([]dailylog.ChangeRow, 0, len(order))
	for _, path := range order {
		c := seen[path]
		rows = append(rows, dailylog.ChangeRow{File: path, Action: c.action, Reason: c.reason})
	}
	return s.store.FillChanges(date, rows)
}

// recordStats appends today's session stats to the index. Multiple
// sessions per day accumulate as a list.
func (s *Summarizer) recordStats(date string, now time.Time) error {
	stats := sessionindex.Stats{
		FilesChanged: []string{},
		EndedAt:      now.Format(time.RFC3339),
	}

	if doc, err := s.store.Load(date); err == nil && doc != nil {
		activities := doc.Activities()
		stats.ActivityCount = len(activities)
		files, _ := changedFiles(activities)
		sort.Strings(files)
		stats.FilesChanged = files
	}

	return s.index.Append(date, stats, now)
}

// changedFiles returns the distinct edited/created paths in first-seen
// order, plus per-path touch counts.
func changedFiles(activities []dailylog.Entry) ([]string, map[string]int) {
	counts := map[string]int{}
	var order []string
	for _, a := range activities {
		if a.Path == "" {
			continue
		}
		if a.Kind != dailylog.KindEdited && a.Kind != dailylog.KindCreated {
			continue
		}
		if counts[a.Path] == 0 {
			order = append(order, a.Path)
		}
		counts[a.Path]++
	}
	return order, counts
}

// topFiles returns up to n paths by descending touch count, ties broken by
// first-seen order.
func topFiles(order []string, counts map[string]int, n int) []string {
	top := make([]string, len(order))
	copy(top, order)
	sort.SliceStable(top, func(i, j int) bool {
		return counts[top[i]] > counts[top[j]]
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

func parentDir(path string) string {
	if i := strings.LastIndexByte(path, '/'); i > 0 {
		return path[:i]
	}
	return ""
}
