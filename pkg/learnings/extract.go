package learnings

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/recallhq/recall/pkg/dailylog"
)

// Extract runs every heuristic over one day's log and returns all records
// in a fixed order: corrections, directory patterns, explicit decisions,
// explicit issues. The heuristics are independent and may all fire.
func Extract(doc *dailylog.Document, now time.Time) []Record {
	activities := doc.Activities()

	var records []Record
	records = append(records, detectCorrections(activities, now)...)
	records = append(records, detectRelatedPatterns(activities, now)...)
	records = append(records, extractSection(doc, dailylog.SectionDecisions, TypeDecision, 0.9, "decisions-section", now)...)
	records = append(records, extractSection(doc, dailylog.SectionIssues, TypeIssue, 0.8, "issues-section", now)...)
	return records
}

// detectCorrections flags files touched three or more times in one
// session: repeated edits to the same file suggest iterative corrections.
func detectCorrections(activities []dailylog.Entry, now time.Time) []Record {
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

	var records []Record
	for _, path := range order {
		count := counts[path]
		if count < 3 {
			continue
		}
		records = append(records, Record{
			Type:        TypeCorrection,
			Description: fmt.Sprintf("File '%s' was edited %d times in one session, suggesting iterative corrections", path, count),
			Confidence:  0.6,
			Date:        now.Format("2006-01-02"),
			Files:       []string{path},
			Source:      "activity-log",
		})
	}
	return records
}

// detectRelatedPatterns flags directories where three or more distinct
// files were touched: a sign of tightly coupled components.
func detectRelatedPatterns(activities []dailylog.Entry, now time.Time) []Record {
	dirFiles := map[string]map[string]struct{}{}
	var order []string
	for _, a := range activities {
		if a.Path == "" {
			continue
		}
		if a.Kind != dailylog.KindEdited && a.Kind != dailylog.KindCreated {
			continue
		}
		dir := filepath.Dir(a.Path)
		if dir == "." || dir == "" {
			continue
		}
		if dirFiles[dir] == nil {
			dirFiles[dir] = map[string]struct{}{}
			order = append(order, dir)
		}
		dirFiles[dir][a.Path] = struct{}{}
	}

	var records []Record
	for _, dir := range order {
		files := dirFiles[dir]
		if len(files) < 3 {
			continue
		}

		sorted := make([]string, 0, len(files))
		for f := range files {
			sorted = append(sorted, f)
		}
		sort.Strings(sorted)

		records = append(records, Record{
			Type:        TypePattern,
			Description: fmt.Sprintf("Multiple related files (%d) edited in '%s', indicating tightly coupled components", len(files), dir),
			Confidence:  0.5,
			Date:        now.Format("2006-01-02"),
			Files:       sorted,
			Source:      "activity-log",
		})
	}
	return records
}

var bulletPrefix = regexp.MustCompile(`^[-*]\s+`)

// extractSection turns each substantive line of a named section into one
// record. Absent sections and sections still holding their emphasis
// placeholder are skipped; table rows and separators are ignored.
func extractSection(doc *dailylog.Document, section, recordType string, confidence float64, source string, now time.Time) []Record {
	body, ok := doc.Section(section)
	if !ok || body == "" || dailylog.IsPlaceholder(body) {
		return nil
	}

	var records []Record
	for line := range strings.SplitSeq(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "|") || strings.HasPrefix(line, "---") {
			continue
		}
		line = bulletPrefix.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		records = append(records, Record{
			Type:        recordType,
			Description: line,
			Confidence:  confidence,
			Date:        now.Format("2006-01-02"),
			Files:       []string{},
			Source:      source,
		})
	}
	return records
}
