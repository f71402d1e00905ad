package memorydoc

import (
	"fmt"
	"regexp"
	"time"

	"github.com/recallhq/recall/pkg/learnings"
)

// promotionThreshold gates which learnings reach long-term memory.
const promotionThreshold = 0.7

// evictionBound limits the cap loop so a pathological document cannot spin
// forever.
const evictionBound = 1000

// targetSection maps a learning type to its MEMORY.md section.
func targetSection(recordType string) string {
	switch recordType {
	case learnings.TypeDecision:
		return SectionDecisions
	case learnings.TypeIssue:
		return SectionIssues
	default:
		return SectionPatterns
	}
}

// Propagate promotes high-confidence records into the document as dated
// bullets, skipping any record whose description already appears verbatim.
// Returns the number of bullets inserted.
func (d *Document) Propagate(records []learnings.Record, now time.Time) int {
	inserted := 0
	for _, r := range records {
		if r.Confidence <= promotionThreshold {
			continue
		}
		if d.Contains(r.Description) {
			continue
		}

		section := d.Section(targetSection(r.Type))
		if section == nil {
			continue
		}

		date := r.Date
		if date == "" {
			date = now.Format("2006-01-02")
		}
		section.AddBullet(fmt.Sprintf("- **%s**: %s", date, r.Description))
		inserted++
	}
	return inserted
}

// CapSize evicts bullets until the rendered document fits maxBytes.
// Eviction removes the oldest bullet from whichever section currently has
// the most bullets; sections are never reduced below one entry. Returns
// the number of evicted bullets.
func (d *Document) CapSize(maxBytes int) int {
	if maxBytes <= 0 {
		return 0
	}

	evicted := 0
	for range evictionBound {
		if d.Size() <= maxBytes {
			break
		}

		victim := d.largestSection()
		if victim == nil {
			break
		}
		if !victim.RemoveOldestBullet() {
			break
		}
		evicted++
	}
	return evicted
}

// largestSection returns the section with the most bullets among those
// still holding more than one, ties broken by document order.
func (d *Document) largestSection() *Section {
	var best *Section
	bestCount := 1
	for _, s := range d.sections {
		if c := s.BulletCount(); c > bestCount {
			best = s
			bestCount = c
		}
	}
	return best
}

var lastUpdatedPattern = regexp.MustCompile(`\*Last updated: [^*]*\*`)

// Touch refreshes the document's last-updated footer, when present.
func (d *Document) Touch(now time.Time) {
	stamp := "*Last updated: " + now.Format("2006-01-02 15:04:05") + "*"
	for _, s := range d.sections {
		for i, line := range s.lines {
			if lastUpdatedPattern.MatchString(line) {
				s.lines[i] = lastUpdatedPattern.ReplaceAllString(line, stamp)
				return
			}
		}
	}
}
