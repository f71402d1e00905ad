package learnings_test

import (
	"fmt"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/learnings"
)

var extractedAt = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func logWith(sections map[string]string, entries ...dailylog.Entry) *dailylog.Document {
	var b strings.Builder
	b.WriteString("# 2026-03-14 (Saturday) - Session Log\n\n")

	decisions, ok := sections[dailylog.SectionDecisions]
	if !ok {
		decisions = "*No decisions recorded yet today.*"
	}
	issues, ok := sections[dailylog.SectionIssues]
	if !ok {
		issues = "*No issues recorded yet today.*"
	}

	fmt.Fprintf(&b, "## Decisions Made\n\n%s\n\n", decisions)
	fmt.Fprintf(&b, "## Issues Encountered\n\n%s\n\n", issues)
	b.WriteString("## Activity Log\n\n")
	for _, e := range entries {
		b.WriteString(e.String() + "\n")
	}
	return dailylog.ParseDocument(b.String())
}

func edit(path string) dailylog.Entry {
	return dailylog.Entry{Time: "10:00:00", Kind: dailylog.KindEdited, Path: path}
}

var _ = Describe("Extract", func() {
	Describe("correction detection", func() {
		It("flags files edited three or more times", func() {
			doc := logWith(nil,
				edit("src/parser.go"), edit("src/parser.go"), edit("src/parser.go"),
				edit("src/other.go"), edit("src/other.go"),
			)

			records := learnings.Extract(doc, extractedAt)
			corrections := byType(records, learnings.TypeCorrection)
			Expect(corrections).To(HaveLen(1))
			Expect(corrections[0].Description).To(Equal(
				"File 'src/parser.go' was edited 3 times in one session, suggesting iterative corrections"))
			Expect(corrections[0].Confidence).To(Equal(0.6))
			Expect(corrections[0].Files).To(Equal([]string{"src/parser.go"}))
			Expect(corrections[0].Source).To(Equal("activity-log"))
			Expect(corrections[0].Date).To(Equal("2026-03-14"))
		})

		It("counts created entries toward the threshold", func() {
			doc := logWith(nil,
				edit("src/a.go"), edit("src/a.go"),
				dailylog.Entry{Time: "10:01:00", Kind: dailylog.KindCreated, Path: "src/a.go"},
			)

			Expect(byType(learnings.Extract(doc, extractedAt), learnings.TypeCorrection)).To(HaveLen(1))
		})

		It("ignores reads", func() {
			doc := logWith(nil,
				dailylog.Entry{Time: "10:00:00", Kind: dailylog.KindRead, Path: "src/a.go"},
				dailylog.Entry{Time: "10:01:00", Kind: dailylog.KindRead, Path: "src/a.go"},
				dailylog.Entry{Time: "10:02:00", Kind: dailylog.KindRead, Path: "src/a.go"},
			)

			Expect(byType(learnings.Extract(doc, extractedAt), learnings.TypeCorrection)).To(BeEmpty())
		})
	})

	Describe("pattern detection", func() {
		It("flags directories with three or more distinct files", func() {
			doc := logWith(nil,
				edit("src/auth/login.go"), edit("src/auth/token.go"), edit("src/auth/session.go"),
				edit("docs/readme.md"),
			)

			patterns := byType(learnings.Extract(doc, extractedAt), learnings.TypePattern)
			Expect(patterns).To(HaveLen(1))
			Expect(patterns[0].Description).To(Equal(
				"Multiple related files (3) edited in 'src/auth', indicating tightly coupled components"))
			Expect(patterns[0].Confidence).To(Equal(0.5))
			Expect(patterns[0].Files).To(Equal([]string{
				"src/auth/login.go", "src/auth/session.go", "src/auth/token.go",
			}))
		})

		It("counts distinct files, not touches", func() {
			doc := logWith(nil,
				edit("src/auth/login.go"), edit("src/auth/login.go"), edit("src/auth/login.go"),
			)

			Expect(byType(learnings.Extract(doc, extractedAt), learnings.TypePattern)).To(BeEmpty())
		})
	})

	Describe("section extraction", func() {
		It("turns decision bullets into high-confidence records", func() {
			doc := logWith(map[string]string{
				dailylog.SectionDecisions: "- Use sqlite for the cache\n- Keep the wire format stable",
			})

			decisions := byType(learnings.Extract(doc, extractedAt), learnings.TypeDecision)
			Expect(decisions).To(HaveLen(2))
			Expect(decisions[0].Description).To(Equal("Use sqlite for the cache"))
			Expect(decisions[0].Confidence).To(Equal(0.9))
			Expect(decisions[0].Source).To(Equal("decisions-section"))
		})

		It("turns issue lines into records at 0.8 confidence", func() {
			doc := logWith(map[string]string{
				dailylog.SectionIssues: "* Flaky DNS in CI",
			})

			issues := byType(learnings.Extract(doc, extractedAt), learnings.TypeIssue)
			Expect(issues).To(HaveLen(1))
			Expect(issues[0].Description).To(Equal("Flaky DNS in CI"))
			Expect(issues[0].Confidence).To(Equal(0.8))
			Expect(issues[0].Source).To(Equal("issues-section"))
		})

		It("skips placeholder sections", func() {
			doc := logWith(nil)
			records := learnings.Extract(doc, extractedAt)
			Expect(byType(records, learnings.TypeDecision)).To(BeEmpty())
			Expect(byType(records, learnings.TypeIssue)).To(BeEmpty())
		})

		It("skips table rows and separators", func() {
			doc := logWith(map[string]string{
				dailylog.SectionDecisions: "| a | b |\n---\n- Real decision",
			})

			decisions := byType(learnings.Extract(doc, extractedAt), learnings.TypeDecision)
			Expect(decisions).To(HaveLen(1))
			Expect(decisions[0].Description).To(Equal("Real decision"))
		})
	})

	It("orders records corrections, patterns, decisions, issues", func() {
		doc := logWith(map[string]string{
			dailylog.SectionDecisions: "- decided",
			dailylog.SectionIssues:    "- broke",
		},
			edit("src/auth/a.go"), edit("src/auth/a.go"), edit("src/auth/a.go"),
			edit("src/auth/b.go"), edit("src/auth/c.go"),
		)

		records := learnings.Extract(doc, extractedAt)
		Expect(records).To(HaveLen(4))
		Expect(records[0].Type).To(Equal(learnings.TypeCorrection))
		Expect(records[1].Type).To(Equal(learnings.TypePattern))
		Expect(records[2].Type).To(Equal(learnings.TypeDecision))
		Expect(records[3].Type).To(Equal(learnings.TypeIssue))
	})
})

func byType(records []learnings.Record, recordType string) []learnings.Record {
	var out []learnings.Record
	for _, r := range records {
		if r.Type == recordType {
			out = append(out, r)
		}
	}
	return out
}
