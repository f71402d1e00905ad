package skill_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/skill"
)

var _ = Describe("ParseMD and RenderMD", func() {
	It("round-trips a skill manifest", func() {
		sk := &skill.Skill{
			Name:        "pdf-tools",
			Description: "This skill should be used when working with PDF files.",
			Version:     "1.2.0",
			Tags:        []string{"pdf", "documents"},
			Content:     "# PDF Tools\n\nInstructions here.",
			CreatedAt:   time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		}

		parsed, err := skill.ParseMD(skill.RenderMD(sk))
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed.Name).To(Equal("pdf-tools"))
		Expect(parsed.Description).To(Equal(sk.Description))
		Expect(parsed.Version).To(Equal("1.2.0"))
		Expect(parsed.Tags).To(Equal([]string{"pdf", "documents"}))
		Expect(parsed.Content).To(Equal(sk.Content))
		Expect(parsed.CreatedAt).To(Equal(sk.CreatedAt))
	})

	It("defaults the version when absent", func() {
		parsed, err := skill.ParseMD("---\nname: x-ray\ndescription: d\n---\n\nbody\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed.Version).To(Equal("0.1.0"))
	})

	It("rejects content without frontmatter", func() {
		_, err := skill.ParseMD("# Just markdown\n")
		Expect(err).To(HaveOccurred())

		_, err = skill.ParseMD("---\nname: unterminated\n")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("CheckName", func() {
	It("accepts kebab-case names", func() {
		Expect(skill.CheckName("pdf-tools")).To(BeEmpty())
		Expect(skill.CheckName("data2viz")).To(BeEmpty())
	})

	It("rejects bad shapes", func() {
		Expect(skill.CheckName("")).NotTo(BeEmpty())
		Expect(skill.CheckName("2fast")).NotTo(BeEmpty())
		Expect(skill.CheckName("PDF-Tools")).NotTo(BeEmpty())
		Expect(skill.CheckName("has_underscore")).NotTo(BeEmpty())
		Expect(skill.CheckName(strings.Repeat("a", 65))).NotTo(BeEmpty())
	})
})

var _ = Describe("Scaffold", func() {
	var parent string

	BeforeEach(func() {
		var err error
		parent, err = os.MkdirTemp("", "skill-test-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, parent)
	})

	It("creates the standard layout", func() {
		dir, err := skill.Scaffold("pdf-tools", parent)
		Expect(err).NotTo(HaveOccurred())
		Expect(dir).To(Equal(filepath.Join(parent, "pdf-tools")))

		Expect(filepath.Join(dir, "SKILL.md")).To(BeARegularFile())
		Expect(filepath.Join(dir, "scripts", "example.sh")).To(BeARegularFile())
		Expect(filepath.Join(dir, "references", "example.md")).To(BeARegularFile())
		Expect(filepath.Join(dir, "assets")).To(BeADirectory())

		data, err := os.ReadFile(filepath.Join(dir, "SKILL.md"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("name: pdf-tools"))
		Expect(string(data)).To(ContainSubstring("# Pdf Tools"))
	})

	It("refuses to overwrite an existing skill", func() {
		_, err := skill.Scaffold("pdf-tools", parent)
		Expect(err).NotTo(HaveOccurred())

		_, err = skill.Scaffold("pdf-tools", parent)
		Expect(err).To(MatchError(ContainSubstring("already exists")))
	})

	It("rejects invalid names up front", func() {
		_, err := skill.Scaffold("Bad Name", parent)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Validate", func() {
	var parent string

	writeSkill := func(name, content string) string {
		dir := filepath.Join(parent, name)
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644)).To(Succeed())
		return dir
	}

	BeforeEach(func() {
		var err error
		parent, err = os.MkdirTemp("", "skill-validate-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, parent)
	})

	It("reports a missing SKILL.md as an error", func() {
		dir := filepath.Join(parent, "empty")
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())

		issues, err := skill.Validate(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(skill.Errors(issues)).To(BeTrue())
	})

	It("flags a fresh scaffold's TODO description as an error", func() {
		dir, err := skill.Scaffold("fresh", parent)
		Expect(err).NotTo(HaveOccurred())

		issues, err := skill.Validate(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(skill.Errors(issues)).To(BeTrue())
	})

	It("flags a name/directory mismatch", func() {
		dir := writeSkill("renamed", "---\nname: original\ndescription: does things\n---\n\nbody\n")

		issues, err := skill.Validate(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(skill.Errors(issues)).To(BeTrue())
	})

	It("passes a completed skill with at most warnings", func() {
		dir := writeSkill("done", "---\nname: done\ndescription: This skill should be used for testing.\n---\n\n# Done\n\nAll set.\n")

		issues, err := skill.Validate(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(skill.Errors(issues)).To(BeFalse())
	})

	It("warns about TODOs left in the body", func() {
		dir := writeSkill("wip", "---\nname: wip\ndescription: This skill should be used for testing.\n---\n\nTODO finish\n")

		issues, err := skill.Validate(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(skill.Errors(issues)).To(BeFalse())
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Severity).To(Equal("warning"))
	})
})

var _ = Describe("Package", func() {
	var parent string

	BeforeEach(func() {
		var err error
		parent, err = os.MkdirTemp("", "skill-package-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, parent)
	})

	It("zips a valid skill under a name prefix", func() {
		dir := filepath.Join(parent, "ready")
		Expect(os.MkdirAll(filepath.Join(dir, "scripts"), 0o755)).To(Succeed())
		manifest := "---\nname: ready\ndescription: This skill should be used for testing.\n---\n\n# Ready\n"
		Expect(os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(manifest), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "scripts", "run.sh"), []byte("echo hi\n"), 0o755)).To(Succeed())

		zipPath, err := skill.Package(dir, parent)
		Expect(err).NotTo(HaveOccurred())
		Expect(zipPath).To(Equal(filepath.Join(parent, "ready.zip")))

		zr, err := zip.OpenReader(zipPath)
		Expect(err).NotTo(HaveOccurred())
		defer zr.Close()

		var names []string
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		Expect(names).To(Equal([]string{"ready/SKILL.md", "ready/scripts/run.sh"}))
	})

	It("refuses to package an invalid skill", func() {
		dir := filepath.Join(parent, "broken")
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())

		_, err := skill.Package(dir, parent)
		Expect(err).To(MatchError(ContainSubstring("failed validation")))
	})
})
