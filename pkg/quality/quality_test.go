package quality_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/quality"
)

var _ = Describe("CheckDebugStatements", func() {
	It("finds console calls and debugger statements with line numbers", func() {
		content := "const x = 1\nconsole.log(x)\ndebugger\n"

		findings := quality.CheckDebugStatements("src/app.ts", content)
		Expect(findings).To(HaveLen(2))
		Expect(findings[0].Line).To(Equal(2))
		Expect(findings[0].Kind).To(Equal("console.log"))
		Expect(findings[1].Line).To(Equal(3))
		Expect(findings[1].Kind).To(Equal("debugger statement"))
	})

	It("skips commented lines", func() {
		content := "// console.log(x)\n * console.debug(y)\nconsole.info(z)\n"

		findings := quality.CheckDebugStatements("src/app.js", content)
		Expect(findings).To(HaveLen(1))
		Expect(findings[0].Kind).To(ContainSubstring("console.info"))
	})

	It("ignores non-script files", func() {
		Expect(quality.CheckDebugStatements("main.go", "console.log(x)")).To(BeEmpty())
		Expect(quality.CheckDebugStatements("notes.md", "debugger")).To(BeEmpty())
	})

	It("ignores test files", func() {
		Expect(quality.CheckDebugStatements("app.test.ts", "console.log(x)")).To(BeEmpty())
		Expect(quality.CheckDebugStatements("src/__tests__/app.ts", "console.log(x)")).To(BeEmpty())
	})

	It("does not flag consoleXlog lookalikes", func() {
		Expect(quality.CheckDebugStatements("a.ts", "myconsole.logger(x)")).To(BeEmpty())
		Expect(quality.CheckDebugStatements("a.ts", "undebuggered()")).To(BeEmpty())
	})
})

var _ = Describe("IsTestFile", func() {
	It("recognizes common test path shapes", func() {
		Expect(quality.IsTestFile("app.test.ts")).To(BeTrue())
		Expect(quality.IsTestFile("app.spec.js")).To(BeTrue())
		Expect(quality.IsTestFile("test_app.py")).To(BeTrue())
		Expect(quality.IsTestFile("src/test/util.ts")).To(BeTrue())
		Expect(quality.IsTestFile("src/__tests__/util.ts")).To(BeTrue())
		Expect(quality.IsTestFile("src/app.ts")).To(BeFalse())
	})
})
