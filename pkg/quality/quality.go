// Package quality holds heuristic code-quality checks run after file
// edits. Findings are advisory: reported to the diagnostic stream, never
// blocking.
package quality

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/recallhq/recall/pkg/utils"
)

// MaxReported caps how many findings a hook surfaces per file.
const MaxReported = 5

// Finding is one detected debugging statement.
type Finding struct {
	Line    int
	Kind    string
	Content string
}

var debugPatterns = []struct {
	re   *regexp.Regexp
	kind string
}{
	{regexp.MustCompile(`\bconsole\.log\s*\(`), "console.log"},
	{regexp.MustCompile(`\bconsole\.debug\s*\(`), "console.debug"},
	{regexp.MustCompile(`\bconsole\.info\s*\(`), "console.info (use logger instead)"},
	{regexp.MustCompile(`\bdebugger\b`), "debugger statement"},
}

// CheckDebugStatements scans JS/TS content for leftover debugging
// statements. Test files and commented lines are skipped.
func CheckDebugStatements(path, content string) []Finding {
	if !isScriptFile(path) || IsTestFile(path) {
		return nil
	}

	var findings []Finding
	for i, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "//") || strings.HasPrefix(stripped, "*") {
			continue
		}
		for _, p := range debugPatterns {
			if p.re.MatchString(line) {
				findings = append(findings, Finding{
					Line:    i + 1,
					Kind:    p.kind,
					Content: utils.Truncate(stripped, 80),
				})
			}
		}
	}
	return findings
}

func isScriptFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs":
		return true
	}
	return false
}

// IsTestFile reports whether a path looks like a test file.
func IsTestFile(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	lower := strings.ToLower(path)
	return strings.Contains(name, ".test.") ||
		strings.Contains(name, ".spec.") ||
		strings.HasPrefix(name, "test_") ||
		strings.Contains(lower, "/test/") ||
		strings.Contains(lower, "/__tests__/")
}
