package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// maxNameLength bounds skill names.
const maxNameLength = 64

// Issue is one validation finding.
type Issue struct {
	Severity string // "error" or "warning"
	Message  string
}

func (i Issue) String() string {
	return strings.ToUpper(i.Severity) + ": " + i.Message
}

// Errors reports whether any issue is a hard error.
func Errors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == "error" {
			return true
		}
	}
	return false
}

// CheckName validates skill naming rules: lowercase, starts with a
// letter, alphanumerics and hyphens only, bounded length.
func CheckName(name string) []string {
	var issues []string
	if name == "" {
		return []string{"name is empty"}
	}
	if !unicode.IsLetter(rune(name[0])) {
		issues = append(issues, "must start with a letter")
	}
	if name != strings.ToLower(name) {
		issues = append(issues, "must be lowercase")
	}
	for _, r := range name {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) && r != '-' {
			issues = append(issues, fmt.Sprintf("invalid character %q", r))
			break
		}
	}
	if len(name) > maxNameLength {
		issues = append(issues, fmt.Sprintf("longer than %d characters", maxNameLength))
	}
	return issues
}

// Validate checks a skill directory: SKILL.md present, frontmatter
// parseable, name valid and matching the directory, description filled
// in. Unresolved TODO markers are warnings.
func Validate(dir string) ([]Issue, error) {
	data, err := os.ReadFile(filepath.Join(dir, "SKILL.md"))
	if err != nil {
		return []Issue{{Severity: "error", Message: "SKILL.md not found"}}, nil
	}

	sk, err := ParseMD(string(data))
	if err != nil {
		return []Issue{{Severity: "error", Message: "SKILL.md frontmatter: " + err.Error()}}, nil
	}

	var issues []Issue
	for _, msg := range CheckName(sk.Name) {
		issues = append(issues, Issue{Severity: "error", Message: "name: " + msg})
	}

	if dirName := filepath.Base(dir); sk.Name != "" && sk.Name != dirName {
		issues = append(issues, Issue{
			Severity: "error",
			Message:  fmt.Sprintf("name %q does not match directory %q", sk.Name, dirName),
		})
	}

	switch {
	case sk.Description == "":
		issues = append(issues, Issue{Severity: "error", Message: "description is empty"})
	case strings.HasPrefix(sk.Description, "TODO"):
		issues = append(issues, Issue{Severity: "error", Message: "description is still the template TODO"})
	}

	if strings.Contains(sk.Content, "TODO") {
		issues = append(issues, Issue{Severity: "warning", Message: "body contains unresolved TODO markers"})
	}

	return issues, nil
}
