// Package skill scaffolds, validates, and packages skill plugin
// directories: a SKILL.md with YAML frontmatter plus standard scripts/,
// references/, and assets/ subdirectories.
package skill

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Skill is the parsed view of a SKILL.md file.
type Skill struct {
	Name        string    `json:"name"`        // kebab-case identifier
	Description string    `json:"description"` // trigger description for the host
	Version     string    `json:"version"`     // semver, default "0.1.0"
	Tags        []string  `json:"tags"`
	Content     string    `json:"content"` // markdown body
	CreatedAt   time.Time `json:"created_at"`
}

// RenderMD renders a Skill as its on-disk representation
// (frontmatter + body).
func RenderMD(sk *Skill) string {
	var b strings.Builder

	b.WriteString("---\n")
	fmt.Fprintf(&b, "name: %s\n", sk.Name)
	fmt.Fprintf(&b, "description: %s\n", sk.Description)
	if sk.Version != "" {
		fmt.Fprintf(&b, "version: %s\n", sk.Version)
	}
	if len(sk.Tags) > 0 {
		fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(sk.Tags, ", "))
	}
	if !sk.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "created_at: %s\n", sk.CreatedAt.Format(time.RFC3339))
	}
	b.WriteString("---\n\n")
	b.WriteString(sk.Content)

	if !strings.HasSuffix(sk.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// ParseMD reads a SKILL.md document.
func ParseMD(content string) (*Skill, error) {
	if !strings.HasPrefix(content, "---\n") {
		return nil, errors.New("missing frontmatter delimiter")
	}

	rest := content[4:]
	frontmatter, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return nil, errors.New("missing closing frontmatter delimiter")
	}

	sk := &Skill{
		Content: strings.TrimSpace(body),
		Version: "0.1.0",
	}

	for line := range strings.SplitSeq(frontmatter, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "name":
			sk.Name = value
		case "description":
			sk.Description = value
		case "version":
			sk.Version = value
		case "tags":
			sk.Tags = parseBracketList(value)
		case "created_at":
			if t, err := time.Parse(time.RFC3339, value); err == nil {
				sk.CreatedAt = t
			}
		}
	}
	return sk, nil
}

func parseBracketList(s string) []string {
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
