package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const skillTemplate = `---
name: %s
description: TODO - Describe what this skill does and when it should be used. Use third-person (e.g., "This skill should be used when...").
version: 0.1.0
---

# %s

TODO - Brief description of the skill's purpose (2-3 sentences).

## Overview

TODO - Explain what this skill provides and the problems it solves.

## When to Use This Skill

This skill should be used when:
- TODO - First trigger condition
- TODO - Second trigger condition

## Workflow

TODO - Describe the step-by-step process for using this skill.

## Scripts

The following scripts are available in the ` + "`scripts/`" + ` directory:

- ` + "`example.sh`" + ` - TODO - Describe what this script does

## References

The following reference materials are available in the ` + "`references/`" + ` directory:

- ` + "`example.md`" + ` - TODO - Describe this reference document
`

const exampleScript = `#!/bin/sh
# Example script for the %s skill.
# TODO - Replace this with actual functionality.
echo "not implemented"
`

const exampleReference = `# Reference for %s

TODO - Add reference material the skill's instructions can point to.
`

// subdirs are the standard skill directory layout.
var subdirs = []string{"scripts", "references", "assets"}

// Scaffold creates <parent>/<name>/ with a SKILL.md template and the
// standard subdirectories. Fails when the skill directory already exists
// or the name breaks naming rules.
func Scaffold(name, parent string) (string, error) {
	if issues := CheckName(name); len(issues) > 0 {
		return "", fmt.Errorf("invalid skill name %q: %s", name, strings.Join(issues, "; "))
	}

	dir := filepath.Join(parent, name)
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("skill directory already exists: %s", dir)
	}

	for _, sub := range subdirs {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return "", fmt.Errorf("creating skill directory: %w", err)
		}
	}

	files := map[string]string{
		filepath.Join(dir, "SKILL.md"):                 fmt.Sprintf(skillTemplate, name, titleCase(name)),
		filepath.Join(dir, "scripts", "example.sh"):    fmt.Sprintf(exampleScript, name),
		filepath.Join(dir, "references", "example.md"): fmt.Sprintf(exampleReference, name),
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", filepath.Base(path), err)
		}
	}

	return dir, nil
}

// titleCase turns a kebab-case name into a spaced title.
func titleCase(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
