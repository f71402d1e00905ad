// Package skillcmder provides commands for scaffolding, validating,
// and packaging agent skills.
package skillcmder

import (
	"github.com/spf13/cobra"
)

const skillLongDesc string = `Scaffold, validate, and package agent skills.

A skill is a directory with a SKILL.md manifest (YAML-ish frontmatter
plus markdown instructions) and optional scripts/, references/, and
assets/ subdirectories.

Subcommands:
  recall skill init <name>        Scaffold a new skill directory
  recall skill validate <dir>     Check a skill's structure and manifest
  recall skill package <dir>      Zip a skill for distribution

Examples:
  recall skill init pdf-tools
  recall skill validate ./pdf-tools
  recall skill package ./pdf-tools --out ./dist`

const skillShortDesc string = "Scaffold, validate, and package skills"

func NewSkillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: skillShortDesc,
		Long:  skillLongDesc,
	}

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newPackageCmd())

	return cmd
}
