package skillcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/skill"
)

const validateLongDesc string = `Validate a skill directory.

Checks that SKILL.md exists and parses, the name follows naming rules
and matches the directory, and the description is filled in. Warnings
do not fail the command; errors do.

Examples:
  recall skill validate ./pdf-tools`

const validateShortDesc string = "Validate a skill directory"

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir>",
		Short: validateShortDesc,
		Long:  validateLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(dir string) error {
	issues, err := skill.Validate(dir)
	if err != nil {
		return fmt.Errorf("validating skill: %w", err)
	}

	for _, issue := range issues {
		mark := cliui.WarnMark
		if issue.Severity == "error" {
			mark = cliui.FailMark
		}
		fmt.Printf("  %s %s\n", mark, issue.Message)
	}

	if skill.Errors(issues) {
		return fmt.Errorf("skill %s failed validation", dir)
	}

	fmt.Printf("  %s Skill is valid\n", cliui.SuccessMark)
	return nil
}
