package skillcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/skill"
)

const initLongDesc string = `Scaffold a new skill directory.

Creates <name>/ with a SKILL.md manifest, example script, reference
document, and the standard scripts/, references/, and assets/
subdirectories. Fails when the directory already exists.

Names must start with a letter and contain only lowercase letters,
digits, and hyphens.

Examples:
  recall skill init pdf-tools
  recall skill init data-viz --parent ./skills`

const initShortDesc string = "Scaffold a new skill directory"

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: initShortDesc,
		Long:  initLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, _ := cmd.Flags().GetString("parent")
			return runInit(args[0], parent)
		},
	}

	cmd.Flags().String("parent", ".", "Parent directory for the new skill")

	return cmd
}

func runInit(name, parent string) error {
	if problems := skill.CheckName(name); len(problems) > 0 {
		return fmt.Errorf("invalid skill name %q: %s", name, strings.Join(problems, "; "))
	}

	dir, err := skill.Scaffold(name, parent)
	if err != nil {
		return fmt.Errorf("scaffolding skill: %w", err)
	}

	fmt.Printf("  %s Created skill at %s\n", cliui.SuccessMark, cliui.ValueStyle.Render(dir))
	fmt.Printf("  %s\n", cliui.DimStyle.Render("Edit SKILL.md to describe what the skill does and when to use it."))
	return nil
}
