package skillcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/skill"
)

const packageLongDesc string = `Package a skill into a zip archive.

Validates the skill first, then zips its contents under a <name>/
prefix into <name>.zip. Validation errors abort packaging.

Examples:
  recall skill package ./pdf-tools
  recall skill package ./pdf-tools --out ./dist`

const packageShortDesc string = "Package a skill into a zip archive"

func newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package <dir>",
		Short: packageShortDesc,
		Long:  packageLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return runPackage(args[0], out)
		},
	}

	cmd.Flags().String("out", ".", "Output directory for the zip archive")

	return cmd
}

func runPackage(dir, out string) error {
	path, err := skill.Package(dir, out)
	if err != nil {
		return fmt.Errorf("packaging skill: %w", err)
	}

	fmt.Printf("  %s Packaged skill to %s\n", cliui.SuccessMark, cliui.ValueStyle.Render(path))
	return nil
}
