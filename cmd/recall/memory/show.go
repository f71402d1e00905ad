package memorycmder

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/project"
)

const showShortDesc string = "Render MEMORY.md in the terminal"

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: showShortDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rootFlag, _ := cmd.Flags().GetString("project-root")
			raw, _ := cmd.Flags().GetBool("raw")
			return runShow(rootFlag, raw)
		},
	}

	cmd.Flags().Bool("raw", false, "Print raw markdown without rendering")

	return cmd
}

func runShow(rootFlag string, raw bool) error {
	ctx := resolve(rootFlag)

	data, err := os.ReadFile(ctx.MemoryFile())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no memory document at %s, run `recall init` first", ctx.Rel(ctx.MemoryFile()))
		}
		return fmt.Errorf("reading memory document: %w", err)
	}

	if raw {
		fmt.Print(string(data))
		return nil
	}

	rendered, err := cliui.RenderMarkdown(string(data))
	if err != nil {
		fmt.Print(string(data))
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func resolve(rootFlag string) project.Context {
	if rootFlag != "" {
		return project.Context{Root: rootFlag, Cwd: rootFlag}
	}
	return project.Resolve("")
}
