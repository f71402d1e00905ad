// Package initcmder provides the init command for setting up the
// .claude/ memory structure in a project.
package initcmder

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/bootstrap"
	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/config"
	"github.com/recallhq/recall/pkg/project"
)

const initLongDesc string = `Initialize session memory for the current project.

Creates the .claude/memory/ directory structure, the long-lived
MEMORY.md document, today's daily log, and a recall.toml config file
with defaults. Safe to re-run: existing files are left untouched.

The hooks create all of this on demand, so running init is optional.
It is useful for inspecting the structure before wiring up hooks.

Examples:
  recall init
  recall init --project-root /path/to/project`

const initShortDesc string = "Initialize session memory for a project"

func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: initShortDesc,
		Long:  initLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rootFlag, _ := cmd.Flags().GetString("project-root")
			return runInit(rootFlag)
		},
	}

	return cmd
}

func runInit(rootFlag string) error {
	var ctx project.Context
	if rootFlag != "" {
		ctx = project.Context{Root: rootFlag, Cwd: rootFlag}
	} else {
		ctx = project.Resolve("")
	}

	now := time.Now()
	fmt.Printf("\n  %s %s\n\n",
		cliui.KeyStyle.Render("Project root:"),
		cliui.ValueStyle.Render(ctx.Root),
	)

	if err := cliui.Step(os.Stdout, "Creating memory directories", func() error {
		return bootstrap.EnsureStructure(ctx)
	}); err != nil {
		return fmt.Errorf("creating memory structure: %w", err)
	}

	if err := cliui.Step(os.Stdout, "Writing MEMORY.md", func() error {
		_, err := bootstrap.EnsureMemoryDoc(ctx, now)
		return err
	}); err != nil {
		return fmt.Errorf("writing memory document: %w", err)
	}

	if err := cliui.Step(os.Stdout, "Creating today's daily log", func() error {
		_, err := bootstrap.EnsureDailyLog(ctx, now)
		return err
	}); err != nil {
		return fmt.Errorf("creating daily log: %w", err)
	}

	if err := cliui.Step(os.Stdout, "Writing default config", func() error {
		if _, err := os.Stat(config.Path(ctx.Root)); err == nil {
			return nil
		}
		return config.Save(ctx.Root, config.NewDefaultConfig())
	}); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("\n  %s Memory initialized under %s\n\n",
		cliui.SuccessMark,
		cliui.DimStyle.Render(ctx.Rel(ctx.MemoryDir())),
	)
	return nil
}
