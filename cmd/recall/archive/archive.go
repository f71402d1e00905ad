// Package archivecmder provides the archive command for moving expired
// daily logs into monthly archive directories.
package archivecmder

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/archive"
	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/config"
	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/project"
)

const archiveLongDesc string = `Archive expired daily logs.

Moves daily logs older than the retention window into
.claude/memory/archive/YYYY-MM/ directories. The session-end hook
runs this automatically; the command exists for manual cleanup.

Examples:
  recall archive
  recall archive --retention-days 7`

const archiveShortDesc string = "Archive expired daily logs"

func NewArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: archiveShortDesc,
		Long:  archiveLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rootFlag, _ := cmd.Flags().GetString("project-root")
			debug, _ := cmd.Flags().GetBool("debug")
			retention, _ := cmd.Flags().GetInt("retention-days")
			return runArchive(rootFlag, retention, debug)
		},
	}

	cmd.Flags().Int("retention-days", 0, "Override the configured retention window")

	return cmd
}

func runArchive(rootFlag string, retention int, debug bool) error {
	var ctx project.Context
	if rootFlag != "" {
		ctx = project.Context{Root: rootFlag, Cwd: rootFlag}
	} else {
		ctx = project.Resolve("")
	}

	if retention <= 0 {
		cfg, err := config.Load(ctx.Root)
		if err != nil {
			cfg = config.NewDefaultConfig()
		}
		retention = cfg.Memory.RetentionDays
	}

	log := logger.New(logger.WithPretty(true), logger.WithDebug(debug))
	store := dailylog.NewStore(ctx.DailyDir())

	moved, err := archive.New(store, ctx.ArchiveDir(), retention, log).Run(time.Now())
	if err != nil {
		return fmt.Errorf("archiving daily logs: %w", err)
	}

	if moved == 0 {
		fmt.Printf("  %s Nothing to archive (retention %d days)\n", cliui.SuccessMark, retention)
	} else {
		fmt.Printf("  %s Archived %d logs older than %d days\n", cliui.SuccessMark, moved, retention)
	}
	return nil
}
