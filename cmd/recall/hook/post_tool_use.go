package hookcmder

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/activity"
	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/hookio"
	"github.com/recallhq/recall/pkg/quality"
)

const postToolUseShortDesc string = "Log tool activity to the daily log"

func newPostToolUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post-tool-use",
		Short: postToolUseShortDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPostToolUse(cmd)
		},
	}
}

func runPostToolUse(cmd *cobra.Command) error {
	ctx, cfg, log := setup(cmd)

	payload := hookio.Decode(os.Stdin, nil)
	ev, ok := hookio.Classify(payload.ToolInput)
	if !ok {
		return hookio.Respond(os.Stdout, hookio.Response{})
	}

	_ = hookio.BestEffort(log, "activity-log", func() error {
		store := dailylog.NewStore(ctx.DailyDir())
		return activity.NewLogger(ctx, store, cfg.Memory.SnippetLength).Record(ev, time.Now())
	})

	_ = hookio.BestEffort(log, "quality-check", func() error {
		warnDebugStatements(log, ev)
		return nil
	})

	return hookio.Respond(os.Stdout, hookio.Response{})
}

// warnDebugStatements surfaces leftover debugging statements in edited
// JS/TS content. Advisory only.
func warnDebugStatements(log *slog.Logger, ev hookio.ToolEvent) {
	var content string
	switch ev.Kind {
	case hookio.EventEdit:
		content = ev.NewText
	case hookio.EventWrite:
		content = ev.Content
	default:
		return
	}

	findings := quality.CheckDebugStatements(ev.Path, content)
	if len(findings) == 0 {
		return
	}

	log.Warn("debugging statements found", "file", filepath.Base(ev.Path))
	for i, f := range findings {
		if i == quality.MaxReported {
			log.Warn("additional findings omitted", "count", len(findings)-quality.MaxReported)
			break
		}
		log.Warn("debug statement", "line", f.Line, "kind", f.Kind)
	}
}
