package hookcmder

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/bootstrap"
	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/digest"
	"github.com/recallhq/recall/pkg/hookio"
)

const sessionStartShortDesc string = "Initialize memory and inject session context"

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session-start",
		Short: sessionStartShortDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSessionStart(cmd)
		},
	}
}

func runSessionStart(cmd *cobra.Command) error {
	ctx, _, log := setup(cmd)
	now := time.Now()

	var context string

	_ = hookio.BestEffort(log, "session-start", func() error {
		if err := bootstrap.EnsureStructure(ctx); err != nil {
			return err
		}

		if created, err := bootstrap.EnsureMemoryDoc(ctx, now); err != nil {
			return err
		} else if created {
			log.Info("project memory initialized")
		}

		logCreated, err := bootstrap.EnsureDailyLog(ctx, now)
		if err != nil {
			return err
		}

		store := dailylog.NewStore(ctx.DailyDir())
		if logCreated {
			log.Info("daily log created", "date", now.Format("2006-01-02"))
		} else {
			// The template opens with its own "Session started" entry;
			// only later sessions on the same day append another.
			if err := store.Append(now, dailylog.Entry{
				Time: now.Format("15:04:05"),
				Kind: dailylog.KindSessionStart,
			}); err != nil {
				return err
			}
		}

		in := digest.Collect(ctx, store, now)
		content, written, err := digest.Write(ctx, in)
		if err != nil {
			return err
		}
		if written {
			log.Info("memory context loaded", "rule", ".claude/rules/memory-context.md")
			context = content
		}
		return nil
	})

	return hookio.Respond(os.Stdout, hookio.Response{AdditionalContext: context})
}
