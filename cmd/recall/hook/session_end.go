package hookcmder

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/archive"
	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/hookio"
	"github.com/recallhq/recall/pkg/learnings"
	"github.com/recallhq/recall/pkg/memorydoc"
	"github.com/recallhq/recall/pkg/sessionindex"
	"github.com/recallhq/recall/pkg/summarize"
)

const sessionEndShortDesc string = "Summarize the session and propagate learnings"

func newSessionEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session-end",
		Short: sessionEndShortDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSessionEnd(cmd)
		},
	}
}

func runSessionEnd(cmd *cobra.Command) error {
	ctx, cfg, log := setup(cmd)
	now := time.Now()

	payload := hookio.Decode(os.Stdin, nil)

	_ = hookio.BestEffort(log, "session-breadcrumb", func() error {
		return sessionindex.WriteBreadcrumb(ctx.SessionsDir(), sessionID(payload), sessionindex.Breadcrumb{
			EndedAt:     now.Format(time.RFC3339),
			ProjectRoot: ctx.Root,
			Cwd:         ctx.Cwd,
		})
	})

	store := dailylog.NewStore(ctx.DailyDir())
	today := now.Format("2006-01-02")

	// The summarizer appends the "Session ended" marker; skim the log
	// first so learnings extract exactly once per session.
	doc, err := store.Load(today)
	if err != nil {
		log.Warn("reading daily log", "error", err)
	}
	alreadyEnded := doc != nil && doc.HasSessionEnd()

	_ = hookio.BestEffort(log, "session-summary", func() error {
		archiver := archive.New(store, ctx.ArchiveDir(), cfg.Memory.RetentionDays, log)
		index := sessionindex.NewStore(ctx.IndexFile())
		return summarize.New(ctx, store, index, archiver, log).Run(now)
	})

	if doc != nil && !alreadyEnded {
		records := learnings.Extract(doc, now)

		_ = hookio.BestEffort(log, "learnings", func() error {
			if len(records) == 0 {
				return nil
			}
			log.Info("learnings extracted", "count", len(records))
			return learnings.NewStore(ctx.LearningsFile()).Append(records, now)
		})

		_ = hookio.BestEffort(log, "propagate", func() error {
			return propagate(ctx.MemoryFile(), records, cfg.Memory.MaxDocBytes, now, log)
		})
	}

	return hookio.Respond(os.Stdout, hookio.Response{})
}

// propagate promotes high-confidence learnings into MEMORY.md and keeps
// the document under its size cap. The document is only rewritten when
// something changed, so an idle session leaves it byte-identical.
func propagate(path string, records []learnings.Record, maxBytes int, now time.Time, log *slog.Logger) error {
	memDoc, err := memorydoc.Load(path)
	if err != nil || memDoc == nil {
		return err
	}

	promoted := memDoc.Propagate(records, now)
	evicted := memDoc.CapSize(maxBytes)
	if promoted == 0 && evicted == 0 {
		return nil
	}

	memDoc.Touch(now)
	log.Info("memory updated", "promoted", promoted, "evicted", evicted)
	return memorydoc.Save(path, memDoc)
}

// sessionID picks the breadcrumb identifier: payload session id first,
// then the host environment, then a fresh UUID.
func sessionID(p hookio.Payload) string {
	if p.SessionID != "" {
		return p.SessionID
	}
	if id := os.Getenv("CLAUDE_SESSION_ID"); id != "" {
		return id
	}
	return uuid.NewString()
}
