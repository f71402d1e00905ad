package hookcmder

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/gitinfo"
	"github.com/recallhq/recall/pkg/hookio"
)

const preToolUseShortDesc string = "Inspect tool calls before they run"

func newPreToolUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pre-tool-use [payload]",
		Short: preToolUseShortDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreToolUse(cmd, args)
		},
	}
}

func runPreToolUse(cmd *cobra.Command, args []string) error {
	ctx, cfg, log := setup(cmd)

	payload := hookio.Decode(os.Stdin, args)
	ev, ok := hookio.Classify(payload.ToolInput)
	if ok && ev.Kind == hookio.EventBash && strings.Contains(ev.Command, "push") {
		_ = hookio.BestEffort(log, "push-check", func() error {
			timeout := time.Duration(cfg.Git.TimeoutSeconds) * time.Second
			git := gitinfo.NewClient(ctx.Root, timeout)

			branch := git.CurrentBranch()
			unpushed := git.UnpushedCommits()
			log.Info("push detected", "branch", branch, "unpushed", unpushed)
			if branch == "main" || branch == "master" {
				log.Warn("pushing directly to the default branch", "branch", branch)
			}
			return nil
		})
	}

	return hookio.Respond(os.Stdout, hookio.Response{})
}
