// Package hookcmder provides the hook subcommands invoked by the host
// runtime on lifecycle events. Hook commands read a JSON payload from
// stdin (or argv), write diagnostics to stderr, and answer the host with
// a JSON object on stdout. They always exit zero: a hook must never be
// the reason a tool call or shutdown fails.
package hookcmder

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/config"
	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/project"
)

const hookLongDesc string = `Lifecycle hooks for the host runtime.

Each subcommand handles one host event and reads the event payload as
JSON on standard input (pre-tool-use also accepts it as a single
argument). Hooks degrade to warnings on every failure and exit zero.

Wire them into the host's hook configuration:
  recall hook session-start
  recall hook post-tool-use
  recall hook pre-tool-use
  recall hook session-end`

const hookShortDesc string = "Host lifecycle hooks"

func NewHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: hookShortDesc,
		Long:  hookLongDesc,
	}

	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newPostToolUseCmd())
	cmd.AddCommand(newPreToolUseCmd())
	cmd.AddCommand(newSessionEndCmd())

	return cmd
}

// setup resolves the per-invocation context, configuration, and logger
// shared by every hook subcommand.
func setup(cmd *cobra.Command) (project.Context, config.Config, *slog.Logger) {
	rootFlag, _ := cmd.Flags().GetString("project-root")
	debug, _ := cmd.Flags().GetBool("debug")

	var ctx project.Context
	if rootFlag != "" {
		ctx = project.Context{Root: rootFlag, Cwd: rootFlag}
	} else {
		ctx = project.Resolve("")
	}

	cfg, err := config.Load(ctx.Root)
	if err != nil {
		cfg = config.NewDefaultConfig()
	}

	log := logger.New(logger.WithPretty(true), logger.WithDebug(debug))

	// Mirror records into hooks.log when the memory store exists, so
	// hook diagnostics survive past the terminal scrollback.
	if _, err := os.Stat(ctx.MemoryDir()); err == nil {
		path := filepath.Join(ctx.MemoryDir(), "hooks.log")
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			fileLog := logger.New(logger.WithJSON(true), logger.WithWriter(f), logger.WithDebug(debug))
			log = logger.Multi(log, fileLog)
		}
	}

	return ctx, cfg, log
}
