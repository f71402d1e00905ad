// Package statuscmder provides the status command showing the current
// state of a project's session memory.
package statuscmder

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/learnings"
	"github.com/recallhq/recall/pkg/memorydoc"
	"github.com/recallhq/recall/pkg/project"
	"github.com/recallhq/recall/pkg/sessionindex"
)

const statusLongDesc string = `Show the current state of session memory.

Reports whether memory is initialized, the size of the long-lived
memory document, today's activity, stored learnings, and recorded
sessions.

Examples:
  recall status`

const statusShortDesc string = "Show session memory state"

func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: statusShortDesc,
		Long:  statusLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rootFlag, _ := cmd.Flags().GetString("project-root")
			return runStatus(rootFlag)
		},
	}

	return cmd
}

func runStatus(rootFlag string) error {
	var ctx project.Context
	if rootFlag != "" {
		ctx = project.Context{Root: rootFlag, Cwd: rootFlag}
	} else {
		ctx = project.Resolve("")
	}

	fmt.Printf("\n  %s\n\n", cliui.TitleStyle.Render("Session Memory"))
	printRow("Project root", ctx.Root)

	if _, err := os.Stat(ctx.MemoryDir()); err != nil {
		fmt.Printf("\n  %s Memory not initialized. Run `recall init` or wire up hooks.\n\n", cliui.WarnMark)
		return nil
	}

	doc, err := memorydoc.Load(ctx.MemoryFile())
	if err != nil {
		return fmt.Errorf("reading memory document: %w", err)
	}
	if doc != nil {
		printRow("MEMORY.md", fmt.Sprintf("%d bytes", doc.Size()))
	} else {
		printRow("MEMORY.md", "missing")
	}

	printToday(ctx)

	lf := learnings.NewStore(ctx.LearningsFile()).Load()
	printRow("Learnings", fmt.Sprintf("%d stored", len(lf.Learnings)))

	idx := sessionindex.NewStore(ctx.IndexFile()).Load()
	sessions := 0
	for _, day := range idx.Sessions {
		sessions += len(day)
	}
	printRow("Sessions", fmt.Sprintf("%d across %d days", sessions, len(idx.Sessions)))
	if idx.LastUpdated != "" {
		printRow("Last updated", idx.LastUpdated)
	}

	fmt.Println()
	return nil
}

func printToday(ctx project.Context) {
	store := dailylog.NewStore(ctx.DailyDir())
	today := time.Now().Format("2006-01-02")

	doc, err := store.Load(today)
	if err != nil || doc == nil {
		printRow("Today", "no daily log")
		return
	}

	activities := doc.Activities()
	printRow("Today", fmt.Sprintf("%d activities", len(activities)))

	if todos := doc.OpenTODOs(); len(todos) > 0 {
		printRow("Open TODOs", fmt.Sprintf("%d", len(todos)))
	}
	if doc.HasSessionEnd() {
		printRow("Session", "ended")
	} else {
		printRow("Session", "in progress")
	}
}

func printRow(key, value string) {
	fmt.Printf("  %s  %s\n",
		cliui.KeyStyle.Render(fmt.Sprintf("%-14s", key)),
		cliui.ValueStyle.Render(value),
	)
}
