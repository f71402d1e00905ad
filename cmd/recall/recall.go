// Package recallcmder
package recallcmder

import (
	"github.com/spf13/cobra"

	archivecmder "github.com/recallhq/recall/cmd/recall/archive"
	configcmder "github.com/recallhq/recall/cmd/recall/config"
	hookcmder "github.com/recallhq/recall/cmd/recall/hook"
	initcmder "github.com/recallhq/recall/cmd/recall/init"
	memorycmder "github.com/recallhq/recall/cmd/recall/memory"
	ooxmlcmder "github.com/recallhq/recall/cmd/recall/ooxml"
	skillcmder "github.com/recallhq/recall/cmd/recall/skill"
	statuscmder "github.com/recallhq/recall/cmd/recall/status"
	versioncmder "github.com/recallhq/recall/cmd/recall/version"
)

const recallLongDesc string = `Recall maintains project-local session memory for AI coding agents.

Hook commands are wired into the host runtime's lifecycle events:
  recall hook session-start    Initialize memory, inject session context
  recall hook post-tool-use    Log tool activity to the daily log
  recall hook pre-tool-use     Pre-flight checks (git push review)
  recall hook session-end      Summarize, extract learnings, archive

Everything else is invoked directly:
  recall status                Show today's memory state
  recall memory show           Render the long-lived memory document
  recall archive               Archive expired daily logs
  recall skill ...             Scaffold, validate, and package skills
  recall ooxml ...             Pack, unpack, and validate OOXML files`

const recallShortDesc string = "Recall - Session memory for coding agents"

func NewRecallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: recallShortDesc,
		Long:  recallLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("project-root", "", "Override project root discovery")

	// Add subcommands
	cmd.AddCommand(hookcmder.NewHookCmd())
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(statuscmder.NewStatusCmd())
	cmd.AddCommand(memorycmder.NewMemoryCmd())
	cmd.AddCommand(archivecmder.NewArchiveCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(skillcmder.NewSkillCmd())
	cmd.AddCommand(ooxmlcmder.NewOoxmlCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
