// Package memorycmder provides commands for inspecting the long-lived
// project memory document.
package memorycmder

import (
	"github.com/spf13/cobra"
)

const memoryLongDesc string = `Inspect the long-lived project memory.

MEMORY.md accumulates high-confidence learnings across sessions. Use
subcommands to render or locate it:
  recall memory show    Render MEMORY.md in the terminal
  recall memory path    Print the path to MEMORY.md`

const memoryShortDesc string = "Inspect project memory"

func NewMemoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: memoryShortDesc,
		Long:  memoryLongDesc,
	}

	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newPathCmd())

	return cmd
}
