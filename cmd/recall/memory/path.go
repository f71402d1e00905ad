package memorycmder

import (
	"fmt"

	"github.com/spf13/cobra"
)

const pathShortDesc string = "Print the path to MEMORY.md"

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: pathShortDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rootFlag, _ := cmd.Flags().GetString("project-root")
			fmt.Println(resolve(rootFlag).MemoryFile())
			return nil
		},
	}
}
