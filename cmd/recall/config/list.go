package configcmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/config"
)

const listLongDesc string = `List all configuration values.

Displays all configuration keys and their current values, including
defaults for keys the config file does not set.

Examples:
  recall config list`

const listShortDesc string = "List all configuration values"

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: listShortDesc,
		Long:  listLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(resolveRoot(cmd))
		},
	}

	return cmd
}

func runList(root string) error {
	path := config.Path(root)
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Using config file: %s\n\n", path)
	} else {
		fmt.Print("No config file found. Using default config.\n\n")
	}

	keys := config.ValidConfigKeys()

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range keys {
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}

	for _, key := range keys {
		value, err := config.Get(root, key)
		if err != nil {
			return err
		}
		fmt.Printf("%-*s = %d\n", maxLen, key, value)
	}

	return nil
}
