package configcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/config"
)

const getLongDesc string = `Get a configuration value.

Reads the value for the given key, falling back to the built-in
default when no config file sets it. Keys use dotted notation
matching the TOML section structure.

Examples:
  recall config get memory.retention_days
  recall config get git.timeout_seconds`

const getShortDesc string = "Get a configuration value"

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: getShortDesc,
		Long:  getLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(resolveRoot(cmd), args[0])
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidConfigKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runGet(root, key string) error {
	if !config.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key: %q\n\nValid keys: %s",
			key, strings.Join(config.ValidConfigKeys(), ", "))
	}

	value, err := config.Get(root, key)
	if err != nil {
		return err
	}

	fmt.Printf("  %s  %s\n",
		cliui.KeyStyle.Render(key),
		cliui.ValueStyle.Render(fmt.Sprintf("%d", value)),
	)
	return nil
}
