package configcmder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/config"
)

const setLongDesc string = `Set a configuration value.

Sets the given key to the provided value in the recall.toml file
stored in the .claude/ directory. All values are integers.

Valid keys:
  memory.retention_days, memory.max_doc_bytes, memory.snippet_length,
  git.timeout_seconds

Examples:
  recall config set memory.retention_days 30
  recall config set memory.max_doc_bytes 102400`

const setShortDesc string = "Set a configuration value"

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: setShortDesc,
		Long:  setLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(resolveRoot(cmd), args[0], args[1])
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

func runSet(root, key, raw string) error {
	if !config.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key: %q\n\nValid keys: %s",
			key, strings.Join(config.ValidConfigKeys(), ", "))
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("value for %s must be an integer, got %q", key, raw)
	}

	if err := config.Set(root, key, value); err != nil {
		return err
	}

	fmt.Printf("  %s Set %s = %s\n",
		cliui.SuccessMark,
		cliui.KeyStyle.Render(key),
		cliui.ValueStyle.Render(raw),
	)
	return nil
}
