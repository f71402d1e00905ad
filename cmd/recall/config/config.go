// Package configcmder provides the config command for managing persistent
// recall configuration stored in the .claude/ directory.
package configcmder

import (
	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/project"
)

const configLongDesc string = `Manage persistent recall configuration.

Configuration is stored as recall.toml in the project's .claude/
directory. Environment variables with the RECALL_ prefix take
precedence over the config file.

Keys use dotted notation matching the TOML section structure:
  memory.retention_days, memory.max_doc_bytes, memory.snippet_length,
  git.timeout_seconds

Use subcommands to get, set, or list configuration values:
  recall config set <key> <value>    Set a configuration value
  recall config get <key>            Get a configuration value
  recall config list                 List all configuration values

Examples:
  recall config set memory.retention_days 30
  recall config get memory.snippet_length
  recall config list`

const configShortDesc string = "Manage persistent recall configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func resolveRoot(cmd *cobra.Command) string {
	rootFlag, _ := cmd.Flags().GetString("project-root")
	if rootFlag != "" {
		return rootFlag
	}
	return project.Resolve("").Root
}
