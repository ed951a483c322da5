package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage secretsanta configuration",
	Long: `Provides commands for inspecting and creating the configuration file.

Settings are resolved in this order, later ones winning:
  built-in defaults, the config file, SECRETSANTA_* environment variables
  (also read from a .env file), then command-line flags.

Examples:
  # Show the effective configuration
  secretsanta config show

  # Write a starter config file
  secretsanta config init --from santa@example.com --csv family.csv`,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}
