package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/secretsanta/internal/configs"
	kerrors "github.com/PolarWolf314/secretsanta/internal/errors"
	"github.com/PolarWolf314/secretsanta/internal/ui"
)

var (
	configInitFrom  string
	configInitCSV   string
	configInitForce bool
)

func init() {
	configInitCmd.Flags().StringVarP(&configInitFrom, "from", "f", "", "sender address to store (default donotreply@<fqdn>)")
	configInitCmd.Flags().StringVarP(&configInitCSV, "csv", "c", "", "participant file to store (default sample.csv)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitFrom = ""
	configInitCSV = ""
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Writes a config file holding the current defaults, plus any values
given with --from and --csv.

Examples:
  secretsanta config init
  secretsanta config init --from santa@example.com --csv family.csv
  secretsanta --config ./santa.toml config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		out := cmd.OutOrStdout()

		path := configPath
		if path == "" {
			p, err := configs.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}

		cfg := configs.Defaults()
		if configInitFrom != "" {
			cfg.Sender.From = configInitFrom
		}
		if configInitCSV != "" {
			cfg.Input.CSV = configInitCSV
		}

		Logger.Debugf("Writing config to %s", path)
		if err := configs.Save(path, cfg, configInitForce); err != nil {
			if errors.Is(err, kerrors.ErrConfigExists) {
				fmt.Fprintln(out, ui.Error.Sprint("✗")+" Config file already exists at "+ui.Path.Sprint(path)+"\n"+
					ui.Info.Sprint("→")+" Use "+ui.Flag.Sprint("--force")+" to overwrite it")
				return errReported
			}
			return err
		}

		fmt.Fprintln(out, ui.Success.Sprint("✓")+" Wrote config to "+ui.Path.Sprint(path))
		return nil
	},
}
