package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/secretsanta/internal/configs"
	"github.com/PolarWolf314/secretsanta/internal/ui"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Displays the configuration a run would use, after applying the config
file and environment variables.

Examples:
  secretsanta config show
  secretsanta config show --json
  secretsanta --config ./santa.toml config show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		out := cmd.OutOrStdout()

		cfg, src, err := configs.Load(configPath)
		if err != nil {
			fmt.Fprintln(out, formatRunError(err))
			return errReported
		}
		Logger.Debugf("Config source: path=%s found=%t", src.Path, src.FileFound)

		defaultSender := cfg.Sender.From == ""
		cfg.Sender.From = cfg.EffectiveSender()

		if configShowJSON {
			return outputConfigJSON(out, cfg)
		}
		outputConfigText(out, cfg, src, defaultSender)
		return nil
	},
}

func outputConfigJSON(out io.Writer, cfg *configs.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func outputConfigText(out io.Writer, cfg *configs.Config, src *configs.Source, defaultSender bool) {
	fileNote := ui.Muted.Sprint("not found, using defaults")
	if src.FileFound {
		fileNote = ui.Muted.Sprint("loaded")
	}
	fmt.Fprintf(out, "%s %s %s\n\n", ui.Info.Sprint("Configuration"), ui.Path.Sprint(src.Path), fileNote)
	from := ui.Email.Sprint(cfg.Sender.From)
	if defaultSender {
		from += " " + ui.Muted.Sprint("default")
	}
	fmt.Fprintf(out, "  %-12s %s\n", "From:", from)
	fmt.Fprintf(out, "  %-12s %s\n", "CSV:", ui.Path.Sprint(cfg.Input.CSV))
	fmt.Fprintf(out, "  %-12s %s\n", "SMTP:", ui.Path.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port))
	audit := ui.Muted.Sprint("off")
	if cfg.Audit.Path != "" {
		audit = ui.Path.Sprint(cfg.Audit.Path)
	}
	fmt.Fprintf(out, "  %-12s %s\n", "Audit:", audit)
	for _, key := range src.UnknownKeys {
		fmt.Fprintf(out, "%s Unknown key %s is ignored\n", ui.Warning.Sprint("⚠"), ui.Code.Sprint(key))
	}
}
