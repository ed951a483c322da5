package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/secretsanta/internal/configs"
	kerrors "github.com/PolarWolf314/secretsanta/internal/errors"
	"github.com/PolarWolf314/secretsanta/internal/notify"
	"github.com/PolarWolf314/secretsanta/internal/ui"
	"github.com/PolarWolf314/secretsanta/internal/utils"
	"github.com/PolarWolf314/secretsanta/internal/workflows"
)

var (
	runFrom     string
	runCSV      string
	runSend     bool
	runSeed     uint64
	runSMTPHost string
	runSMTPPort int
	runAudit    string
)

func init() {
	runCmd.Flags().StringVarP(&runFrom, "from", "f", "", "from email address (default donotreply@<fqdn>)")
	runCmd.Flags().StringVarP(&runCSV, "csv", "c", configs.DefaultCSV, "location of CSV file")
	runCmd.Flags().BoolVarP(&runSend, "send", "s", false, "send out emails")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "shuffle seed, 0 picks one from the clock")
	runCmd.Flags().StringVar(&runSMTPHost, "smtp-host", configs.DefaultSMTPHost, "mail server host")
	runCmd.Flags().IntVar(&runSMTPPort, "smtp-port", configs.DefaultSMTPPort, "mail server port")
	runCmd.Flags().StringVar(&runAudit, "audit", "", "append a summary of the run to this JSON Lines file")
}

// resetRunCommandState resets the run command's global state for testing.
func resetRunCommandState() {
	runFrom = ""
	runCSV = configs.DefaultCSV
	runSend = false
	runSeed = 0
	runSMTPHost = configs.DefaultSMTPHost
	runSMTPPort = configs.DefaultSMTPPort
	runAudit = ""
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pick secret santas and email everyone",
	Long: `Run the picker (dry run by default, will not send out emails).

Reads participants from a CSV file with a header containing "name" and
"email" columns, shuffles them, and makes each person the Secret Santa of
the person before them in the shuffled list. Everyone is then told whom
they are buying for.

Without --send, every email is composed and printed but nothing is sent.

Examples:
  secretsanta run                                   # Dry run with sample.csv
  secretsanta run -c family.csv                     # Dry run with another list
  secretsanta run -c family.csv -f santa@home.org -s   # Send the emails
  secretsanta -v run --seed 2024                    # Reproducible, with logs`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting run command")
	out := cmd.OutOrStdout()

	cfg, src, err := configs.Load(configPath)
	if err != nil {
		fmt.Fprintln(out, formatRunError(err))
		return errReported
	}
	if src.FileFound {
		Logger.Infof("Loaded configuration from %s", src.Path)
	}
	for _, key := range src.UnknownKeys {
		Logger.Warnf("Ignoring unknown configuration key %q in %s", key, src.Path)
	}
	applyRunFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(out, formatRunError(err))
		return errReported
	}

	opts := workflows.RunOptions{
		CSVPath:   cfg.Input.CSV,
		From:      cfg.Sender.From,
		Send:      runSend,
		Seed:      runSeed,
		AuditPath: cfg.Audit.Path,
		Logger:    Logger,
	}
	if runSend {
		opts.Sender = notify.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port)
		Logger.Debugf("Using SMTP server %s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	}

	message := "Picking secret santas..."
	if runSend {
		message = "Sending secret santa emails..."
	}
	spinner, cleanup := startSpinner(out, message)
	defer cleanup()

	result, err := workflows.Run(cmd.Context(), opts)
	if err != nil {
		if workflows.IsInterrupted(err) {
			spinner.FinalMSG = ""
			return err
		}
		spinner.FinalMSG = formatRunError(err)
		if isRunUnexpectedError(err) {
			return err
		}
		return errReported
	}

	spinner.FinalMSG = formatRunSummary(result)
	if result.Failed > 0 && result.Sent == 0 {
		spinner.FinalMSG += "\n" + ui.Info.Sprint("→") + " Check that a mail server is listening on " +
			ui.Path.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	}
	return nil
}

// applyRunFlags overrides configuration with flags given on the command line.
func applyRunFlags(cmd *cobra.Command, cfg *configs.Config) {
	flags := cmd.Flags()
	if flags.Changed("from") {
		cfg.Sender.From = runFrom
	}
	if flags.Changed("csv") {
		cfg.Input.CSV = runCSV
	}
	if flags.Changed("smtp-host") {
		cfg.SMTP.Host = runSMTPHost
	}
	if flags.Changed("smtp-port") {
		cfg.SMTP.Port = runSMTPPort
	}
	if flags.Changed("audit") {
		cfg.Audit.Path = runAudit
	}
}

// formatRunSummary renders the outcome of every notification followed by totals.
func formatRunSummary(result *workflows.RunResult) string {
	var b strings.Builder

	for _, n := range result.Notifications {
		switch n.Status {
		case notify.StatusDryRun:
			writeDryRunMessage(&b, n.Message)
		case notify.StatusSent:
			fmt.Fprintf(&b, "%s Sent to %s %s\n", ui.Success.Sprint("✓"), ui.Name.Sprint(n.Message.ToName), ui.Email.Sprint(n.Message.To))
		case notify.StatusFailed:
			fmt.Fprintf(&b, "%s Could not send to %s %s\n", ui.Error.Sprint("✗"), ui.Name.Sprint(n.Message.ToName), ui.Email.Sprint(n.Message.To))
		}
	}

	people := utils.Pluralize(result.Participants, "participant", "participants")
	if result.DryRun {
		fmt.Fprintf(&b, "%s Composed %d emails for %d %s %s\n",
			ui.Warning.Sprint("[dry-run]"), len(result.Notifications), result.Participants, people, ui.Muted.Sprint("nothing was sent"))
		b.WriteString(ui.Info.Sprint("→") + " Run with " + ui.Flag.Sprint("--send") + " to email everyone")
		return b.String()
	}

	mark := ui.Success.Sprint("✓")
	if result.Failed > 0 {
		mark = ui.Warning.Sprint("⚠")
	}
	fmt.Fprintf(&b, "%s %d sent, %d failed for %d %s", mark, result.Sent, result.Failed, result.Participants, people)
	return b.String()
}

var dryRunRule = strings.Repeat("*", 52)

func writeDryRunMessage(w io.Writer, msg notify.Message) {
	fmt.Fprintln(w, dryRunRule)
	fmt.Fprint(w, msg.String())
	fmt.Fprintln(w, dryRunRule)
	fmt.Fprintln(w)
}

// formatRunError formats a run error for display to the user.
func formatRunError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrFileNotFound):
		return ui.Error.Sprint("✗") + " Participant file not found: " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Pass the list with " + ui.Code.Sprint("secretsanta run --csv people.csv")

	case errors.Is(err, kerrors.ErrFileUnreadable):
		return ui.Error.Sprint("✗") + " Could not read participant file: " + err.Error()

	case errors.Is(err, kerrors.ErrMissingColumn):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " The first row must be a header with " + ui.Code.Sprint("name") + " and " + ui.Code.Sprint("email") + " columns"

	case errors.Is(err, kerrors.ErrMalformedRow):
		return ui.Error.Sprint("✗") + " Malformed participant file: " + err.Error()

	case errors.Is(err, kerrors.ErrTooFewParticipants):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Nobody can be their own Secret Santa; add more people to the list"

	case errors.Is(err, kerrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " " + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Run failed: " + err.Error()
	}
}

// isRunUnexpectedError returns true if the error is unexpected and should be
// reported as an unhandled error.
func isRunUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, kerrors.ErrFileNotFound),
		errors.Is(err, kerrors.ErrFileUnreadable),
		errors.Is(err, kerrors.ErrMissingColumn),
		errors.Is(err, kerrors.ErrMalformedRow),
		errors.Is(err, kerrors.ErrTooFewParticipants),
		errors.Is(err, kerrors.ErrInvalidConfig):
		return false
	default:
		return true
	}
}
