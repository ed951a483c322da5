package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/secretsanta/internal/audit"
	"github.com/PolarWolf314/secretsanta/internal/configs"
	kerrors "github.com/PolarWolf314/secretsanta/internal/errors"
	"github.com/PolarWolf314/secretsanta/internal/ui"
	"github.com/PolarWolf314/secretsanta/internal/workflows"
)

var (
	logAudit   string
	logLimit   int
	logReverse bool
	logSince   string
	logUntil   string
	logJSON    bool
)

func init() {
	logCmd.Flags().StringVar(&logAudit, "audit", "", "audit log to read (default from config or SECRETSANTA_AUDIT)")
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logAudit = ""
	logLimit = 0
	logReverse = false
	logSince = ""
	logUntil = ""
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List past runs",
	Long: `Displays the runs recorded with --audit (or the audit path in the config).

Only counts are recorded, never who was paired with whom.

Examples:
  secretsanta log --audit runs.jsonl          # View every run
  secretsanta log -n 5                        # Last 5 runs
  secretsanta log --reverse                   # Most recent first
  secretsanta log --since 2026-12-01          # Filter by date
  secretsanta log --json                      # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")
	out := cmd.OutOrStdout()

	cfg, _, err := configs.Load(configPath)
	if err != nil {
		fmt.Fprintln(out, formatRunError(err))
		return errReported
	}
	if cmd.Flags().Changed("audit") {
		cfg.Audit.Path = logAudit
	}

	result, err := workflows.Log(cmd.Context(), workflows.LogOptions{
		Path:    cfg.Audit.Path,
		Limit:   logLimit,
		Reverse: logReverse,
		Since:   logSince,
		Until:   logUntil,
	})
	if err != nil {
		fmt.Fprintln(out, formatLogError(err))
		if isLogUnexpectedError(err) {
			return err
		}
		if errors.Is(err, kerrors.ErrAuditLogNotFound) {
			return nil
		}
		return errReported
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Fprintln(out, "No runs recorded.")
		} else {
			fmt.Fprintln(out, "No runs found matching the filters.")
		}
		return nil
	}

	if logJSON {
		return outputLogJSON(out, result.Entries)
	}
	outputLogDefault(out, result.Entries)
	return nil
}

// formatLogError formats a log error for display to the user.
func formatLogError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNoAuditLog):
		return ui.Error.Sprint("✗") + " No audit log configured\n" +
			ui.Info.Sprint("→") + " Pass " + ui.Flag.Sprint("--audit") + " or set " + ui.Code.Sprint("[audit] path") + " in the config"

	case errors.Is(err, kerrors.ErrAuditLogNotFound):
		return ui.Info.Sprint("ℹ") + " No runs recorded yet. Runs are logged with " + ui.Code.Sprint("secretsanta run --audit <file>")

	case errors.Is(err, kerrors.ErrInvalidDateFormat):
		return ui.Error.Sprint("✗") + " " + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to read audit log: " + err.Error()
	}
}

// isLogUnexpectedError returns true if the error is unexpected and should be
// reported as an unhandled error.
func isLogUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, kerrors.ErrNoAuditLog),
		errors.Is(err, kerrors.ErrAuditLogNotFound),
		errors.Is(err, kerrors.ErrInvalidDateFormat):
		return false
	default:
		return true
	}
}

func outputLogJSON(out io.Writer, entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func outputLogDefault(out io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		runID := e.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		fmt.Fprintf(out, "%-19s  %-8s  %-16s  %-24s  %s\n",
			workflows.FormatDateTime(e.Timestamp), runID, workflows.FormatParticipants(e), workflows.FormatOutcome(e), e.Input)
	}
}
