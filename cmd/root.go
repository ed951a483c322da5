package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	logger "github.com/PolarWolf314/secretsanta/internal/logging"
	"github.com/PolarWolf314/secretsanta/internal/ui"
	"github.com/PolarWolf314/secretsanta/internal/utils"
	"github.com/PolarWolf314/secretsanta/internal/workflows"
)

const (
	interruptedMessage = "Manually Interrupted."
	unhandledMessage   = "Oops! An unhandled error occurred. Please file a bug."
)

// errReported marks a failure whose message has already been shown to the
// user. It still produces a non-zero exit code.
var errReported = errors.New("error already reported")

var (
	verbose    bool
	debugMode  bool
	logfile    string
	configPath string

	// Logger is the diagnostics handle for the current invocation, built in
	// PersistentPreRunE from the root flags.
	Logger      logger.Logger
	closeLogger = func() error { return nil }

	RootCmd = &cobra.Command{
		Use:   "secretsanta",
		Short: "Secret Santa Picker - draw gift exchange pairs and email everyone",
		Long: `Secret Santa Picker
===================

Reads a list of participants from a CSV file, secretly assigns each person
someone to buy a gift for, and emails everyone their assignment.

Runs are dry runs by default: the emails are composed and shown, not sent.

Usage:
  secretsanta run [flags]
  secretsanta log [flags]

Call a command with -h for more instructions.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogger,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if utils.IsTerminal() {
				printBanner(cmd.OutOrStdout())
			}
			return cmd.Help()
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print logging information")
	RootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "print debug information")
	RootCmd.PersistentFlags().StringVarP(&logfile, "logfile", "l", logger.StdStreams, "file to write logs into")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/secretsanta/config.toml)")

	RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{fmt.Errorf("%w\nRun '%s --help' for usage", err, cmd.CommandPath())}
	})

	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(logCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	l, closeFn, err := logger.Open(logfile, verbose, debugMode)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Error.Sprint("✗")+" Cannot write logs to "+ui.Path.Sprint(logfile)+": "+err.Error())
		return errReported
	}
	Logger = l
	closeLogger = func() error {
		closeLogger = func() error { return nil }
		return closeFn()
	}
	Logger.Debugf("Initializing %s with verbose=%t, debug=%t, logfile=%s", cmd.CommandPath(), verbose, debugMode, logfile)
	return nil
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, figure.NewFigure("Secret Santa", "", true).String())
}

// Execute runs the command tree with ctx and returns the process exit code.
//
// Interrupts print "Manually Interrupted." and exit 0. Errors already shown to
// the user exit 1. Anything else, including panics, is reported as an
// unhandled error with details on the log and exits 1.
func Execute(ctx context.Context) int {
	return execute(ctx, RootCmd)
}

func execute(ctx context.Context, root *cobra.Command) (code int) {
	defer func() {
		if r := recover(); r != nil {
			Logger.Errorf(unhandledMessage)
			Logger.Errorf("%v\n%s", r, debug.Stack())
			code = 1
		}
		_ = closeLogger()
	}()

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case workflows.IsInterrupted(err) || ctx.Err() != nil:
		Logger.Errorf("")
		Logger.Errorf(interruptedMessage)
		return 0
	case errors.Is(err, errReported):
		return 1
	case isUsageError(err):
		fmt.Fprintln(root.ErrOrStderr(), err)
		return 1
	default:
		Logger.Errorf(unhandledMessage)
		Logger.Errorf("%+v", err)
		return 1
	}
}

// usageError wraps flag parsing failures so they are shown verbatim.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// isUsageError reports whether err came from cobra's argument or flag parsing.
func isUsageError(err error) bool {
	var ue *usageError
	if errors.As(err, &ue) {
		return true
	}
	return strings.HasPrefix(err.Error(), "unknown command")
}
