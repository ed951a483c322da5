package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/secretsanta/internal/assign"
	"github.com/PolarWolf314/secretsanta/internal/audit"
	kerrors "github.com/PolarWolf314/secretsanta/internal/errors"
	logger "github.com/PolarWolf314/secretsanta/internal/logging"
	"github.com/PolarWolf314/secretsanta/internal/notify"
	"github.com/PolarWolf314/secretsanta/internal/participants"
	"github.com/PolarWolf314/secretsanta/internal/utils"
)

// RunOptions configures the run workflow.
type RunOptions struct {
	// CSVPath is the participant file.
	CSVPath string

	// From is the sender address placed on every email. Empty means
	// donotreply@<fqdn>.
	From string

	// Send delivers the emails when true. Otherwise the run is a dry run.
	Send bool

	// Seed drives the shuffle. 0 picks a time-based seed.
	Seed uint64

	// Sender delivers messages when Send is true.
	Sender notify.Sender

	// AuditPath, when set, receives a JSON Lines summary of the run.
	AuditPath string

	// Logger receives diagnostics.
	Logger logger.Logger
}

// RunResult contains the outcome of a run.
type RunResult struct {
	// RunID identifies this run in logs and the audit record.
	RunID string

	// Seed is the shuffle seed actually used.
	Seed uint64

	// Participants is the number of people loaded.
	Participants int

	// Notifications has one entry per processed assignment, in order.
	Notifications []notify.Notification

	// Sent and Failed count delivery outcomes when sending.
	Sent   int
	Failed int

	// DryRun is true when no emails were meant to be sent.
	DryRun bool
}

// Run loads participants, assigns each a Secret Santa and notifies them.
//
// Returns ErrFileNotFound, ErrFileUnreadable, ErrMissingColumn or
// ErrMalformedRow if the CSV cannot be used, and ErrTooFewParticipants for
// fewer than two people. Returns ErrInterrupted, along with the partial
// result, if ctx is cancelled while notifying. Delivery failures for
// individual recipients are counted in the result, not returned.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	log := opts.Logger
	result := &RunResult{
		RunID:  audit.NewRunID(),
		DryRun: !opts.Send,
	}

	log.Infof("Running Secret Santa Picker (run %s)", result.RunID)
	log.Debugf("Options: csv=%s from=%q send=%t seed=%d audit=%q", opts.CSVPath, opts.From, opts.Send, opts.Seed, opts.AuditPath)

	from := opts.From
	if from == "" {
		from = utils.DefaultSender()
		log.Infof("No sender configured, using %s", from)
	} else if !utils.IsValidEmail(from) {
		log.Warnf("Sender address %q does not look like an email address; mail servers may reject it", from)
	}

	log.Infof("Reading CSV file: %s", opts.CSVPath)
	people, err := participants.Load(opts.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("loading participants: %w", err)
	}
	result.Participants = len(people)
	log.Infof("Got %d %s", len(people), utils.Pluralize(len(people), "participant", "participants"))

	engine := assign.New(opts.Seed)
	result.Seed = engine.Seed()
	log.Infof("Shuffling list with seed %d", result.Seed)

	pairs, err := engine.Assign(people)
	if err != nil {
		return nil, fmt.Errorf("assigning secret santas: %w", err)
	}

	log.Infof("Getting Santas!")
	notifier := notify.New(from, opts.Sender, log)
	notifications, notifyErr := notifier.NotifyAll(ctx, pairs, opts.Send)
	result.Notifications = notifications

	for _, n := range notifications {
		switch n.Status {
		case notify.StatusSent:
			result.Sent++
		case notify.StatusFailed:
			result.Failed++
		}
	}

	if opts.AuditPath != "" {
		entry := audit.Entry{
			RunID:        result.RunID,
			Sender:       from,
			Input:        opts.CSVPath,
			Participants: result.Participants,
			DryRun:       result.DryRun,
			Sent:         result.Sent,
			Failed:       result.Failed,
			Interrupted:  notifyErr != nil,
		}
		if err := audit.Log(opts.AuditPath, entry); err != nil {
			log.Warnf("Could not write audit record: %v", err)
		}
	}

	if notifyErr != nil {
		return result, notifyErr
	}
	if result.Failed > 0 {
		log.Warnf("%d of %d %s could not be sent", result.Failed, len(pairs), utils.Pluralize(len(pairs), "email", "emails"))
	}
	log.Infof("Done: %d sent, %d failed, dry run %t", result.Sent, result.Failed, result.DryRun)
	return result, nil
}

// IsInterrupted reports whether err means the user cancelled the run.
func IsInterrupted(err error) bool {
	return errors.Is(err, kerrors.ErrInterrupted) || errors.Is(err, context.Canceled)
}
