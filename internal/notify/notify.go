package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/secretsanta/internal/assign"
	kerrors "github.com/PolarWolf314/secretsanta/internal/errors"
	logger "github.com/PolarWolf314/secretsanta/internal/logging"
)

// Sender delivers a composed message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Status describes what happened to one notification.
type Status string

const (
	StatusDryRun Status = "dry-run"
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// Notification is the outcome of notifying one Secret Santa.
type Notification struct {
	Assignment assign.Assignment
	Message    Message
	Status     Status
	// Err holds the transport error when Status is StatusFailed.
	Err error
}

// Notifier formats and optionally sends one message per assignment.
type Notifier struct {
	from   string
	sender Sender
	log    logger.Logger
}

// New returns a Notifier sending as from through sender. sender may be nil
// when every call is a dry run.
func New(from string, sender Sender, log logger.Logger) *Notifier {
	return &Notifier{from: from, sender: sender, log: log}
}

// Notify composes the message for a and, when send is true, makes exactly one
// delivery attempt. Transport failures are logged as warnings and recorded on
// the returned Notification rather than returned.
func (n *Notifier) Notify(ctx context.Context, a assign.Assignment, send bool) Notification {
	n.log.Infof("%s is Secret Santa of %s", a.Giver.Name, a.Recipient.Name)

	msg := Compose(n.from, a)
	n.log.Infof("Composed email:\n%s", msg)

	result := Notification{Assignment: a, Message: msg, Status: StatusDryRun}
	if !send {
		n.log.Infof("Not sending email, send flag not enabled")
		return result
	}

	if n.sender == nil {
		result.Status = StatusFailed
		result.Err = fmt.Errorf("%w: no mail transport configured", kerrors.ErrSendFailed)
		n.log.Warnf("Failed to send email to %s: %v", msg.To, result.Err)
		return result
	}

	n.log.Infof("Sending out mail to %s", msg.To)
	if err := n.sender.Send(ctx, msg); err != nil {
		result.Status = StatusFailed
		result.Err = err
		switch {
		case errors.Is(err, kerrors.ErrTransportUnavailable):
			n.log.Warnf("Your system cannot send out emails: %v", err)
		case ctx.Err() != nil:
			n.log.Debugf("Send to %s cancelled: %v", msg.To, err)
		default:
			n.log.Warnf("Failed to send email to %s: %v", msg.To, err)
		}
		return result
	}

	result.Status = StatusSent
	n.log.Infof("Sent email to %s", msg.To)
	return result
}

// NotifyAll notifies every assignment in order, one at a time. A failed send
// does not stop the batch. If ctx is cancelled the notifications made so far
// are returned together with ErrInterrupted.
func (n *Notifier) NotifyAll(ctx context.Context, pairs []assign.Assignment, send bool) ([]Notification, error) {
	results := make([]Notification, 0, len(pairs))
	for i, a := range pairs {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("%w: after %d of %d notifications", kerrors.ErrInterrupted, i, len(pairs))
		}

		n.log.Debugf("Notification %d of %d", i+1, len(pairs))
		result := n.Notify(ctx, a, send)
		if result.Err != nil && ctx.Err() != nil {
			return results, fmt.Errorf("%w: after %d of %d notifications", kerrors.ErrInterrupted, i, len(pairs))
		}
		results = append(results, result)
	}
	return results, nil
}
