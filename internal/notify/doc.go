// Package notify tells each Secret Santa whom they are buying for.
//
// Compose turns an assignment into a plain-text Message addressed to the giver.
// A Notifier logs every message and, when sending is enabled, hands it to a
// Sender. SMTPSender is the production Sender: one unauthenticated, plaintext
// connection to the configured server per message.
//
// # Failure Handling
//
// Each recipient gets at most one delivery attempt. A refused connection
// (ErrTransportUnavailable) or any other send failure (ErrSendFailed) is
// logged as a warning and recorded on the Notification, and the batch moves
// on to the next recipient. Only cancellation stops NotifyAll early.
//
// # Dry Run
//
// With sending disabled no Sender is called and no network I/O happens; the
// composed Message is still returned so it can be shown to the user.
package notify
