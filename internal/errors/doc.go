// Package errors provides typed error values for the secretsanta application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Input errors: the participant list is missing, unreadable or unusable
//     (ErrFileNotFound, ErrMissingColumn, ErrTooFewParticipants)
//   - Transport errors: a single email could not be delivered
//     (ErrTransportUnavailable, ErrSendFailed)
//   - Control errors: the run was stopped by the user (ErrInterrupted)
//   - Configuration errors: settings are malformed (ErrInvalidConfig)
//
// Only transport errors are recovered locally, one recipient at a time.
// Everything else surfaces to the command layer, which reports it and ends
// the run.
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading %s: %w", path, errors.ErrFileNotFound)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Run(ctx, opts)
//	if errors.Is(err, kerrors.ErrFileNotFound) {
//	    // Show user-friendly message
//	}
package errors
