// Package workflows provides high-level orchestration for secretsanta commands.
//
// Workflows coordinate the participants, assign, notify and audit packages to
// implement a complete user-facing feature, independent of CLI concerns like
// flag parsing, spinners and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// # Available Workflows
//
//   - Run: loads participants, draws the assignments and notifies everyone
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package so the CLI
// layer can choose a message with errors.Is():
//
//	result, err := workflows.Run(ctx, opts)
//	if errors.Is(err, kerrors.ErrTooFewParticipants) {
//	    // Ask for a longer list
//	}
//
// Per-recipient transport failures are not errors at this level; they are
// counted in the result.
package workflows
