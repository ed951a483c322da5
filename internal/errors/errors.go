package errors

import "errors"

// Input errors indicate the participant list could not be loaded or used.
var (
	// ErrFileNotFound indicates the participant CSV file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileUnreadable indicates the participant CSV file exists but could not be read.
	ErrFileUnreadable = errors.New("file could not be read")

	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("required column missing from header")

	// ErrMalformedRow indicates a CSV row does not carry the required fields.
	ErrMalformedRow = errors.New("malformed row")

	// ErrTooFewParticipants indicates fewer than two participants were supplied.
	ErrTooFewParticipants = errors.New("at least two participants are required")
)

// Transport errors indicate a single notification could not be delivered.
// They are recovered per recipient and never abort a run.
var (
	// ErrTransportUnavailable indicates the mail transport refused the connection.
	ErrTransportUnavailable = errors.New("mail transport unavailable")

	// ErrSendFailed indicates the mail transport accepted the connection but the send failed.
	ErrSendFailed = errors.New("failed to send email")
)

// Control errors indicate the run was stopped before completion.
var (
	// ErrInterrupted indicates the user cancelled the run.
	ErrInterrupted = errors.New("manually interrupted")
)

// Configuration errors indicate problems with settings from file, environment or flags.
var (
	// ErrInvalidConfig indicates the configuration file or environment is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrConfigExists indicates a configuration file is already present.
	ErrConfigExists = errors.New("configuration file already exists")
)

// Audit log errors.
var (
	// ErrNoAuditLog indicates no audit log path was configured.
	ErrNoAuditLog = errors.New("no audit log configured")

	// ErrAuditLogNotFound indicates the configured audit log does not exist yet.
	ErrAuditLogNotFound = errors.New("audit log not found")

	// ErrInvalidDateFormat indicates a date filter is not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
