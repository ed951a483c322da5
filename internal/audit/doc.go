// Package audit keeps an optional record of secretsanta runs.
//
// When run is given --audit PATH, one JSON object per run is appended to PATH:
//
//	{"ts":"2026-12-01T18:04:05.000000Z","run_id":"...","sender":"santa@example.com",
//	 "input":"people.csv","participants":6,"dry_run":false,"sent":6}
//
// Entries hold counts only. The pairing itself is never written anywhere, so
// the record cannot spoil the surprise or be used to avoid repeats.
//
// # Failure Handling
//
// Log returns an error, but callers treat auditing as best-effort: a failed
// write is reported as a warning and the run still succeeds.
package audit
