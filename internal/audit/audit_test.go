package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLog_CreatesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "runs.jsonl")

	if err := Log(logPath, Entry{Participants: 4, DryRun: true}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "runs.jsonl")

	for i := 1; i <= 3; i++ {
		if err := Log(logPath, Entry{Participants: i}); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	entries, err := ReadEntries(logPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Participants != i+1 {
			t.Errorf("Entry %d: expected %d participants, got %d", i, i+1, e.Participants)
		}
	}
}

func TestLog_FillsTimestampAndRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "runs.jsonl")

	if err := Log(logPath, Entry{Participants: 2}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	entries, err := ReadEntries(logPath)
	if err != nil || len(entries) != 1 {
		t.Fatalf("ReadEntries: %v, %d entries", err, len(entries))
	}

	if _, err := time.Parse(TimestampFormat, entries[0].Timestamp); err != nil {
		t.Errorf("Timestamp %q does not match format: %v", entries[0].Timestamp, err)
	}
	if _, err := uuid.Parse(entries[0].RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", entries[0].RunID, err)
	}
}

func TestLog_KeepsProvidedRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "runs.jsonl")
	runID := NewRunID()

	if err := Log(logPath, Entry{RunID: runID, Timestamp: "2026-12-01T00:00:00.000000Z"}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	entries, _ := ReadEntries(logPath)
	if entries[0].RunID != runID {
		t.Errorf("Expected run ID %q, got %q", runID, entries[0].RunID)
	}
	if entries[0].Timestamp != "2026-12-01T00:00:00.000000Z" {
		t.Errorf("Timestamp was overwritten: %q", entries[0].Timestamp)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "runs.jsonl")

	if err := Log(logPath, Entry{Participants: 3, DryRun: true}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &raw); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	for _, key := range []string{"sent", "failed", "interrupted"} {
		if _, ok := raw[key]; ok {
			t.Errorf("Expected %q to be omitted, got %v", key, raw[key])
		}
	}
	if raw["dry_run"] != true {
		t.Errorf("Expected dry_run true, got %v", raw["dry_run"])
	}
}

func TestLog_EmptyPath(t *testing.T) {
	if err := Log("", Entry{}); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"run_id":"a","participants":2}
not json
{"run_id":"b","participants":3}

`)
	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].RunID != "a" || entries[1].RunID != "b" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	if entries := ParseEntries(nil); len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestReadEntries_MissingFile(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}
