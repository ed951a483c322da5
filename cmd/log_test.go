package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/secretsanta/internal/audit"
)

func TestLogCommand(t *testing.T) {
	t.Run("ListsRecordedRuns", testLogListsRecordedRuns)
	t.Run("AuditPathFromConfig", testLogAuditPathFromConfig)
	t.Run("JSONWithLimit", testLogJSONWithLimit)
	t.Run("NoAuditConfigured", testLogNoAuditConfigured)
	t.Run("NothingRecordedYet", testLogNothingRecordedYet)
	t.Run("InvalidDate", testLogInvalidDate)
}

func testLogListsRecordedRuns(t *testing.T) {
	dir := setupTestEnvironment(t)
	csvPath := fourParticipants(t, dir)
	auditPath := filepath.Join(dir, "runs.jsonl")

	for i := 0; i < 2; i++ {
		output, code := runCLI(t, context.Background(), "run", "--csv", csvPath, "--from", "santa@example.com", "--audit", auditPath)
		if code != 0 {
			t.Fatalf("Run %d failed with exit %d. Output: %s", i, code, output)
		}
		ResetGlobalState()
	}

	output, code := runCLI(t, context.Background(), "log", "--audit", auditPath)
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if got := strings.Count(output, "4 participants"); got != 2 {
		t.Errorf("Expected 2 listed runs, got %d. Output: %s", got, output)
	}
	if !strings.Contains(output, "dry run") || !strings.Contains(output, csvPath) {
		t.Errorf("Expected outcome and input file. Output: %s", output)
	}
	for _, name := range []string{"Alice", "Bob"} {
		if strings.Contains(output, name) {
			t.Errorf("Log must not reveal participants, found %s. Output: %s", name, output)
		}
	}
}

func testLogAuditPathFromConfig(t *testing.T) {
	dir := setupTestEnvironment(t)
	csvPath := fourParticipants(t, dir)
	auditPath := filepath.Join(dir, "runs.jsonl")
	configFile := filepath.Join(dir, "santa.toml")
	content := "[audit]\npath = \"" + filepath.ToSlash(auditPath) + "\"\n"
	if err := os.WriteFile(configFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	output, code := runCLI(t, context.Background(), "--config", configFile, "run", "--csv", csvPath, "--from", "santa@example.com")
	if code != 0 {
		t.Fatalf("Run failed with exit %d. Output: %s", code, output)
	}
	ResetGlobalState()

	output, code = runCLI(t, context.Background(), "--config", configFile, "log")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, "4 participants") {
		t.Errorf("Expected the recorded run. Output: %s", output)
	}
}

func testLogJSONWithLimit(t *testing.T) {
	dir := setupTestEnvironment(t)
	auditPath := filepath.Join(dir, "runs.jsonl")
	for _, n := range []int{3, 4, 5} {
		if err := audit.Log(auditPath, audit.Entry{Participants: n, DryRun: true}); err != nil {
			t.Fatalf("Failed to write audit entry: %v", err)
		}
	}

	output, code := runCLI(t, context.Background(), "log", "--audit", auditPath, "--json", "-n", "2")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}

	var entries []audit.Entry
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, output)
	}
	if len(entries) != 2 || entries[0].Participants != 4 || entries[1].Participants != 5 {
		t.Errorf("Expected the last two runs, got %+v", entries)
	}
}

func testLogNoAuditConfigured(t *testing.T) {
	setupTestEnvironment(t)

	output, code := runCLI(t, context.Background(), "log")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(output, "No audit log configured") {
		t.Errorf("Expected configuration hint. Output: %s", output)
	}
}

func testLogNothingRecordedYet(t *testing.T) {
	dir := setupTestEnvironment(t)

	output, code := runCLI(t, context.Background(), "log", "--audit", filepath.Join(dir, "runs.jsonl"))
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(output, "No runs recorded yet") {
		t.Errorf("Expected empty log message. Output: %s", output)
	}
}

func testLogInvalidDate(t *testing.T) {
	dir := setupTestEnvironment(t)
	auditPath := filepath.Join(dir, "runs.jsonl")
	if err := audit.Log(auditPath, audit.Entry{Participants: 3}); err != nil {
		t.Fatalf("Failed to write audit entry: %v", err)
	}

	output, code := runCLI(t, context.Background(), "log", "--audit", auditPath, "--since", "yesterday")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(output, "invalid date format") {
		t.Errorf("Expected date format error. Output: %s", output)
	}
}
