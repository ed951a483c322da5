package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/secretsanta/internal/configs"
)

func TestConfigCommand(t *testing.T) {
	t.Run("ShowDefaults", testConfigShowDefaults)
	t.Run("ShowJSON", testConfigShowJSON)
	t.Run("ShowUnknownKeys", testConfigShowUnknownKeys)
	t.Run("ShowInvalidFile", testConfigShowInvalidFile)
	t.Run("InitWritesFile", testConfigInitWritesFile)
	t.Run("InitRefusesOverwrite", testConfigInitRefusesOverwrite)
	t.Run("InitForceOverwrites", testConfigInitForceOverwrites)
	t.Run("InitDefaultLocation", testConfigInitDefaultLocation)
}

func testConfigShowDefaults(t *testing.T) {
	dir := setupTestEnvironment(t)
	configFile := filepath.Join(dir, "santa.toml")

	output, code := runCLI(t, context.Background(), "--config", configFile, "config", "show")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	for _, want := range []string{"not found, using defaults", "sample.csv", "localhost:25", "donotreply@", "(default)"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q. Output: %s", want, output)
		}
	}
}

func testConfigShowJSON(t *testing.T) {
	dir := setupTestEnvironment(t)
	configFile := filepath.Join(dir, "santa.toml")
	t.Setenv("SECRETSANTA_SMTP_PORT", "2525")

	output, code := runCLI(t, context.Background(), "--config", configFile, "config", "show", "--json")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}

	var cfg configs.Config
	if err := json.Unmarshal([]byte(output), &cfg); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, output)
	}
	if cfg.SMTP.Port != 2525 {
		t.Errorf("Expected port from environment, got %d", cfg.SMTP.Port)
	}
	if cfg.Input.CSV != configs.DefaultCSV {
		t.Errorf("Expected default CSV, got %q", cfg.Input.CSV)
	}
}

func testConfigShowUnknownKeys(t *testing.T) {
	dir := setupTestEnvironment(t)
	configFile := filepath.Join(dir, "santa.toml")
	if err := os.WriteFile(configFile, []byte("[sender]\nfrom = \"a@x.com\"\nreply_to = \"b@x.com\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	output, code := runCLI(t, context.Background(), "--config", configFile, "config", "show")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, "sender.reply_to") {
		t.Errorf("Expected unknown key warning. Output: %s", output)
	}
	if !strings.Contains(output, "a@x.com") {
		t.Errorf("Expected sender from file. Output: %s", output)
	}
}

func testConfigShowInvalidFile(t *testing.T) {
	dir := setupTestEnvironment(t)
	configFile := filepath.Join(dir, "santa.toml")
	if err := os.WriteFile(configFile, []byte("[smtp]\nport = \"twenty-five\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	output, code := runCLI(t, context.Background(), "--config", configFile, "config", "show")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, "configuration is invalid") {
		t.Errorf("Expected invalid config message. Output: %s", output)
	}
}

func testConfigInitWritesFile(t *testing.T) {
	dir := setupTestEnvironment(t)
	configFile := filepath.Join(dir, "nested", "santa.toml")

	output, code := runCLI(t, context.Background(), "--config", configFile, "config", "init", "-f", "santa@example.com", "-c", "family.csv")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, "Wrote config to") {
		t.Errorf("Expected success message. Output: %s", output)
	}

	cfg, src, err := configs.Load(configFile)
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}
	if !src.FileFound {
		t.Errorf("Expected config file to exist")
	}
	if cfg.Sender.From != "santa@example.com" || cfg.Input.CSV != "family.csv" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func testConfigInitRefusesOverwrite(t *testing.T) {
	dir := setupTestEnvironment(t)
	configFile := filepath.Join(dir, "santa.toml")
	original := "[sender]\nfrom = \"keep@example.com\"\n"
	if err := os.WriteFile(configFile, []byte(original), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	output, code := runCLI(t, context.Background(), "--config", configFile, "config", "init")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(output, "already exists") || !strings.Contains(output, "--force") {
		t.Errorf("Expected overwrite hint. Output: %s", output)
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if string(data) != original {
		t.Errorf("Config file was modified: %s", data)
	}
}

func testConfigInitForceOverwrites(t *testing.T) {
	dir := setupTestEnvironment(t)
	configFile := filepath.Join(dir, "santa.toml")
	if err := os.WriteFile(configFile, []byte("[sender]\nfrom = \"old@example.com\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	output, code := runCLI(t, context.Background(), "--config", configFile, "config", "init", "--force", "-f", "new@example.com")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}

	cfg, _, err := configs.Load(configFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Sender.From != "new@example.com" {
		t.Errorf("Expected overwritten sender, got %q", cfg.Sender.From)
	}
}

func testConfigInitDefaultLocation(t *testing.T) {
	dir := setupTestEnvironment(t)

	output, code := runCLI(t, context.Background(), "config", "init")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}

	path, err := configs.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("Expected default path under the test home %s, got %s", dir, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected config file at %s: %v", path, err)
	}
}
