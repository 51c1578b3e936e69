package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"debug lowercase", "debug", slog.LevelDebug},
		{"debug uppercase", "DEBUG", slog.LevelDebug},
		{"info lowercase", "info", slog.LevelInfo},
		{"warn mixed", "Warn", slog.LevelWarn},
		{"error lowercase", "error", slog.LevelError},
		{"empty string", "", slog.LevelInfo},
		{"invalid value", "trace", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetupDefaultIsSilent(t *testing.T) {
	var stderr bytes.Buffer
	logger, cleanup, err := Setup(Options{Level: slog.LevelDebug, Stderr: &stderr})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer cleanup()

	logger.Error("should not appear")
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestSetupVerbose(t *testing.T) {
	var stderr bytes.Buffer
	logger, cleanup, err := Setup(Options{Verbose: true, Stderr: &stderr})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer cleanup()

	logger.Debug("compiling", "bytes", 42)

	out := stderr.String()
	if !strings.Contains(out, "compiling") || !strings.Contains(out, "bytes=42") {
		t.Errorf("stderr = %q, want debug record", out)
	}
	if !strings.Contains(out, "run_id=") {
		t.Errorf("stderr = %q, want run_id attribute", out)
	}
}

func TestSetupFileAndVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "compile-mjml.log")
	var stderr bytes.Buffer

	logger, cleanup, err := Setup(Options{Level: slog.LevelInfo, File: path, Verbose: true, Stderr: &stderr})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	logger.Debug("debug only on stderr")
	logger.Info("in both")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log file has %d records, want 1: %q", len(lines), data)
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("log record is not JSON: %v", err)
	}
	if record["msg"] != "in both" {
		t.Errorf("msg = %v, want %q", record["msg"], "in both")
	}
	if id, _ := record["run_id"].(string); id == "" {
		t.Error("run_id missing from file record")
	}

	if !strings.Contains(stderr.String(), "debug only on stderr") || !strings.Contains(stderr.String(), "in both") {
		t.Errorf("stderr = %q, want both records", stderr.String())
	}
}
