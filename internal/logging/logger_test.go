package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"strguard/internal/config"
	"strguard/internal/logging"
)

func TestConsoleLoggerFormatsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.With("op", "similarity").WithGroup("guard").Debug("guard evaluated", "kind", "degenerate", "value", 1.0)

	line := buf.String()
	for _, want := range []string{"DEBUG guard evaluated", "op=similarity", "guard.kind=degenerate", "guard.value=1"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
}

func TestConsoleLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "reason", "two words")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, `WARN shown reason="two words"`) {
		t.Fatalf("unexpected warn line: %q", out)
	}
}

func TestJSONLoggerKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("loaded", "path", "/tmp/strguard.toml")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["level"] != "info" {
		t.Fatalf("level = %v, want info", payload["level"])
	}
	if payload["msg"] != "loaded" {
		t.Fatalf("msg = %v, want loaded", payload["msg"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatal("expected ts key")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "strguard.log")
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.File = logPath

	logger, closeLog, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("file line")
	if err := closeLog(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	logger.Info("after close")
	if err := closeLog(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "INFO file line") {
		t.Fatalf("unexpected log file contents: %q", data)
	}
	if strings.Contains(string(data), "after close") {
		t.Fatalf("log file written after close: %q", data)
	}
}

func TestDevelopmentAddsSource(t *testing.T) {
	var plain, dev bytes.Buffer
	plainLogger, _, err := logging.New(logging.Options{Format: "console", Writer: &plain})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	devLogger, _, err := logging.New(logging.Options{Format: "console", Writer: &dev, Development: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	plainLogger.Info("ready")
	devLogger.Info("ready")

	if strings.Contains(plain.String(), "logger_test.go:") {
		t.Fatalf("unexpected source in %q", plain.String())
	}
	if !strings.Contains(dev.String(), "logger_test.go:") {
		t.Fatalf("expected source in %q", dev.String())
	}
}

func TestNewFromConfigPassesDevelopment(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "strguard.log")
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.File = logPath
	cfg.Logging.Development = true

	logger, closeLog, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("with source")
	if err := closeLog(); err != nil {
		t.Fatalf("close log: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "logger_test.go:") {
		t.Fatalf("expected source location in %q", data)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(t.Context(), 0) {
		t.Fatal("expected no-op logger to be disabled")
	}
	logger.Error("ignored")
}
