package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"strguard/internal/config"
	"strguard/internal/testsupport"
	"strguard/internal/textutil"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	base := testsupport.IsolateEnv(t)
	tempHome := filepath.Join(base, "home")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "strguard", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Output.Format != "table" {
		t.Fatalf("unexpected output format: %q", cfg.Output.Format)
	}
	if cfg.LengthUnit() != textutil.UnitUTF16 {
		t.Fatalf("unexpected length unit: %v", cfg.LengthUnit())
	}
	if cfg.Logging.Development {
		t.Fatal("expected development logging off by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "strguard.toml")

	type payload struct {
		Output struct {
			Format string `toml:"format"`
		} `toml:"output"`
		Length struct {
			Unit string `toml:"unit"`
		} `toml:"length"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Output.Format = " JSON "
	custom.Length.Unit = "runes"
	custom.Logging.Level = "debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected normalized json format, got %q", cfg.Output.Format)
	}
	if cfg.LengthUnit() != textutil.UnitRunes {
		t.Fatalf("expected runes unit, got %v", cfg.LengthUnit())
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestEnvLogLevelFillsEmptyLevel(t *testing.T) {
	testsupport.IsolateEnv(t)
	t.Setenv("STRGUARD_LOG_LEVEL", "WARN")

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing file")
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env level warn, got %q", cfg.Logging.Level)
	}
}

func TestFileLogLevelBeatsEnv(t *testing.T) {
	t.Setenv("STRGUARD_LOG_LEVEL", "debug")
	configPath := filepath.Join(t.TempDir(), "strguard.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nlevel = \"error\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("expected file level error, got %q", cfg.Logging.Level)
	}
}

func TestLoggingFileIsExpanded(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(t.TempDir(), "strguard.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nfile = \"~/logs/strguard.log\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(tempHome, "logs", "strguard.log")
	if cfg.Logging.File != want {
		t.Fatalf("logging.file = %q, want %q", cfg.Logging.File, want)
	}
}

func TestLoadExplicitMissingPathFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "typo.toml")

	_, _, _, err := config.Load(missing)
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("error %q does not name the path", err)
	}
}

func TestLoadExplicitDirectoryFails(t *testing.T) {
	if _, _, _, err := config.Load(t.TempDir()); err == nil {
		t.Fatal("expected error for directory config path")
	}
}

func TestLoadDevelopmentLogging(t *testing.T) {
	path := testsupport.WriteConfigText(t, t.TempDir(), "[logging]\ndevelopment = true\n")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Logging.Development {
		t.Fatal("expected logging.development to be true")
	}
}

func TestLoadRoundTripsWrittenConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithOutputFormat("plain"), testsupport.WithLengthUnit("bytes"))
	path := testsupport.WriteConfig(t, t.TempDir(), cfg)

	loaded, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected written config to exist")
	}
	if loaded.Output.Format != "plain" || loaded.LengthUnit() != textutil.UnitBytes {
		t.Fatalf("unexpected loaded config: %+v", loaded)
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Output.Format != "table" {
		t.Fatalf("unexpected sample output format: %q", cfg.Output.Format)
	}
	if cfg.LengthUnit() != textutil.UnitUTF16 {
		t.Fatalf("unexpected sample length unit: %v", cfg.LengthUnit())
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"output format", "[output]\nformat = \"xml\"\n", "output.format"},
		{"length unit", "[length]\nunit = \"words\"\n", "length.unit"},
		{"logging format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"logging level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"unknown key", "[output]\ncolour = true\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "strguard.toml")
			if err := os.WriteFile(configPath, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(configPath)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
