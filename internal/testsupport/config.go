// Package testsupport holds helpers shared by strguard tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"strguard/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig returns repository defaults with logging pinned to info so
// tests do not depend on STRGUARD_LOG_LEVEL.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.Level = "info"
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithOutputFormat sets [output] format.
func WithOutputFormat(format string) ConfigOption {
	return func(c *config.Config) {
		c.Output.Format = format
	}
}

// WithLengthUnit sets [length] unit.
func WithLengthUnit(unit string) ConfigOption {
	return func(c *config.Config) {
		c.Length.Unit = unit
	}
}

// WriteConfig encodes cfg as TOML under dir and returns the file path.
func WriteConfig(t testing.TB, dir string, cfg *config.Config) string {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	return WriteConfigText(t, dir, string(data))
}

// WriteConfigText writes raw TOML under dir and returns the file path. The
// file is not named strguard.toml so it never shadows project lookup.
func WriteConfigText(t testing.TB, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "custom.toml")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
