package config

import (
	"fmt"

	"strguard/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLength(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json", "plain":
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q (want table, json, or plain)", c.Output.Format)
	}
}

func (c *Config) validateLength() error {
	if _, err := textutil.ParseLengthUnit(c.Length.Unit); err != nil {
		return fmt.Errorf("length.unit: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

// LengthUnit returns the configured counting unit. Validate has already
// rejected unknown values, so parse errors fall back to utf16.
func (c *Config) LengthUnit() textutil.LengthUnit {
	unit, _ := textutil.ParseLengthUnit(c.Length.Unit)
	return unit
}
