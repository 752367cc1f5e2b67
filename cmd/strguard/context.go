package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"strguard/internal/config"
	"strguard/internal/logging"
)

type commandContext struct {
	configFlag *string
	formatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	closeLog   func() error
}

func newCommandContext(configFlag, formatFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		formatFlag: formatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// log returns the configured logger, or a no-op logger when config or
// logger setup failed. Logging must never change a command's result.
func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, closeLog, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
		c.closeLog = closeLog
	})
	return c.logger
}

// close releases log files opened by log. It is safe to call when no
// logger was built.
func (c *commandContext) close() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// outputFormat resolves --format over [output] format. explicit reports
// whether the user chose the format with the flag.
func (c *commandContext) outputFormat() (format string, explicit bool) {
	if c.formatFlag != nil {
		if f := strings.ToLower(strings.TrimSpace(*c.formatFlag)); f != "" {
			return f, true
		}
	}
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return "table", false
	}
	return cfg.Output.Format, false
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
