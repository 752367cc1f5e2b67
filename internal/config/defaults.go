package config

const (
	defaultOutputFormat = "table"
	defaultLengthUnit   = "utf16"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultConfigPath   = "~/.config/strguard/config.toml"
	projectConfigName   = "strguard.toml"
	logLevelEnv         = "STRGUARD_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults. Logging.Level
// is left empty so normalization can apply the environment fallback.
func Default() Config {
	return Config{
		Output: Output{
			Format: defaultOutputFormat,
		},
		Length: Length{
			Unit: defaultLengthUnit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
		},
	}
}
