package config

const (
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
	defaultColor        = ColorAuto
	defaultOutputFormat = "json"
	defaultConfigPath   = "~/.config/studentcard/config.toml"
	projectConfigName   = "studentcard.toml"

	envLogLevel = "STUDENTCARD_LOG_LEVEL"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Color:  defaultColor,
			Format: defaultOutputFormat,
		},
	}
}
