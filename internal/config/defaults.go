package config

const (
	defaultOutputDir  = "~/.local/share/karasync/output"
	defaultLogDir     = "~/.local/share/karasync/logs"
	defaultHistoryDir = "~/.local/share/karasync/history"
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"

	defaultMinLineDuration       = 1.2
	defaultGlobalOffsetThreshold = 2.0
	defaultWindowMargin          = 1.0
	defaultMinTokenLength        = 3
	defaultLineGap               = 5.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:  defaultOutputDir,
			LogDir:     defaultLogDir,
			HistoryDir: defaultHistoryDir,
		},
		Timing: Timing{
			MinLineDuration:       defaultMinLineDuration,
			GlobalOffsetThreshold: defaultGlobalOffsetThreshold,
			WindowMargin:          defaultWindowMargin,
			MinTokenLength:        defaultMinTokenLength,
			DefaultLineGap:        defaultLineGap,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
