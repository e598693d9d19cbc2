package config

const (
	defaultLogDir             = "~/.local/share/reclaim/logs"
	defaultLogLevel           = "info"
	defaultLogFormat          = "auto"
	defaultCachePath          = "~/.cache/reclaim/fingerprints.db"
	defaultPlaceholder        = "Unknown"
	defaultMaxComponentLength = 200
	defaultSplitMaxBytes      = int64(1) << 30 // 1 GiB
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Dir:    defaultLogDir,
		},
		Organize: Organize{
			Placeholder:        defaultPlaceholder,
			MaxComponentLength: defaultMaxComponentLength,
		},
		Cache: Cache{
			Enabled: false,
			Path:    defaultCachePath,
		},
		Tools: Tools{
			FFprobe: "ffprobe",
		},
		Split: Split{
			MaxBytes: defaultSplitMaxBytes,
		},
	}
}
