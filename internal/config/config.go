package config

import "time"

type Config struct {
	Rename  RenameConfig  `yaml:"rename"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

type RenameConfig struct {
	Format    string `yaml:"format"`    // Go time layout, e.g. "20060102-1504"
	Extension string `yaml:"extension"` // without the dot, e.g. "mov"
	Source    string `yaml:"source"`    // "moov", "trak", "mdia", "file"
	FixMTime  bool   `yaml:"fixMTime"`  // stamp the chosen time onto the renamed file
}

type WatchConfig struct {
	Path            string   `yaml:"path"`
	Mode            string   `yaml:"mode"`            // "auto", "poll", "fsnotify"
	PollInterval    Duration `yaml:"pollInterval"`    // e.g. 5s
	DebounceWindow  Duration `yaml:"debounceWindow"`  // e.g. 500ms
	StabilityWindow Duration `yaml:"stabilityWindow"` // e.g. 2s
	Schedule        string   `yaml:"schedule"`        // optional cron spec for full sweeps
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "info", "debug", etc.
	Format string `yaml:"format"` // "json", "text"
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Rename: RenameConfig{
			Format:    "20060102-1504",
			Extension: "mov",
			Source:    "moov",
		},
		Watch: WatchConfig{
			Mode:            "auto",
			PollInterval:    Duration(5 * time.Second),
			DebounceWindow:  Duration(500 * time.Millisecond),
			StabilityWindow: Duration(2 * time.Second),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
