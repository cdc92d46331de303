package config

import "time"

// Debounce windows.
const (
	SaveDebounce     = 2 * time.Second
	GenerateDebounce = 300 * time.Millisecond
)

// Application settings.
const (
	AppName               = "dpt"
	DBFileName            = "dpt.db"
	ConfigFileName        = "config.yaml"
	EnvFileName           = ".env"
	LogFileName           = "dpt.log"
	EnvPrefix             = "DPT"
	MaxPassphraseAttempts = 3
)

// Themes.
const (
	ThemeDefault = "default"
	ThemeDracula = "dracula"
	ThemeMono    = "mono"
)

// Log levels accepted in the config file.
var LogLevels = []string{"debug", "info", "warn", "error"}
