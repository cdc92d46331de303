package config

import (
	"path/filepath"
	"time"
)

// Config is the user configuration read from config.yaml.
type Config struct {
	// Directory holding the database and the log file.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// Database file name, relative to DataDir unless absolute.
	DBFile string `yaml:"db_file" mapstructure:"db_file"`

	// Where PDF reports are written.
	ReportsDir string `yaml:"reports_dir" mapstructure:"reports_dir"`

	Theme    string `yaml:"theme" mapstructure:"theme"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// Quiet period before a journal edit is saved.
	SaveDebounce time.Duration `yaml:"save_debounce" mapstructure:"save_debounce"`

	// Delay between landing on a day and generating its overdue tasks.
	GenerateDebounce time.Duration `yaml:"generate_debounce" mapstructure:"generate_debounce"`
}

// DBPath returns the absolute location of the database.
func (c *Config) DBPath() string {
	if filepath.IsAbs(c.DBFile) {
		return c.DBFile
	}
	return filepath.Join(c.DataDir, c.DBFile)
}

// LogPath returns the TUI log file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, LogFileName)
}
