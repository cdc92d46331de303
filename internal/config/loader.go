package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/DPT/internal/util"
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		DataDir:          util.DataDir(AppName),
		DBFile:           DBFileName,
		ReportsDir:       util.ReportsDir(AppName),
		Theme:            ThemeDefault,
		LogLevel:         "info",
		SaveDebounce:     SaveDebounce,
		GenerateDebounce: GenerateDebounce,
	}
}

// DefaultPath returns the config file location under the XDG config dir.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads the configuration at path, or DefaultPath when path is empty.
// Sources apply in order: defaults, a .env file next to the config, the
// YAML file, then DPT_* environment variables. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := godotenv.Load(filepath.Join(filepath.Dir(path), EnvFileName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read env file: %w", err)
	}

	defaults := DefaultConfig()
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("db_file", defaults.DBFile)
	v.SetDefault("reports_dir", defaults.ReportsDir)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("save_debounce", defaults.SaveDebounce)
	v.SetDefault("generate_debounce", defaults.GenerateDebounce)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.DataDir = expandUser(cfg.DataDir)
	cfg.ReportsDir = expandUser(cfg.ReportsDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("config: data_dir is empty")
	}
	if strings.TrimSpace(c.DBFile) == "" {
		return errors.New("config: db_file is empty")
	}
	if c.SaveDebounce <= 0 || c.GenerateDebounce <= 0 {
		return errors.New("config: debounce durations must be positive")
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	header := "# " + AppName + " configuration\n"
	return os.WriteFile(path, append([]byte(header), data...), 0o644)
}

func expandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
