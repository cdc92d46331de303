package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DBFile != DBFileName {
		t.Fatalf("expected db file %q, got %q", DBFileName, cfg.DBFile)
	}
	if cfg.SaveDebounce != 2*time.Second {
		t.Fatalf("expected 2s save debounce, got %s", cfg.SaveDebounce)
	}
	if cfg.GenerateDebounce != 300*time.Millisecond {
		t.Fatalf("expected 300ms generate debounce, got %s", cfg.GenerateDebounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != ThemeDefault {
		t.Fatalf("expected default theme, got %q", cfg.Theme)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `data_dir: ` + dir + `
db_file: tracker.db
theme: dracula
log_level: debug
save_debounce: 5s
generate_debounce: 1s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath() != filepath.Join(dir, "tracker.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath())
	}
	if cfg.Theme != ThemeDracula || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected theme/level %q/%q", cfg.Theme, cfg.LogLevel)
	}
	if cfg.SaveDebounce != 5*time.Second || cfg.GenerateDebounce != time.Second {
		t.Fatalf("unexpected debounces %s/%s", cfg.SaveDebounce, cfg.GenerateDebounce)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("theme: dracula\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DPT_THEME", "mono")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != ThemeMono {
		t.Fatalf("expected env theme, got %q", cfg.Theme)
	}
}

func TestEnvFileNextToConfig(t *testing.T) {
	const key = "DPT_DB_FILE"
	if _, ok := os.LookupEnv(key); ok {
		t.Skipf("%s already set", key)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=from-env.db\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBFile != "from-env.db" {
		t.Fatalf("expected db file from .env, got %q", cfg.DBFile)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "log_level") {
		t.Fatalf("expected log_level error, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.DataDir = dir
	cfg.Theme = ThemeMono
	cfg.SaveDebounce = 750 * time.Millisecond
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Theme != ThemeMono || loaded.SaveDebounce != 750*time.Millisecond || loaded.DataDir != dir {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandUser("~/dpt"); got != filepath.Join(home, "dpt") {
		t.Fatalf("unexpected expansion %q", got)
	}
	if got := expandUser("/abs"); got != "/abs" {
		t.Fatalf("absolute path changed: %q", got)
	}
}
