package util

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where the record database lives.
func DataDir(app string) string {
	return xdgDir("XDG_DATA_HOME", app, ".local", "share")
}

// ConfigDir follows XDG_CONFIG_HOME, falling back to ~/.config/<app>.
func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", app, ".config")
}

// ReportsDir is the default output directory for PDF day reports.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

func xdgDir(env, app string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return filepath.Join(base, app)
	}
	home := homeDir()
	if home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(append(append([]string{home}, fallback...), app)...)
}

func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home := homeDir()
	if home == "" {
		return "."
	}
	if f, err := os.Open(filepath.Join(ConfigDir(""), "user-dirs.dirs")); err == nil {
		defer f.Close()
		if dir := userDirFrom(bufio.NewScanner(f), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// userDirFrom reads KEY="value" lines in the user-dirs.dirs format.
func userDirFrom(sc *bufio.Scanner, key string) string {
	for sc.Scan() {
		name, value, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok || name != key {
			continue
		}
		return strings.Trim(value, `"`)
	}
	return ""
}

func parseUserDir(data, key string) string {
	return userDirFrom(bufio.NewScanner(strings.NewReader(data)), key)
}

func expandHome(path string) string {
	home := homeDir()
	switch {
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	case strings.Contains(path, "$HOME"):
		return strings.ReplaceAll(path, "$HOME", home)
	}
	return path
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
