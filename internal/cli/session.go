package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/akyairhashvil/DPT/internal/config"
	"github.com/akyairhashvil/DPT/internal/database"
	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/tracker"
	"github.com/akyairhashvil/DPT/internal/util"
)

// Session is everything a command needs to work on records.
type Session struct {
	Config  *config.Config
	DB      *database.Database
	Tracker *tracker.Tracker
	Log     *slog.Logger

	logFile *os.File
}

type sessionKind int

const (
	sessionCLI sessionKind = iota
	// sessionTUI logs to a file because the terminal belongs to the UI.
	sessionTUI
)

func (o *RootOptions) openSession(ctx context.Context, kind sessionKind, stderr io.Writer) (*Session, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}
	if o.DBPath != "" {
		path, err := filepath.Abs(o.DBPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "resolve --db", err)
		}
		cfg.DBFile = path
	}

	level := util.ParseLevel(cfg.LogLevel)
	if o.Verbose {
		level = slog.LevelDebug
	}
	s := &Session{Config: cfg}
	logOut := stderr
	if kind == sessionTUI {
		f, err := util.OpenLogFile(cfg.LogPath())
		if err != nil {
			return nil, WrapExitError(ExitFailure, "open log file", err)
		}
		s.logFile = f
		logOut = f
	}
	s.Log = util.NewLogger(logOut, level)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath()), 0o755); err != nil {
		s.Close()
		return nil, WrapExitError(ExitFailure, "create data dir", err)
	}
	if kind == sessionTUI {
		s.DB, err = database.Default(ctx, cfg.DBPath())
	} else {
		s.DB, err = database.Open(ctx, cfg.DBPath())
	}
	if err != nil {
		s.Close()
		return nil, WrapExitError(ExitFailure, "open database", err)
	}
	s.Log.Debug("session opened", "db", cfg.DBPath(), "config", o.ConfigPath)

	trackerOpts := []tracker.Option{
		tracker.WithLogger(s.Log),
		tracker.WithSaveDelay(cfg.SaveDebounce),
	}
	if o.Now != nil {
		trackerOpts = append(trackerOpts, tracker.WithClock(o.Now))
	}
	s.Tracker = tracker.New(s.DB, trackerOpts...)
	return s, nil
}

// Close flushes pending saves and releases the database and log file.
func (s *Session) Close() {
	if s.Tracker != nil {
		s.Tracker.Close()
	}
	if s.DB != nil {
		util.LogError(s.Log, "close database", s.DB.Close())
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// commandError maps domain errors onto exit codes.
func commandError(msg string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidTitle),
		errors.Is(err, models.ErrInvalidTime),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, tracker.ErrItemNotFound),
		errors.Is(err, database.ErrUnsupportedImport):
		return WrapExitError(ExitCommandError, msg, err)
	default:
		return WrapExitError(ExitFailure, msg, err)
	}
}

// PromptFunc asks the user for a secret.
type PromptFunc func(prompt string) (string, error)

func (o *RootOptions) prompt(stdin io.Reader, stderr io.Writer) PromptFunc {
	if o.Prompt != nil {
		return o.Prompt
	}
	return func(prompt string) (string, error) {
		fmt.Fprint(stderr, prompt)
		defer fmt.Fprintln(stderr)
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			pass, err := term.ReadPassword(int(f.Fd()))
			return strings.TrimSpace(string(pass)), err
		}
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
}
