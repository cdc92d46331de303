package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/akyairhashvil/DPT/internal/cli"
	"github.com/akyairhashvil/DPT/internal/tui"
)

func main() {
	// A .env in the working directory may set DPT_* overrides.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], runTUI)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, tuiFn func(context.Context, *cli.Session) error) int {
	return cli.GetExitCode(cli.Execute(ctx, tuiFn, args))
}

func runTUI(ctx context.Context, s *cli.Session) error {
	return tui.Run(ctx, tui.Options{
		Tracker:          s.Tracker,
		Settings:         s.DB,
		Theme:            s.Config.Theme,
		ReportsDir:       s.Config.ReportsDir,
		GenerateDebounce: s.Config.GenerateDebounce,
		Logger:           s.Log,
	})
}
