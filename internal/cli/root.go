// Package cli wires the dpt command tree. Every command opens its own
// session (config, database, tracker) and closes it before returning.
package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/DPT/internal/models"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	DBPath     string

	// Prompt reads a passphrase; nil means the controlling terminal.
	Prompt PromptFunc
	// Now replaces the wall clock.
	Now func() time.Time
	// RunTUI starts the interactive day view.
	RunTUI func(ctx context.Context, s *Session) error
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the dpt command tree. RunTUI is called when no
// subcommand is given.
func NewRootCommand(runTUI func(ctx context.Context, s *Session) error) *cobra.Command {
	return newRootCommand(&RootOptions{RunTUI: runTUI})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dpt",
		Short: "DPT - Daily Progress Tracker",
		Long: `Plan each day as goals, priorities and overdue tasks, keep a journal,
and let unfinished work carry forward automatically.

Run without a subcommand to open the interactive day view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.RunTUI == nil {
				return cmd.Help()
			}
			s, err := opts.openSession(cmd.Context(), sessionTUI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()
			return opts.RunTUI(cmd.Context(), s)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/dpt/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "database file (overrides db_file)")

	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewOverdueCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewDBCommand(opts))

	return cmd
}

// Execute runs the command tree against ctx and returns the first error.
func Execute(ctx context.Context, runTUI func(ctx context.Context, s *Session) error, args []string) error {
	cmd := NewRootCommand(runTUI)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func (o *RootOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// dateArg resolves a --date flag, defaulting to today.
func (o *RootOptions) dateArg(raw string) (string, error) {
	if raw == "" {
		return models.FormatDate(o.now()), nil
	}
	if err := models.ValidateDate(raw); err != nil {
		return "", WrapExitError(ExitCommandError, "invalid --date", err)
	}
	return raw, nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
