package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/DPT/internal/config"
)

// NewConfigCommand manages the config file.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:           "init",
		Short:         "Write a config file with the default settings",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rootOpts.ConfigPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s already exists (use --force to overwrite)", path))
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return WrapExitError(ExitFailure, "stat config", err)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return WrapExitError(ExitFailure, "write config", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:           "show",
		Short:         "Print the effective configuration",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rootOpts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}
			return rootOpts.formatter(cmd).Success(cfg, func(w io.Writer) {
				fmt.Fprintf(w, "data_dir: %s\ndb_file: %s\nreports_dir: %s\ntheme: %s\nlog_level: %s\nsave_debounce: %s\ngenerate_debounce: %s\n",
					cfg.DataDir, cfg.DBFile, cfg.ReportsDir, cfg.Theme, cfg.LogLevel, cfg.SaveDebounce, cfg.GenerateDebounce)
			})
		},
	})
	return cmd
}
