package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/DPT/internal/config"
	"github.com/akyairhashvil/DPT/internal/database"
	"github.com/akyairhashvil/DPT/internal/util"
)

// NewExportCommand writes one day or every record as JSON.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		date    string
		all     bool
		out     string
		encrypt bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a day or a full backup as JSON",
		Long: `Export a single day (default today) or, with --all, every record.

With --encrypt the document is sealed with a passphrase (AES-GCM, scrypt
key derivation). The passphrase is read from the terminal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := database.ExportOptions{EncryptOutput: encrypt}
			if encrypt {
				pass, err := rootOpts.newPassphrase(cmd)
				if err != nil {
					return err
				}
				opts.Passphrase = pass
			}
			s, err := rootOpts.openSession(cmd.Context(), sessionCLI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			var data []byte
			if all {
				data, err = s.DB.ExportBackup(cmd.Context(), opts)
			} else {
				day, derr := rootOpts.dateArg(date)
				if derr != nil {
					return derr
				}
				data, err = s.DB.ExportRecord(cmd.Context(), day, opts)
			}
			if err != nil {
				return commandError("export", err)
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return WrapExitError(ExitFailure, "write export", err)
			}
			rootOpts.formatter(cmd).VerboseLog("wrote %d bytes to %s", len(data), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to export (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&all, "all", false, "export every record as a backup")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "encrypt with a passphrase")
	return cmd
}

// NewImportCommand loads an export or backup document.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a day export or backup, replacing records for the same dates",
		Long: `Import a single-day export, a backup, or a bare JSON array of records.
Encrypted documents prompt for their passphrase.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "read import file", err)
			}
			s, err := rootOpts.openSession(cmd.Context(), sessionCLI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			n, err := s.DB.Import(cmd.Context(), data, "")
			for attempt := 0; attempt < config.MaxPassphraseAttempts && isPassphraseError(err); attempt++ {
				if attempt > 0 {
					fmt.Fprintln(cmd.ErrOrStderr(), "Wrong passphrase.")
				}
				pass, perr := rootOpts.prompt(cmd.InOrStdin(), cmd.ErrOrStderr())("Passphrase: ")
				if perr != nil {
					return WrapExitError(ExitFailure, "read passphrase", perr)
				}
				n, err = s.DB.Import(cmd.Context(), data, pass)
			}
			if err != nil {
				return commandError("import", err)
			}
			s.Log.Info("imported records", "count", n, "file", args[0])
			return rootOpts.formatter(cmd).Success(map[string]int{"imported": n}, func(w io.Writer) {
				fmt.Fprintf(w, "Imported %d record(s)\n", n)
			})
		},
	}
}

func isPassphraseError(err error) bool {
	return errors.Is(err, database.ErrPassphraseRequired) || errors.Is(err, database.ErrWrongPassphrase)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// newPassphrase asks for a passphrase twice and checks its strength.
func (o *RootOptions) newPassphrase(cmd *cobra.Command) (string, error) {
	prompt := o.prompt(cmd.InOrStdin(), cmd.ErrOrStderr())
	pass, err := prompt("New passphrase: ")
	if err != nil {
		return "", WrapExitError(ExitFailure, "read passphrase", err)
	}
	if err := util.ValidatePassphrase(pass); err != nil {
		return "", WrapExitError(ExitCommandError, "weak passphrase", err)
	}
	again, err := prompt("Repeat passphrase: ")
	if err != nil {
		return "", WrapExitError(ExitFailure, "read passphrase", err)
	}
	if again != pass {
		return "", NewExitError(ExitCommandError, "passphrases do not match")
	}
	return pass, nil
}
