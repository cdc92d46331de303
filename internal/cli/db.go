package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/DPT/internal/models"
)

// DBInfo describes the database file.
type DBInfo struct {
	Path          string `json:"path"`
	SchemaVersion int    `json:"schemaVersion"`
	Records       int    `json:"records"`
	LatestDate    string `json:"latestDate,omitempty"`
}

// NewDBCommand inspects and prunes the record store.
func NewDBCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Inspect or prune the record database",
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "info",
		Short:         "Show the database location, schema version and record count",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.openSession(cmd.Context(), sessionCLI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			info := DBInfo{Path: s.DB.Path()}
			if info.SchemaVersion, err = s.DB.SchemaVersion(ctx); err != nil {
				return commandError("read schema version", err)
			}
			if info.Records, err = s.DB.Count(ctx); err != nil {
				return commandError("count records", err)
			}
			latest, err := s.DB.Latest(ctx)
			if err != nil {
				return commandError("read latest record", err)
			}
			if latest != nil {
				info.LatestDate = latest.Date
			}
			return rootOpts.formatter(cmd).Success(info, func(w io.Writer) {
				fmt.Fprintf(w, "path     %s\nschema   v%d\nrecords  %d\n", info.Path, info.SchemaVersion, info.Records)
				if info.LatestDate != "" {
					fmt.Fprintf(w, "latest   %s\n", info.LatestDate)
				}
			})
		},
	})

	var yes bool
	deleteCmd := &cobra.Command{
		Use:           "delete <date>",
		Short:         "Delete the record of one day",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := args[0]
			if err := models.ValidateDate(day); err != nil {
				return WrapExitError(ExitCommandError, "invalid date", err)
			}
			if !yes {
				return NewExitError(ExitCommandError, "refusing to delete without --yes")
			}
			s, err := rootOpts.openSession(cmd.Context(), sessionCLI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			existing, err := s.DB.GetByID(cmd.Context(), models.RecordID(day))
			if err != nil {
				return commandError("load record", err)
			}
			if existing == nil {
				return NewExitError(ExitCommandError, "no record for "+day)
			}
			if err := s.Tracker.DeleteRecord(cmd.Context(), day); err != nil {
				return commandError("delete record", err)
			}
			s.Log.Info("record deleted", "date", day)
			return rootOpts.formatter(cmd).Success(map[string]string{"deleted": day}, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted %s\n", day)
			})
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	cmd.AddCommand(deleteCmd)

	var clearYes bool
	clearCmd := &cobra.Command{
		Use:           "clear",
		Short:         "Delete every record",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearYes {
				return NewExitError(ExitCommandError, "refusing to clear without --yes")
			}
			s, err := rootOpts.openSession(cmd.Context(), sessionCLI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			n, err := s.DB.Count(cmd.Context())
			if err != nil {
				return commandError("count records", err)
			}
			if err := s.DB.Clear(cmd.Context()); err != nil {
				return commandError("clear records", err)
			}
			s.Log.Info("records cleared", "count", n)
			return rootOpts.formatter(cmd).Success(map[string]int{"removed": n}, func(w io.Writer) {
				fmt.Fprintf(w, "Removed %d record(s)\n", n)
			})
		},
	}
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm clearing all records")
	cmd.AddCommand(clearCmd)

	return cmd
}
