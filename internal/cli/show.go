package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// NewShowCommand prints one day.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:           "show",
		Short:         "Print a day's goals, priorities, overdue tasks and journal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := rootOpts.dateArg(date)
			if err != nil {
				return err
			}
			s, err := rootOpts.openSession(cmd.Context(), sessionCLI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := s.Tracker.Record(cmd.Context(), day)
			if err != nil {
				return commandError("load record", err)
			}
			return rootOpts.formatter(cmd).Success(r, func(w io.Writer) { writeRecord(w, r) })
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to show (YYYY-MM-DD, default today)")
	return cmd
}
