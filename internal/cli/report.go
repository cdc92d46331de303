package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/DPT/internal/report"
)

// NewReportCommand renders a day as PDF.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	var date, dir string
	cmd := &cobra.Command{
		Use:           "report",
		Short:         "Write a PDF report of a day",
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
			if dir == "" {
				dir = s.Config.ReportsDir
			}
			path, err := report.Generate(r, dir)
			if err != nil {
				return WrapExitError(ExitFailure, "generate report", err)
			}
			return rootOpts.formatter(cmd).Success(map[string]string{"path": path}, func(w io.Writer) {
				fmt.Fprintf(w, "PDF report generated: %s\n", path)
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to report (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default reports_dir)")
	return cmd
}
