package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/DPT/internal/models"
)

// NewSummaryCommand prints per-day progress for a date range.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:           "summary",
		Short:         "Show completion per day for a date range",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := rootOpts.dateArg(to)
			if err != nil {
				return err
			}
			start := from
			if start == "" {
				if start, err = models.ShiftDate(end, -6); err != nil {
					return commandError("resolve range", err)
				}
			}
			s, err := rootOpts.openSession(cmd.Context(), sessionCLI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			days, err := s.Tracker.Summary(cmd.Context(), start, end)
			if err != nil {
				return commandError("summarize", err)
			}
			return rootOpts.formatter(cmd).Success(days, func(w io.Writer) {
				if len(days) == 0 {
					fmt.Fprintf(w, "No records between %s and %s\n", start, end)
				}
				for _, p := range days {
					overall := p.Overall()
					journal := ""
					if p.HasJournal {
						journal = fmt.Sprintf("  journal %d words", p.WordCount)
					}
					fmt.Fprintf(w, "%s  %3d%%  goals %d/%d  priorities %d/%d  overdue %d/%d%s\n",
						p.Date, overall.Percent(),
						p.Goals.Done, p.Goals.Total,
						p.Priorities.Done, p.Priorities.Total,
						p.Overdue.Done, p.Overdue.Total, journal)
				}
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day (default a week before --to)")
	cmd.Flags().StringVar(&to, "to", "", "last day (default today)")
	return cmd
}
