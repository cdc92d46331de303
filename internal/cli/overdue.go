package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/overdue"
)

// OverdueEntry is one overdue task together with the live status of the
// item it was carried from.
type OverdueEntry struct {
	models.OverdueTaskItem
	OriginStatus models.Status `json:"originStatus,omitempty"`
	OriginFound  bool          `json:"originFound"`
}

// NewOverdueCommand groups the overdue task operations.
func NewOverdueCommand(rootOpts *RootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "overdue",
		Short: "Generate, list, complete and clear overdue tasks",
	}
	cmd.PersistentFlags().StringVar(&date, "date", "", "day to work on (YYYY-MM-DD, default today)")

	cmd.AddCommand(&cobra.Command{
		Use:           "generate",
		Short:         "Carry unfinished items from earlier days into the day",
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

			derived, err := s.Tracker.GenerateAutoOverdueTasks(cmd.Context(), day)
			if err != nil {
				return commandError("generate overdue tasks", err)
			}
			if derived == nil {
				derived = []models.OverdueTaskItem{}
			}
			return rootOpts.formatter(cmd).Success(derived, func(w io.Writer) {
				fmt.Fprintf(w, "Added %d overdue task(s) to %s\n", len(derived), day)
				for _, t := range derived {
					fmt.Fprintf(w, "  %s %s  %s%s\n", checkbox(t.Status), t.Title, t.ID, origin(t))
				}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "list",
		Short:         "List the day's overdue tasks and the status of their originals",
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
			history, err := s.DB.GetAll(cmd.Context())
			if err != nil {
				return commandError("load history", err)
			}
			entries := make([]OverdueEntry, 0, len(r.OverdueTasks))
			for _, t := range r.OverdueTasks {
				e := OverdueEntry{OverdueTaskItem: t}
				if _, st, ok := overdue.Locate(t, history); ok {
					e.OriginStatus, e.OriginFound = st, true
				}
				entries = append(entries, e)
			}
			return rootOpts.formatter(cmd).Success(entries, func(w io.Writer) {
				if len(entries) == 0 {
					fmt.Fprintf(w, "No overdue tasks on %s\n", day)
				}
				for _, e := range entries {
					fmt.Fprintf(w, "%s %s  %s%s", checkbox(e.Status), e.Title, e.ID, origin(e.OverdueTaskItem))
					switch {
					case e.OriginFound:
						fmt.Fprintf(w, "  origin %s", e.OriginStatus)
					case e.IsAuto():
						fmt.Fprint(w, "  origin deleted")
					}
					fmt.Fprintln(w)
				}
			})
		},
	})

	var status string
	complete := &cobra.Command{
		Use:           "complete <task-id>",
		Short:         "Set an overdue task's status and mirror it onto its original",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := rootOpts.dateArg(date)
			if err != nil {
				return err
			}
			st, ok := models.LookupStatus(status)
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid --status %q", status))
			}
			s, err := rootOpts.openSession(cmd.Context(), sessionCLI, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := s.Tracker.CompleteOverdueTask(cmd.Context(), day, args[0], st)
			if err != nil {
				return commandError("complete overdue task", err)
			}
			return rootOpts.formatter(cmd).Success(r, func(w io.Writer) {
				fmt.Fprintf(w, "Task %s is now %s\n", args[0], st)
			})
		},
	}
	complete.Flags().StringVar(&status, "status", string(models.StatusDone), "new status (done|not_done|neutral)")
	cmd.AddCommand(complete)

	cmd.AddCommand(&cobra.Command{
		Use:           "clear",
		Short:         "Remove completed overdue tasks from the day",
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

			removed, err := s.Tracker.ClearCompletedOverdueTasks(cmd.Context(), day)
			if err != nil {
				return commandError("clear overdue tasks", err)
			}
			return rootOpts.formatter(cmd).Success(map[string]int{"removed": removed}, func(w io.Writer) {
				fmt.Fprintf(w, "Removed %d completed task(s)\n", removed)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "stats",
		Short:         "Count the day's overdue tasks",
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

			stats, err := s.Tracker.OverdueStats(cmd.Context(), day)
			if err != nil {
				return commandError("count overdue tasks", err)
			}
			return rootOpts.formatter(cmd).Success(stats, func(w io.Writer) {
				fmt.Fprintf(w, "total %d  auto %d  manual %d  completed %d\n", stats.Total, stats.Auto, stats.Manual, stats.Completed)
			})
		},
	})

	return cmd
}
