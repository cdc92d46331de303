package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/akyairhashvil/DPT/internal/models"
)

func checkbox(s models.Status) string {
	switch s {
	case models.StatusDone:
		return "[x]"
	case models.StatusNotDone:
		return "[-]"
	default:
		return "[ ]"
	}
}

func writeRecord(w io.Writer, r *models.DailyRecord) {
	overall := r.Progress().Overall()
	fmt.Fprintf(w, "%s  %d/%d done (%d%%)\n", r.Date, overall.Done, overall.Total, overall.Percent())

	fmt.Fprintln(w, "Goals")
	if len(r.Goals) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, g := range r.Goals {
		fmt.Fprintf(w, "  %s %s  %s\n", checkbox(g.Status), g.Title, g.ID)
		for _, ts := range g.TimeSlots {
			fmt.Fprintf(w, "      %s %s - %s  %s\n", checkbox(ts.Status),
				models.FormatClock12(ts.StartTime), models.FormatClock12(ts.EndTime), ts.ID)
		}
	}

	fmt.Fprintln(w, "Priorities")
	if len(r.Priorities) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range r.Priorities {
		fmt.Fprintf(w, "  %s %s  %s\n", checkbox(p.Status), p.Title, p.ID)
	}

	fmt.Fprintln(w, "Overdue")
	if len(r.OverdueTasks) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, t := range r.OverdueTasks {
		fmt.Fprintf(w, "  %s %s  %s%s\n", checkbox(t.Status), t.Title, t.ID, origin(t))
	}

	if strings.TrimSpace(r.Journal.Content) != "" {
		fmt.Fprintf(w, "Journal (%d words)\n", r.Journal.WordCount)
		for _, line := range strings.Split(strings.TrimRight(r.Journal.Content, "\n"), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func origin(t models.OverdueTaskItem) string {
	if !t.IsAuto() || t.OriginalDate == "" {
		return ""
	}
	return fmt.Sprintf("  (from %s %s)", t.OriginalDate, t.OriginalType)
}
