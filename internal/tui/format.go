package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/DPT/internal/config"
	"github.com/akyairhashvil/DPT/internal/models"
)

func glyph(s models.Status) string {
	switch s {
	case models.StatusDone:
		return "[x]"
	case models.StatusNotDone:
		return "[-]"
	default:
		return "[ ]"
	}
}

// FormatTally formats a done count for display (e.g. "2/5 goals").
func FormatTally(t models.Tally, noun string) string {
	if t.Total == 0 {
		return "No " + noun
	}
	return fmt.Sprintf("%d/%d %s", t.Done, t.Total, noun)
}

// FormatSlot renders a time slot as "9:00 AM - 10:30 AM".
func FormatSlot(ts models.TimeSlot) string {
	return models.FormatClock12(ts.StartTime) + " - " + models.FormatClock12(ts.EndTime)
}

// FormatWordCount pluralizes the journal word count.
func FormatWordCount(n int) string {
	if n == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", n)
}

func truncate(s string, width int) string {
	if width < config.MinTitleWidth {
		width = config.MinTitleWidth
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}
