package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/DPT/internal/config"
	"github.com/akyairhashvil/DPT/internal/models"
)

func (m DayModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	if m.record == nil {
		b.WriteString(m.theme.Dim.Render("Loading..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSections())
		b.WriteString("\n")
		b.WriteString(m.renderJournal())
	}
	if m.mode == ModeInput {
		b.WriteString("\n")
		b.WriteString(m.theme.Input.Render(m.inputLabel() + " " + m.input.View()))
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return m.theme.Base.Render(b.String())
}

func (m DayModel) renderHeader() string {
	label := m.date
	if m.date == m.tracker.Today() {
		label += " (today)"
	}
	title := m.theme.Header.Render("Daily Planner  " + label)
	if m.record == nil {
		return title
	}
	overall := m.record.Progress().Overall()
	pct := float64(0)
	if overall.Total > 0 {
		pct = float64(overall.Done) / float64(overall.Total)
	}
	stats := m.theme.Dim.Render(fmt.Sprintf("%d/%d (%d%%)", overall.Done, overall.Total, overall.Percent()))
	return lipgloss.JoinVertical(lipgloss.Left, title, m.progress.ViewAs(pct)+" "+stats)
}

// visibleRange returns the window of rows to draw, keeping the cursor in view.
func visibleRange(n, cursor, limit int) (int, int) {
	if n <= limit {
		return 0, n
	}
	start := cursor - limit/2
	if start < 0 {
		start = 0
	}
	if start+limit > n {
		start = n - limit
	}
	return start, start + limit
}

func (m DayModel) renderSections() string {
	start, end := visibleRange(len(m.rows), m.cursor, config.MaxVisibleItems)
	width := m.titleWidth()
	r := m.record
	p := r.Progress()

	var b strings.Builder
	idx := 0
	section := func(name string, typ models.ItemType, tally models.Tally, count int, line func(i int) string) {
		header := name
		if tally.Total > 0 {
			header += "  " + m.theme.Dim.Render(FormatTally(tally, "done"))
		}
		if m.section == typ {
			header = m.theme.Focused.Render("> ") + header
		}
		b.WriteString(m.theme.Section.Render(header))
		b.WriteString("\n")
		if count == 0 {
			b.WriteString(m.theme.Dim.Render("    (none)"))
			b.WriteString("\n")
		}
		hidden := 0
		for i := 0; i < count; i++ {
			if idx < start || idx >= end {
				hidden++
			} else {
				b.WriteString(m.cursorMark(idx))
				b.WriteString(line(i))
				b.WriteString("\n")
			}
			idx++
		}
		if hidden > 0 {
			b.WriteString(m.theme.Dim.Render(fmt.Sprintf("    ... %d more", hidden)))
			b.WriteString("\n")
		}
	}

	// Goal rows interleave their slots, so flatten them first.
	type goalLine struct {
		goal models.GoalItem
		slot *models.TimeSlot
	}
	var goalLines []goalLine
	for _, g := range r.Goals {
		goalLines = append(goalLines, goalLine{goal: g})
		for i := range g.TimeSlots {
			goalLines = append(goalLines, goalLine{goal: g, slot: &g.TimeSlots[i]})
		}
	}
	section("Goals", models.ItemGoal, p.Goals, len(goalLines), func(i int) string {
		gl := goalLines[i]
		if gl.slot != nil {
			return "    " + m.statusStyle(gl.slot.Status).Render(glyph(gl.slot.Status)+" "+FormatSlot(*gl.slot))
		}
		return m.statusStyle(gl.goal.Status).Render(glyph(gl.goal.Status) + " " + truncate(gl.goal.Title, width))
	})
	section("Priorities", models.ItemPriority, p.Priorities, len(r.Priorities), func(i int) string {
		it := r.Priorities[i]
		return m.statusStyle(it.Status).Render(fmt.Sprintf("%s %d. %s", glyph(it.Status), i+1, truncate(it.Title, width)))
	})
	section("Overdue", models.ItemOverdue, p.Overdue, len(r.OverdueTasks), func(i int) string {
		t := r.OverdueTasks[i]
		line := m.statusStyle(t.Status).Render(glyph(t.Status) + " " + truncate(t.Title, width))
		if t.IsAuto() {
			line += " " + m.theme.Origin.Render(fmt.Sprintf("(from %s)", t.OriginalDate))
		}
		return line
	})
	return b.String()
}

func (m DayModel) cursorMark(idx int) string {
	if idx == m.cursor && m.mode != ModeJournal {
		return m.theme.Focused.Render("  > ")
	}
	return "    "
}

func (m DayModel) statusStyle(s models.Status) lipgloss.Style {
	switch s {
	case models.StatusDone:
		return m.theme.Done
	case models.StatusNotDone:
		return m.theme.NotDone
	}
	return m.theme.Item
}

func (m DayModel) titleWidth() int {
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return m.width - 16
	}
	return config.TargetTitleWidth
}

func (m DayModel) renderJournal() string {
	header := m.theme.Section.Render("Journal  " + m.theme.Dim.Render(FormatWordCount(m.record.Journal.WordCount)))
	if m.mode == ModeJournal {
		return header + "\n" + m.journal.View() + "\n"
	}
	content := strings.TrimSpace(m.record.Journal.Content)
	if content == "" {
		return header + "\n" + m.theme.Dim.Render("    (empty, press w to write)") + "\n"
	}
	lines := strings.Split(content, "\n")
	more := 0
	if len(lines) > config.JournalPreviewLines {
		more = len(lines) - config.JournalPreviewLines
		lines = lines[:config.JournalPreviewLines]
	}
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString("    ")
		b.WriteString(m.theme.Item.Render(truncate(l, m.titleWidth()+8)))
		b.WriteString("\n")
	}
	if more > 0 {
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("    ... %d more line(s)", more)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DayModel) inputLabel() string {
	switch m.purpose {
	case purposeEdit:
		return "Edit:"
	case purposeSlot:
		return "Time slot:"
	}
	return "Add " + string(m.section) + ":"
}

func (m DayModel) renderFooter() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, m.theme.Error.Render("Error: "+m.err.Error()))
	} else if m.Message != "" {
		lines = append(lines, m.theme.Highlight.Render(m.Message))
	}
	lines = append(lines, m.theme.Dim.Render(defaultRegistry.HelpFor(m.mode)))
	lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("%s %s  |  theme %s", config.AppName, versionLabel(), m.themeName)))
	return strings.Join(lines, "\n")
}
