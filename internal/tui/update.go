package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/DPT/internal/config"
	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/tracker"
	"github.com/akyairhashvil/DPT/internal/util"
)

var sectionOrder = []models.ItemType{models.ItemGoal, models.ItemPriority, models.ItemOverdue}

func (m DayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case recordLoadedMsg:
		if msg.date != m.date {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.log.Warn("load record", "date", msg.date, "error", msg.err)
		}
		m.setRecord(msg.record)
		return m, nil
	case generateTickMsg:
		if msg.date != m.date || msg.seq != m.genSeq {
			return m, nil
		}
		return m, m.generateCmd(msg.date)
	case generatedMsg:
		return m.handleGenerated(msg)
	case mutatedMsg:
		return m.handleMutated(msg)
	case journalSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.log.Error("save journal", "date", msg.date, "error", msg.err)
		}
		return m, nil
	case errMsg:
		m.err = msg.err
		m.log.Error(msg.op, "error", msg.err)
		return m, nil
	case reportMsg:
		if msg.err != nil {
			m.err = msg.err
			m.log.Error("generate report", "error", msg.err)
			return m, nil
		}
		m.Message = "PDF report generated: " + msg.path
		return m, nil
	}
	return m, nil
}

func (m DayModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressBarWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinTitleWidth {
			target = config.MinTitleWidth
		}
		m.progress.Width = target
		m.journal.SetWidth(max(m.width-4, config.MinTitleWidth))
	}
	return m, nil
}

func (m DayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if next, cmd, handled := defaultRegistry.Handle(m, key); handled {
		return next, cmd
	}
	var cmd tea.Cmd
	switch m.mode {
	case ModeInput:
		m.input, cmd = m.input.Update(msg)
	case ModeJournal:
		before := m.journal.Value()
		m.journal, cmd = m.journal.Update(msg)
		if m.journal.Value() != before {
			m.scheduleJournal()
		}
	}
	return m, cmd
}

func (m DayModel) handleGenerated(msg generatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("generate overdue tasks", "date", msg.date, "error", msg.err)
		if msg.date == m.date {
			m.err = msg.err
		}
	}
	if msg.date != m.date || len(msg.derived) == 0 {
		return m, nil
	}
	m.Message = fmt.Sprintf("Added %d overdue task(s)", len(msg.derived))
	return m, m.loadCmd(m.date)
}

func (m DayModel) handleMutated(msg mutatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil && !errors.Is(msg.err, tracker.ErrCannotMove) {
		m.log.Warn("update record", "date", msg.date, "error", msg.err)
	}
	if msg.date != m.date {
		return m, nil
	}
	switch {
	case errors.Is(msg.err, tracker.ErrCannotMove):
		m.err = nil
	case msg.err != nil:
		m.err = msg.err
	default:
		m.err = nil
		m.Message = msg.note
	}
	if msg.record != nil {
		m.setRecord(msg.record)
	}
	return m, nil
}

// setRecord swaps in r and rebuilds the rows, keeping the cursor on the
// same item when it still exists.
func (m *DayModel) setRecord(r *models.DailyRecord) {
	prev, hadPrev := m.selected()
	m.record = r
	m.rows = buildRows(r)
	if m.mode != ModeJournal && r != nil {
		m.journal.SetValue(r.Journal.Content)
	}
	if hadPrev {
		for i, rw := range m.rows {
			if rw == prev {
				m.cursor = i
				m.syncSection()
				return
			}
		}
	}
	m.clampCursor()
}

func buildRows(r *models.DailyRecord) []row {
	if r == nil {
		return nil
	}
	var rows []row
	for _, g := range r.Goals {
		rows = append(rows, row{typ: models.ItemGoal, id: g.ID})
		for _, ts := range g.TimeSlots {
			rows = append(rows, row{typ: models.ItemGoal, id: g.ID, goalID: g.ID, slotID: ts.ID})
		}
	}
	for _, p := range r.Priorities {
		rows = append(rows, row{typ: models.ItemPriority, id: p.ID})
	}
	for _, t := range r.OverdueTasks {
		rows = append(rows, row{typ: models.ItemOverdue, id: t.ID})
	}
	return rows
}

func (m DayModel) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *DayModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = util.Clamp(m.cursor, 0, len(m.rows)-1)
	m.syncSection()
}

func (m *DayModel) syncSection() {
	if rw, ok := m.selected(); ok {
		m.section = rw.typ
	}
}

// title returns the display title of the item behind rw.
func (m DayModel) title(rw row) string {
	if m.record == nil {
		return ""
	}
	switch rw.typ {
	case models.ItemGoal:
		for _, g := range m.record.Goals {
			if g.ID != rw.id {
				continue
			}
			if rw.isSlot() {
				for _, ts := range g.TimeSlots {
					if ts.ID == rw.slotID {
						return ts.StartTime + "-" + ts.EndTime
					}
				}
			}
			return g.Title
		}
	case models.ItemPriority:
		for _, p := range m.record.Priorities {
			if p.ID == rw.id {
				return p.Title
			}
		}
	case models.ItemOverdue:
		for _, t := range m.record.OverdueTasks {
			if t.ID == rw.id {
				return t.Title
			}
		}
	}
	return ""
}

// --- Browse handlers ---

func moveCursor(delta int) KeyHandler {
	return func(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
		m.cursor += delta
		m.clampCursor()
		return m, nil, true
	}
}

// nextSection selects the next section type and moves the cursor to its
// first row when it has one.
func nextSection(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	idx := 0
	for i, s := range sectionOrder {
		if s == m.section {
			idx = i
		}
	}
	m.section = sectionOrder[(idx+1)%len(sectionOrder)]
	for i, rw := range m.rows {
		if rw.typ == m.section {
			m.cursor = i
			break
		}
	}
	return m, nil, true
}

func shiftDay(delta int) KeyHandler {
	return func(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
		next, err := models.ShiftDate(m.date, delta)
		if err != nil {
			m.err = err
			return m, nil, true
		}
		return m.openDay(next)
	}
}

func goToday(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	return m.openDay(m.tracker.Today())
}

// openDay writes any pending journal for the current day and switches.
func (m DayModel) openDay(date string) (DayModel, tea.Cmd, bool) {
	m.tracker.FlushJournal(m.date)
	m.date = date
	m.record = nil
	m.rows = nil
	m.cursor = 0
	m.Message = ""
	m.err = nil
	return m, m.enterDay(), true
}

func startAdd(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	m.mode = ModeInput
	m.purpose = purposeAdd
	m.input.Reset()
	m.input.Placeholder = "New " + string(m.section) + " title"
	m.input.Focus()
	return m, textinput.Blink, true
}

func startEdit(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	rw, ok := m.selected()
	if !ok || rw.isSlot() {
		return m, nil, true
	}
	m.mode = ModeInput
	m.purpose = purposeEdit
	m.input.SetValue(m.title(rw))
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink, true
}

func startSlot(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	rw, ok := m.selected()
	if !ok || rw.typ != models.ItemGoal {
		m.Message = "Select a goal to schedule"
		return m, nil, true
	}
	m.mode = ModeInput
	m.purpose = purposeSlot
	m.input.Reset()
	m.input.Placeholder = "HH:MM-HH:MM"
	m.input.Focus()
	return m, textinput.Blink, true
}

func cycleSelected(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	rw, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	t, date := m.tracker, m.date
	if rw.isSlot() {
		return m, m.mutateCmd("", func(ctx context.Context) (*models.DailyRecord, error) {
			return t.CycleTimeSlot(ctx, date, rw.goalID, rw.slotID)
		}), true
	}
	return m, m.mutateCmd("", func(ctx context.Context) (*models.DailyRecord, error) {
		return t.CycleStatus(ctx, date, rw.typ, rw.id)
	}), true
}

func resetSelected(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	rw, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	t, date := m.tracker, m.date
	if rw.isSlot() {
		return m, m.mutateCmd("", func(ctx context.Context) (*models.DailyRecord, error) {
			return t.ResetTimeSlot(ctx, date, rw.goalID, rw.slotID)
		}), true
	}
	return m, m.mutateCmd("", func(ctx context.Context) (*models.DailyRecord, error) {
		return t.ResetStatus(ctx, date, rw.typ, rw.id)
	}), true
}

func confirmDelete(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	rw, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	m.mode = ModeConfirm
	m.Message = fmt.Sprintf("Delete %q? (y/n)", m.title(rw))
	return m, nil, true
}

func deleteConfirmed(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	m.mode = ModeBrowse
	m.Message = ""
	rw, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	t, date := m.tracker, m.date
	if rw.isSlot() {
		return m, m.mutateCmd("Time slot removed", func(ctx context.Context) (*models.DailyRecord, error) {
			return t.RemoveTimeSlot(ctx, date, rw.goalID, rw.slotID)
		}), true
	}
	return m, m.mutateCmd("Deleted", func(ctx context.Context) (*models.DailyRecord, error) {
		return t.DeleteItem(ctx, date, rw.typ, rw.id)
	}), true
}

func moveSelected(delta int) KeyHandler {
	return func(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
		rw, ok := m.selected()
		if !ok || rw.isSlot() {
			return m, nil, true
		}
		t, date := m.tracker, m.date
		return m, m.mutateCmd("", func(ctx context.Context) (*models.DailyRecord, error) {
			return t.MoveItem(ctx, date, rw.typ, rw.id, delta)
		}), true
	}
}

func clearCompleted(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	t, date := m.tracker, m.date
	return m, func() tea.Msg {
		ctx := context.Background()
		n, err := t.ClearCompletedOverdueTasks(ctx, date)
		if err != nil {
			return mutatedMsg{date: date, err: err}
		}
		r, err := t.Record(ctx, date)
		return mutatedMsg{date: date, record: r, err: err, note: fmt.Sprintf("Removed %d completed task(s)", n)}
	}, true
}

func generateNow(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	return m, m.generateCmd(m.date), true
}

func startJournal(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	m.mode = ModeJournal
	if m.record != nil {
		m.journal.SetValue(m.record.Journal.Content)
	}
	m.journal.Focus()
	return m, textarea.Blink, true
}

func closeJournal(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	m.tracker.FlushJournal(m.date)
	m.journal.Blur()
	m.mode = ModeBrowse
	return m, m.loadCmd(m.date), true
}

func exportReport(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	if m.record == nil {
		return m, nil, true
	}
	return m, reportCmd(m.record, m.reportsDir), true
}

func cycleTheme(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	m.applyTheme(nextTheme(m.themeName))
	m.Message = "Theme: " + m.themeName
	if m.settings == nil {
		return m, nil, true
	}
	settings, name, fallback := m.settings, m.themeName, m.configTheme
	return m, func() tea.Msg {
		ctx := context.Background()
		var err error
		if name == fallback {
			err = settings.DeleteSetting(ctx, themeSettingKey)
		} else {
			err = settings.SetSetting(ctx, themeSettingKey, name)
		}
		if err != nil {
			return errMsg{op: "save theme", err: err}
		}
		return nil
	}, true
}

func quit(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	m.tracker.FlushJournal(m.date)
	m.quitting = true
	return m, tea.Quit, true
}

// --- Modal handlers ---

func cancelMode(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	m.mode = ModeBrowse
	m.input.Blur()
	m.input.Reset()
	m.Message = ""
	return m, nil, true
}

func submitInput(m DayModel, _ string) (DayModel, tea.Cmd, bool) {
	value := m.input.Value()
	t, date, section := m.tracker, m.date, m.section
	rw, hasRow := m.selected()

	var cmd tea.Cmd
	switch m.purpose {
	case purposeAdd:
		cmd = m.mutateCmd("", func(ctx context.Context) (*models.DailyRecord, error) {
			r, _, err := t.AddItem(ctx, date, section, value)
			return r, err
		})
	case purposeEdit:
		if !hasRow {
			break
		}
		cmd = m.mutateCmd("", func(ctx context.Context) (*models.DailyRecord, error) {
			return t.EditTitle(ctx, date, rw.typ, rw.id, value)
		})
	case purposeSlot:
		start, end, ok := parseSlot(value)
		if !ok || !hasRow {
			m.err = fmt.Errorf("%w: use HH:MM-HH:MM", models.ErrInvalidTime)
			return m, nil, true
		}
		cmd = m.mutateCmd("", func(ctx context.Context) (*models.DailyRecord, error) {
			r, _, err := t.AddTimeSlot(ctx, date, rw.id, start, end)
			return r, err
		})
	}
	m.mode = ModeBrowse
	m.input.Blur()
	m.input.Reset()
	return m, cmd, true
}

func parseSlot(raw string) (start, end string, ok bool) {
	start, end, ok = strings.Cut(strings.ReplaceAll(raw, " ", ""), "-")
	return start, end, ok && start != "" && end != ""
}
