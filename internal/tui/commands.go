package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/report"
)

// --- Messages ---

type recordLoadedMsg struct {
	date   string
	record *models.DailyRecord
	err    error
}

// generateTickMsg fires once the view has rested on date for the debounce.
type generateTickMsg struct {
	date string
	seq  int
}

type generatedMsg struct {
	date    string
	derived []models.OverdueTaskItem
	err     error
}

// mutatedMsg carries the record after a user edit. record may be set even
// when err is, for edits that saved today but failed to update history.
type mutatedMsg struct {
	date   string
	record *models.DailyRecord
	err    error
	note   string
}

type journalSavedMsg struct {
	date string
	err  error
}

type errMsg struct {
	op  string
	err error
}

type reportMsg struct {
	path string
	err  error
}

// --- Commands ---

func (m DayModel) loadCmd(date string) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		r, err := t.Record(context.Background(), date)
		return recordLoadedMsg{date: date, record: r, err: err}
	}
}

func generateTickCmd(date string, seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return generateTickMsg{date: date, seq: seq}
	})
}

func (m DayModel) generateCmd(date string) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		derived, err := t.GenerateAutoOverdueTasks(context.Background(), date)
		return generatedMsg{date: date, derived: derived, err: err}
	}
}

// mutateCmd runs fn against the tracker off the UI goroutine.
func (m DayModel) mutateCmd(note string, fn func(ctx context.Context) (*models.DailyRecord, error)) tea.Cmd {
	date := m.date
	return func() tea.Msg {
		r, err := fn(context.Background())
		return mutatedMsg{date: date, record: r, err: err, note: note}
	}
}

func reportCmd(r *models.DailyRecord, dir string) tea.Cmd {
	snapshot := r.Clone()
	return func() tea.Msg {
		path, err := report.Generate(snapshot, dir)
		return reportMsg{path: path, err: err}
	}
}

// scheduleJournal hands the editor content to the tracker's debounced
// saver. Failures come back as journalSavedMsg through the program.
func (m DayModel) scheduleJournal() {
	date, content, n := m.date, m.journal.Value(), m.notify
	m.tracker.ScheduleJournal(date, content, func(_ *models.DailyRecord, err error) {
		n.post(journalSavedMsg{date: date, err: err})
	})
}

// enterDay loads the current date and arms a fresh generation tick,
// which invalidates any tick armed for the previous day.
func (m *DayModel) enterDay() tea.Cmd {
	m.genSeq++
	m.loading = true
	return tea.Batch(m.loadCmd(m.date), generateTickCmd(m.date, m.genSeq, m.debounce))
}
