// Package tui is the interactive day view: goals, priorities, overdue
// tasks and the journal for one date, with keyboard navigation between days.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/DPT/internal/config"
	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/tracker"
	"github.com/akyairhashvil/DPT/internal/util"
)

// Mode is what keystrokes currently drive.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeInput
	ModeJournal
	ModeConfirm
)

type inputPurpose int

const (
	purposeAdd inputPurpose = iota
	purposeEdit
	purposeSlot
)

// Settings persists UI preferences between runs.
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// themeSettingKey overrides the configured theme once the user picks one.
const themeSettingKey = "tui.theme"

// Options configures the day view.
type Options struct {
	Tracker          *tracker.Tracker
	Settings         Settings
	Theme            string
	ReportsDir       string
	GenerateDebounce time.Duration
	Logger           *slog.Logger
	// Date opens a specific day instead of today.
	Date string
}

// row is one selectable line: an item, or a time slot under a goal.
type row struct {
	typ    models.ItemType
	id     string
	goalID string
	slotID string
}

func (r row) isSlot() bool { return r.slotID != "" }

// notifier lets background work post messages to the running program.
// post never blocks, so it is safe to call from inside Update.
type notifier struct {
	send func(tea.Msg)
}

func (n *notifier) post(msg tea.Msg) {
	if n != nil && n.send != nil {
		go n.send(msg)
	}
}

type DayModel struct {
	tracker    *tracker.Tracker
	settings   Settings
	log        *slog.Logger
	reportsDir string
	debounce   time.Duration
	notify     *notifier

	date    string
	record  *models.DailyRecord
	loading bool

	rows    []row
	cursor  int
	section models.ItemType

	mode     Mode
	purpose  inputPurpose
	input    textinput.Model
	journal  textarea.Model
	progress progress.Model

	// genSeq invalidates pending generation ticks when the day changes.
	genSeq int

	themeName string
	theme     Theme

	// configTheme applies when no override is stored.
	configTheme string

	Message  string
	err      error
	quitting bool

	width, height int
}

func NewDayModel(opts Options) DayModel {
	ti := textinput.New()
	ti.CharLimit = config.MaxTitleLength
	ti.Width = config.TargetTitleWidth

	ta := textarea.New()
	ta.Placeholder = "How did the day go?"
	ta.CharLimit = config.MaxJournalLength
	ta.SetWidth(config.TargetTitleWidth + 12)
	ta.SetHeight(config.JournalPreviewLines + 4)

	debounce := opts.GenerateDebounce
	if debounce <= 0 {
		debounce = config.GenerateDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = util.DiscardLogger()
	}
	date := opts.Date
	if date == "" {
		date = opts.Tracker.Today()
	}

	theme := opts.Theme
	if opts.Settings != nil {
		if v, ok := opts.Settings.GetSetting(context.Background(), themeSettingKey); ok {
			theme = v
		}
	}

	m := DayModel{
		tracker:     opts.Tracker,
		settings:    opts.Settings,
		configTheme: opts.Theme,
		log:         logger,
		reportsDir:  opts.ReportsDir,
		debounce:    debounce,
		notify:      &notifier{},
		date:        date,
		loading:     true,
		section:     models.ItemGoal,
		input:       ti,
		journal:     ta,
	}
	m.applyTheme(theme)
	return m
}

func (m *DayModel) applyTheme(name string) {
	if _, ok := Themes[name]; !ok {
		name = "default"
	}
	m.themeName = name
	m.theme = ThemeByName(name)
	m.progress = progress.New(progress.WithGradient(m.theme.BarFrom, m.theme.BarTo), progress.WithoutPercentage())
	m.progress.Width = config.ProgressBarWidth
}

func (m DayModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(m.date), generateTickCmd(m.date, m.genSeq, m.debounce))
}

// Run starts the day view and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	m := NewDayModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.notify.send = p.Send
	_, err := p.Run()
	opts.Tracker.Close()
	if err != nil && ctx.Err() != nil {
		// Interrupted by the caller's context.
		return nil
	}
	return err
}
