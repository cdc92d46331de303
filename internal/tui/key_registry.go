package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key. handled=false lets lower priority bindings
// for the same key run.
type KeyHandler func(m DayModel, key string) (next DayModel, cmd tea.Cmd, handled bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Modes       []Mode
	Priority    int
}

func (b KeyBinding) AppliesTo(mode Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DayModel, key string) (DayModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.mode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(mode Mode) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(mode) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(mode Mode) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(mode) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+keyLabel(b.Key)+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

// defaultRegistry is shared by every model; bindings are stateless.
var defaultRegistry = newDayRegistry()

func newDayRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	browse := []Mode{ModeBrowse}
	bind := func(key, desc string, h KeyHandler) {
		r.Register(KeyBinding{Key: key, Description: desc, Handler: h, Modes: browse})
	}

	bind("j", "down", moveCursor(1))
	bind("down", "", moveCursor(1))
	bind("k", "up", moveCursor(-1))
	bind("up", "", moveCursor(-1))
	bind("tab", "section", nextSection)
	bind("h", "prev day", shiftDay(-1))
	bind("left", "", shiftDay(-1))
	bind("l", "next day", shiftDay(1))
	bind("right", "", shiftDay(1))
	bind(".", "today", goToday)
	bind("a", "add", startAdd)
	bind("e", "edit", startEdit)
	bind("t", "time slot", startSlot)
	bind(" ", "cycle", cycleSelected)
	bind("enter", "", cycleSelected)
	bind("r", "reset", resetSelected)
	bind("d", "delete", confirmDelete)
	bind("K", "move up", moveSelected(-1))
	bind("J", "move down", moveSelected(1))
	bind("c", "clear done overdue", clearCompleted)
	bind("g", "generate", generateNow)
	bind("w", "journal", startJournal)
	bind("p", "pdf", exportReport)
	bind("T", "theme", cycleTheme)
	bind("q", "quit", quit)

	r.Register(KeyBinding{Key: "y", Description: "confirm", Handler: deleteConfirmed, Modes: []Mode{ModeConfirm}})
	r.Register(KeyBinding{Key: "n", Description: "cancel", Handler: cancelMode, Modes: []Mode{ModeConfirm}})
	r.Register(KeyBinding{Key: "esc", Description: "", Handler: cancelMode, Modes: []Mode{ModeConfirm}})

	r.Register(KeyBinding{Key: "enter", Description: "save", Handler: submitInput, Modes: []Mode{ModeInput}})
	r.Register(KeyBinding{Key: "esc", Description: "cancel", Handler: cancelMode, Modes: []Mode{ModeInput}})

	r.Register(KeyBinding{Key: "esc", Description: "done", Handler: closeJournal, Modes: []Mode{ModeJournal}})

	// ctrl+c always quits, even while typing.
	r.Register(KeyBinding{Key: "ctrl+c", Handler: quit, Priority: 10})
	return r
}
