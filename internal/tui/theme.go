package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Section   lipgloss.Style
	Item      lipgloss.Style
	Done      lipgloss.Style
	NotDone   lipgloss.Style
	Origin    lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	// Gradient endpoints for the progress bar.
	BarFrom, BarTo string
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Section:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Item:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		NotDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Origin:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		BarFrom:   "#5A56E0",
		BarTo:     "#EE6FF8",
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Section:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Item:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		NotDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Origin:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		BarFrom:   "#BD93F9",
		BarTo:     "#FF79C6",
	},
	"mono": {
		Name:      "Mono",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("245"),
		Header:    lipgloss.NewStyle().Bold(true),
		Section:   lipgloss.NewStyle().Bold(true).Underline(true),
		Item:      lipgloss.NewStyle(),
		Done:      lipgloss.NewStyle().Faint(true),
		NotDone:   lipgloss.NewStyle().Italic(true),
		Origin:    lipgloss.NewStyle().Faint(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Reverse(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Bold(true),
		Error:     lipgloss.NewStyle().Bold(true),
		BarFrom:   "#888888",
		BarTo:     "#FFFFFF",
	},
}

// themeOrder is the cycle order for the theme key.
var themeOrder = []string{"default", "dracula", "mono"}

// ThemeByName returns the named theme, falling back to default.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func nextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
