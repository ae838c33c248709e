package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of one phosphor screen.
type Theme struct {
	Name string

	Background string // Outside the frame
	Screen     string // Behind the text
	Border     string // Frame lines
	Title      string // Frame title

	Text   string // Completed lines
	Active string // The line being typed
	Cursor string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Screen: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Screen)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Active)).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Cursor)).
			Bold(true),

		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Title)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Screen     lipgloss.Style

	Text   lipgloss.Style
	Active lipgloss.Style
	Cursor lipgloss.Style

	Border lipgloss.Style
	Title  lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Phosphor": phosphorTheme(),
	"Amber":    amberTheme(),
	"Ice":      iceTheme(),
}

var themeOrder = []string{"Phosphor", "Amber", "Ice"}

// GetTheme returns a theme by name, ignoring case. Unknown names get Phosphor.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	for _, candidate := range themeOrder {
		if strings.EqualFold(candidate, strings.TrimSpace(name)) {
			return themes[candidate]
		}
	}
	return phosphorTheme()
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func phosphorTheme() Theme {
	// P1 green phosphor
	return Theme{
		Name:       "Phosphor",
		Background: "#020402",
		Screen:     "#061006",
		Border:     "#1F5F2A",
		Title:      "#33FF66",
		Text:       "#33FF66",
		Active:     "#9CFFB4",
		Cursor:     "#D9FFE3",
	}
}

func amberTheme() Theme {
	// P3 amber phosphor
	return Theme{
		Name:       "Amber",
		Background: "#050300",
		Screen:     "#120B00",
		Border:     "#6B4300",
		Title:      "#FFB000",
		Text:       "#FFB000",
		Active:     "#FFD27A",
		Cursor:     "#FFEBC2",
	}
}

func iceTheme() Theme {
	// P4-ish blue white
	return Theme{
		Name:       "Ice",
		Background: "#020508",
		Screen:     "#061018",
		Border:     "#1E4F66",
		Title:      "#7FDBFF",
		Text:       "#7FDBFF",
		Active:     "#C4F1FF",
		Cursor:     "#EEFBFF",
	}
}
