package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("unknown theme")

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Clock     lipgloss.Style
	Toggle    lipgloss.Style
	Status    lipgloss.Style
	Break     lipgloss.Style
	Hint      lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style

	// Progress bar gradient, hex colors.
	GradientStart string
	GradientEnd   string
}

// ThemeOrder is the cycle order for the theme key.
var ThemeOrder = []string{"default", "dracula"}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 2),
		ActiveTab:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 2),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(1, 0),
		Toggle:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 3),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Break:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Hint:          lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		GradientStart: "#5A56E0",
		GradientEnd:   "#EE6FF8",
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 2),
		ActiveTab:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 2),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 0),
		Toggle:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 3),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Break:         lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Hint:          lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Italic(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		GradientStart: "#BD93F9",
		GradientEnd:   "#FF79C6",
	},
}

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, error) {
	t, ok := Themes[name]
	if !ok {
		return Themes["default"], fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

func nextTheme(name string) string {
	for i, n := range ThemeOrder {
		if n == name {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
