package internal

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colours of the terminal shell.
type Theme struct {
	Name          string
	Primary       lipgloss.Color // Accent for titles, active tab, highlights
	Text          lipgloss.Color // Body text
	Muted         lipgloss.Color // Timestamps, publishers, help
	Background    lipgloss.Color // Card background
	Border        lipgloss.Color // Card and tab bar borders
	Highlight     lipgloss.Color // Highlighted spans in article bodies
	OnPrimary     lipgloss.Color // Text drawn on Primary
	Bookmark      lipgloss.Color // Filled bookmark glyph
	GlamourPreset string         // glamour standard style for article bodies
}

// LightTheme is the default saffron-on-cream palette.
func LightTheme() Theme {
	return Theme{
		Name:          "light",
		Primary:       lipgloss.Color("#D9480F"),
		Text:          lipgloss.Color("#1F1A17"),
		Muted:         lipgloss.Color("#8A817C"),
		Background:    lipgloss.Color("#FFF8F0"),
		Border:        lipgloss.Color("#E9D8C4"),
		Highlight:     lipgloss.Color("#B8860B"),
		OnPrimary:     lipgloss.Color("#FFFFFF"),
		Bookmark:      lipgloss.Color("#D9480F"),
		GlamourPreset: "light",
	}
}

// DarkTheme is the palette for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Name:          "dark",
		Primary:       lipgloss.Color("#FF922B"),
		Text:          lipgloss.Color("#F1EDE9"),
		Muted:         lipgloss.Color("#9C948F"),
		Background:    lipgloss.Color("#1E1B18"),
		Border:        lipgloss.Color("#3B342E"),
		Highlight:     lipgloss.Color("#FFD43B"),
		OnPrimary:     lipgloss.Color("#1E1B18"),
		Bookmark:      lipgloss.Color("#FF922B"),
		GlamourPreset: "dark",
	}
}

// ThemeByName returns the named theme, falling back to LightTheme.
func ThemeByName(name string) Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}
