package shell

import (
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/internal"
	"github.com/charmbracelet/lipgloss"
)

var screenPadding = internal.Symmetric(1, 2)

type styles struct {
	Frame      lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Chip       lipgloss.Style
	ChipActive lipgloss.Style
	TabBar     lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	Toast      lipgloss.Style
	Bookmark   lipgloss.Style
}

func newStyles(t internal.Theme) styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Background).
		Padding(0, 1)

	return styles{
		Frame:      lipgloss.NewStyle().Padding(screenPadding.Values()),
		Title:      lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Subtitle:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Text:       lipgloss.NewStyle().Foreground(t.Text),
		Muted:      lipgloss.NewStyle().Foreground(t.Muted),
		Selected:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Card:       card,
		CardActive: card.BorderForeground(t.Primary),
		Chip:       lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
		ChipActive: lipgloss.NewStyle().Foreground(t.OnPrimary).Background(t.Primary).Padding(0, 1),
		TabBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(t.Border),
		Tab:       lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 2),
		TabActive: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 2),
		Toast:     lipgloss.NewStyle().Foreground(t.OnPrimary).Background(t.Primary).Padding(0, 1),
		Bookmark:  lipgloss.NewStyle().Foreground(t.Bookmark),
	}
}
