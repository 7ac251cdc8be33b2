package shell

import (
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/constants"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Back     key.Binding
	Bookmark key.Binding
	Refresh  key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Language key.Binding
	Search   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "navigate")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Left:     key.NewBinding(key.WithKeys("left", "h")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Open:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Bookmark: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmark")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		NextTab:  key.NewBinding(key.WithKeys("tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab")),
		Language: key.NewBinding(key.WithKeys("L")),
		Search:   key.NewBinding(key.WithKeys("/")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// action maps a key press to the intent screens react to.
func (k keyMap) action(msg tea.KeyMsg) constants.Action {
	switch {
	case key.Matches(msg, k.Up):
		return constants.ActionUp
	case key.Matches(msg, k.Down):
		return constants.ActionDown
	case key.Matches(msg, k.Left):
		return constants.ActionLeft
	case key.Matches(msg, k.Right):
		return constants.ActionRight
	case key.Matches(msg, k.Open):
		return constants.ActionOpen
	case key.Matches(msg, k.Back):
		return constants.ActionBack
	case key.Matches(msg, k.Bookmark):
		return constants.ActionBookmark
	case key.Matches(msg, k.Refresh):
		return constants.ActionRefresh
	case key.Matches(msg, k.NextTab):
		return constants.ActionNextTab
	case key.Matches(msg, k.PrevTab):
		return constants.ActionPrevTab
	case key.Matches(msg, k.Language):
		return constants.ActionLanguage
	case key.Matches(msg, k.Search):
		return constants.ActionSearch
	case key.Matches(msg, k.Quit):
		return constants.ActionQuit
	}
	return constants.ActionNone
}

// localized returns a copy whose help labels come from t.
func (k keyMap) localized(t func(string) string) keyMap {
	k.Up.SetHelp("↑/↓", t("help_navigate"))
	k.Open.SetHelp("enter", t("help_open"))
	k.Back.SetHelp("esc", t("help_back"))
	k.Bookmark.SetHelp("b", t("help_bookmark"))
	k.Refresh.SetHelp("r", t("help_refresh"))
	k.Quit.SetHelp("q", t("help_quit"))
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Open, k.Back, k.Bookmark, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
