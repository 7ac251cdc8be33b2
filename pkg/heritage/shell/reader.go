package shell

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/constants"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/content"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/internal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	gansi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// reader chrome: header line above the viewport, stats and help below.
const readerChrome = 6

func (m *Model) updateReader(act constants.Action) tea.Cmd {
	if act == constants.ActionBack {
		m.back()
		return nil
	}
	if m.missing {
		return nil
	}

	switch act {
	case constants.ActionLeft:
		if m.cursor > 0 {
			m.cursor--
			m.loadPage()
		}
	case constants.ActionRight:
		if m.cursor < len(m.items())-1 {
			m.cursor++
			m.loadPage()
		}
	case constants.ActionUp:
		m.reader.LineUp(1)
	case constants.ActionDown:
		m.reader.LineDown(1)
	case constants.ActionBookmark:
		if it, ok := m.selectedItem(); ok {
			return m.toggleBookmark(it.ID)
		}
	}
	return nil
}

func (m *Model) layoutReader() {
	m.reader.Width = max(m.width-screenPadding.Horizontal(), 20)
	m.reader.Height = max(m.height-readerChrome, 5)
}

// loadPage renders the article under the cursor into the reader and
// remembers the position for history.
func (m *Model) loadPage() {
	it, ok := m.selectedItem()
	if !ok {
		return
	}
	m.reader.SetContent(m.renderArticle(it))
	m.reader.GotoTop()
	m.app.Router.SaveResume(m.cursor)
}

func (m *Model) renderArticle(it content.Item) string {
	width := m.reader.Width
	key := internal.PageKey{ArticleID: it.ID, Lang: m.app.Lang(), Theme: m.app.Theme.Name, Width: width}
	if out, ok := m.cache.Get(key); ok {
		return out
	}

	md := articleMarkdown(it)
	r, err := m.termRenderer(width)
	if err != nil {
		m.app.Logger().Error("markdown renderer unavailable", "error", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		m.app.Logger().Error("render article failed", "id", it.ID, "error", err)
		return md
	}
	m.cache.Put(key, out)
	return out
}

func (m *Model) termRenderer(width int) (*glamour.TermRenderer, error) {
	if m.renderer != nil && m.rendererWidth == width && m.rendererTheme == m.app.Theme.Name {
		return m.renderer, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(articleStyle(m.app.Theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderer, m.rendererWidth, m.rendererTheme = r, width, m.app.Theme.Name
	return r, nil
}

// articleStyle is the theme's glamour preset with bold text, which carries
// highlighted spans, drawn in the theme's highlight colour.
func articleStyle(t internal.Theme) gansi.StyleConfig {
	base, ok := styles.DefaultStyles[t.GlamourPreset]
	if !ok {
		base = &styles.LightStyleConfig
	}
	cfg := *base
	highlight := string(t.Highlight)
	cfg.Strong.Color = &highlight
	return cfg
}

// articleMarkdown lays an item out as markdown, with highlighted spans in
// bold.
func articleMarkdown(it content.Item) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", it.Title)
	fmt.Fprintf(&sb, "_%s · %s · %s_\n\n", it.Category, it.Publisher, it.Timestamp)
	if len(it.Keywords) > 0 {
		fmt.Fprintf(&sb, "%s\n\n", strings.Join(it.Keywords, " "))
	}
	for _, p := range it.Content {
		for _, s := range p.Spans {
			if s.Highlight {
				fmt.Fprintf(&sb, "**%s**", s.Text)
			} else {
				sb.WriteString(s.Text)
			}
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (m *Model) readerView() string {
	if m.missing {
		return ""
	}
	it, ok := m.selectedItem()
	if !ok {
		return ""
	}

	glyph := constants.Unmarked
	if m.app.Store.IsBookmarked(it.ID) {
		glyph = constants.Bookmark
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Muted.Render(m.app.Tf("detail_position", map[string]any{
			"Index": m.cursor + 1,
			"Total": len(m.items()),
		})),
		"  ",
		m.styles.Bookmark.Render(glyph),
	)
	stats := m.styles.Muted.Render(fmt.Sprintf("%s %s %s   %s %s %s",
		constants.Likes, it.Likes, m.app.T("detail_likes"),
		constants.Comments, it.Comments, m.app.T("detail_comments"),
	))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.reader.View(), stats)
}
