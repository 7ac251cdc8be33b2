package shell

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/constants"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/content"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/locale"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/router"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// exploreSections are the section entries listed at the top of EXPLORE.
var exploreSections = []struct {
	key      content.SectionKey
	screen   router.Screen
	title    string
	subtitle string
}{
	{content.SectionTopNews, router.ScreenExploreSectionGrid, "explore_top_news", "explore_top_news_subtitle"},
	{content.SectionCulturalEvents, router.ScreenExploreSectionList, "explore_cultural_events", "explore_cultural_events_subtitle"},
	{content.SectionMuseums, router.ScreenExploreSectionList, "explore_museums", "explore_museums_subtitle"},
}

var tabGlyphs = map[router.Screen]string{
	router.ScreenHome:    constants.Home,
	router.ScreenExplore: constants.Explore,
	router.ScreenSaved:   constants.Saved,
	router.ScreenProfile: constants.Profile,
}

var tabLabels = map[router.Screen]string{
	router.ScreenHome:    "tab_home",
	router.ScreenExplore: "tab_explore",
	router.ScreenSaved:   "tab_saved",
	router.ScreenProfile: "tab_profile",
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{m.styles.Frame.Render(m.screenView())}
	if m.toast != "" {
		parts = append(parts, m.styles.Toast.Render(m.toast))
	}
	if m.app.Router.ShouldShowTabs() {
		parts = append(parts, m.tabBar())
	}
	parts = append(parts, m.help.View(m.keys.localized(m.app.T)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// screenView resolves the current screen to its view.
func (m *Model) screenView() string {
	switch m.screen {
	case router.ScreenSplash:
		return m.splashView()
	case router.ScreenRegister:
		return m.menuView(m.app.T("register_title"), m.app.T("register_login"), m.app.T("register_signup"))
	case router.ScreenLogin:
		return m.menuView(m.app.T("login_title"), m.app.T("auth_continue"), m.app.T("forgot_title"))
	case router.ScreenSignup:
		return m.menuView(m.app.T("signup_title"), m.app.T("auth_continue"))
	case router.ScreenForgotPassword:
		return m.menuView(m.app.T("forgot_title"), m.app.T("auth_continue"))
	case router.ScreenHome:
		return m.homeView()
	case router.ScreenExplore:
		return m.exploreView()
	case router.ScreenExploreSectionGrid:
		return m.gridView()
	case router.ScreenExploreSectionList:
		return m.listView()
	case router.ScreenSaved:
		return m.savedView()
	case router.ScreenProfile:
		return m.profileView()
	case router.ScreenLanguage:
		return m.languageView()
	case router.ScreenNotifications:
		return m.textView(m.app.T("notifications_title"), m.app.T("notifications_empty"))
	case router.ScreenPrivacy:
		return m.textView(m.app.T("privacy_title"), m.app.T("privacy_body"))
	case router.ScreenDetail:
		return m.readerView()
	}
	return ""
}

func (m *Model) splashView() string {
	return lipgloss.Place(m.innerWidth(), max(m.height-4, 3), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Title.Render(m.app.T("app_name")),
			m.styles.Subtitle.Render(m.app.T("splash_tagline")),
		),
	)
}

func (m *Model) menuView(title string, options ...string) string {
	lines := []string{m.styles.Title.Render(title), ""}
	for i, opt := range options {
		lines = append(lines, m.row(i, opt))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) textView(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		"",
		m.styles.Text.Width(m.innerWidth()).Render(body),
	)
}

func (m *Model) homeView() string {
	lang := m.app.Lang()
	trending := m.app.Store.Section(content.SectionTrending, lang)
	latest := m.app.Store.Section(content.SectionLatest, lang)

	lines := []string{m.styles.Title.Render(m.app.T("app_name")), ""}
	lines = append(lines, m.styles.Subtitle.Render(m.app.T("home_trending")))
	for i, it := range trending {
		lines = append(lines, m.itemRow(i, it, it.Category))
	}
	lines = append(lines, "", m.styles.Subtitle.Render(m.app.T("home_latest")))
	for i, it := range latest {
		lines = append(lines, m.itemRow(len(trending)+i, it, it.Publisher+" · "+it.Timestamp))
	}
	return m.window(lines, 2)
}

func (m *Model) exploreView() string {
	lines := []string{m.styles.Title.Render(m.app.T("explore_title"))}

	if m.search.Focused() || m.search.Value() != "" {
		lines = append(lines, m.search.View())
	} else {
		lines = append(lines, m.styles.Muted.Render("/ "+m.app.T("explore_search")))
	}

	var chips []string
	for i, c := range m.app.Store.Categories() {
		label := c.Icon + " " + c.Name
		if i == m.category {
			chips = append(chips, m.styles.ChipActive.Render(label))
		} else {
			chips = append(chips, m.styles.Chip.Render(label))
		}
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, chips...), "")

	for i, sec := range exploreSections {
		lines = append(lines, m.row(i, m.app.T(sec.title)+"  "+m.styles.Muted.Render(m.app.T("explore_see_all")+" ›")))
	}
	lines = append(lines, "")

	items := m.exploreItems()
	if len(items) == 0 {
		lines = append(lines, m.styles.Muted.Render(m.app.T("explore_no_results")))
	}
	for i, it := range items {
		lines = append(lines, m.itemRow(len(exploreSections)+i, it, it.Category))
	}
	return m.window(lines, 4)
}

// gridView lays a section out as cards, two per row.
func (m *Model) gridView() string {
	header := m.sectionHeader()
	items := m.sectionItems()
	cardWidth := max(m.innerWidth()/2-2, 16)

	var rows []string
	for i := 0; i < len(items); i += 2 {
		var cards []string
		for j := i; j < min(i+2, len(items)); j++ {
			cards = append(cards, m.card(j, items[j], cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(header, rows...)...)
}

func (m *Model) listView() string {
	lines := m.sectionHeader()
	for i, it := range m.sectionItems() {
		meta := it.Subtitle
		if it.Location != "" {
			meta += "  " + constants.Location + " " + it.Location
		}
		if it.Duration != "" {
			meta += "  " + constants.Duration + " " + it.Duration
		}
		lines = append(lines, m.itemRow(i, it, meta))
	}
	return m.window(lines, len(m.sectionHeader()))
}

func (m *Model) sectionHeader() []string {
	sp, _ := router.Section(m.app.Router.Params())
	title := sp.Title
	if title == "" {
		title = m.app.T("explore_top_news")
	}
	header := []string{m.styles.Title.Render(title)}
	if sp.Subtitle != "" {
		header = append(header, m.styles.Subtitle.Render(sp.Subtitle))
	}
	return append(header, "")
}

func (m *Model) savedView() string {
	lines := []string{m.styles.Title.Render(m.app.T("saved_title")), ""}
	items := m.app.Store.SavedItems(m.app.Lang())
	if len(items) == 0 {
		lines = append(lines, m.styles.Muted.Render(m.app.T("saved_empty")))
	}
	for i, it := range items {
		lines = append(lines, m.itemRow(i, it, it.Publisher+" · "+it.Timestamp))
	}
	return m.window(lines, 2)
}

func (m *Model) profileView() string {
	p := m.app.Store.Profile(m.app.Lang())
	lines := []string{
		m.styles.Title.Render(p.Name),
		m.styles.Subtitle.Render(p.Role),
		m.styles.Muted.Render(fmt.Sprintf("%d %s · %d %s",
			p.Saved, m.app.T("profile_saved"), p.Read, m.app.T("profile_read"))),
		"",
		m.styles.Subtitle.Render(m.app.T("settings_title")),
	}
	for i, s := range settings {
		var label string
		switch s {
		case settingNotifications:
			label = m.app.T("settings_notifications")
		case settingDarkMode:
			state := "off"
			if m.app.Theme.Name == "dark" {
				state = "on"
			}
			label = m.app.T("settings_dark_mode") + "  [" + state + "]"
		case settingLanguage:
			label = m.app.T("settings_language") + "  " + m.styles.Muted.Render(m.app.Catalog.LanguageName(m.app.Tag(), m.app.Tag()))
		case settingPrivacy:
			label = m.app.T("settings_privacy")
		}
		lines = append(lines, m.row(i, label))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) languageView() string {
	lines := []string{m.styles.Title.Render(m.app.T("language_title")), ""}
	current := m.app.Tag()
	for i, tag := range locale.Supported() {
		label := m.app.Catalog.LanguageName(current, tag)
		if native := m.app.Catalog.LanguageName(tag, tag); native != label {
			label += "  " + m.styles.Muted.Render(native)
		}
		if tag == current {
			label += "  ✓"
		}
		lines = append(lines, m.row(i, label))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) tabBar() string {
	var tabs []string
	for _, s := range router.Tabs() {
		label := tabGlyphs[s] + " " + m.app.T(tabLabels[s])
		if s == m.screen {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return m.styles.TabBar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m *Model) row(i int, label string) string {
	if i == m.cursor {
		return m.styles.Selected.Render("› " + label)
	}
	return m.styles.Text.Render("  " + label)
}

func (m *Model) itemRow(i int, it content.Item, meta string) string {
	glyph := " "
	if m.app.Store.IsBookmarked(it.ID) {
		glyph = m.styles.Bookmark.Render(constants.Bookmark)
	}
	title := ansi.Truncate(it.Title, max(m.innerWidth()-6, 10), "…")
	line := m.row(i, title) + " " + glyph
	if meta == "" {
		return line
	}
	return line + "\n    " + m.styles.Muted.Render(ansi.Truncate(meta, max(m.innerWidth()-4, 10), "…"))
}

func (m *Model) card(i int, it content.Item, width int) string {
	style := m.styles.Card
	if i == m.cursor {
		style = m.styles.CardActive
	}
	lines := []string{
		m.styles.Title.Render(ansi.Truncate(it.Title, width-2, "…")),
		m.styles.Muted.Render(ansi.Truncate(it.Subtitle, width-2, "…")),
	}
	if it.Rating != "" {
		lines = append(lines, m.styles.Text.Render(fmt.Sprintf("%s %s (%s)", constants.Rating, it.Rating, it.Reviews)))
	}
	lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("%s %s  %s %s",
		constants.Likes, it.Likes, constants.Comments, it.Comments)))
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// window keeps the selected row on screen by dropping list lines above it.
// The first keep lines are always shown.
func (m *Model) window(lines []string, keep int) string {
	out := strings.Join(lines, "\n")
	budget := max(m.height-6, 8)
	if lipgloss.Height(out) <= budget || keep >= len(lines) {
		return out
	}
	head := strings.Join(lines[:keep], "\n")
	body := lines[keep:]
	for len(body) > 1 && lipgloss.Height(head)+lipgloss.Height(strings.Join(body, "\n")) > budget {
		if strings.Contains(body[0], "› ") {
			break
		}
		body = body[1:]
	}
	return head + "\n" + strings.Join(body, "\n")
}

func (m *Model) innerWidth() int {
	return max(m.width-screenPadding.Horizontal(), 20)
}
