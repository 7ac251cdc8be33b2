package shell

import (
	"slices"
	"time"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/constants"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/content"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/internal"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/locale"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/router"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type splashDoneMsg struct{}

type toastExpiredMsg struct {
	seq int
}

// Model is the root bubbletea model. It renders whatever screen the router
// currently holds and turns key presses into router and store calls.
type Model struct {
	app    *heritage.App
	keys   keyMap
	styles styles
	help   help.Model
	search textinput.Model
	reader viewport.Model

	cache         *internal.RenderCache
	renderer      *glamour.TermRenderer
	rendererWidth int
	rendererTheme string

	width  int
	height int

	screen   router.Screen // screen the state below belongs to
	cursor   int           // selected row, or the reader position on DETAIL
	category int           // explore chip
	missing  bool          // DETAIL was opened on an unknown id

	toast    string
	toastSeq int

	quitting bool
}

// New creates the root model for app, positioned on the router's current
// screen.
func New(app *heritage.App) *Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.CharLimit = 64

	m := &Model{
		app:    app,
		keys:   defaultKeyMap(),
		styles: newStyles(app.Theme),
		help:   help.New(),
		search: search,
		reader: viewport.New(defaultWidth, defaultHeight),
		cache:  internal.NewRenderCache(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.layoutReader()
	m.enter(app.Router.State())
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.app.Router.Current() != router.ScreenSplash {
		return nil
	}
	delay := m.app.Config.SplashDelay.Duration
	if delay <= 0 {
		return func() tea.Msg { return splashDoneMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layoutReader()
		if m.screen == router.ScreenDetail {
			m.loadPage()
		}
		return m, nil

	case splashDoneMsg:
		if m.app.Router.Current() == router.ScreenSplash {
			m.navigate(router.ScreenRegister, nil)
		}
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter, tea.KeyEsc:
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	act := m.keys.action(msg)
	switch act {
	case constants.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case constants.ActionLanguage:
		m.app.NextLanguage()
		m.cache.Retain(m.app.Lang(), m.app.Theme.Name)
		if m.screen == router.ScreenDetail {
			m.loadPage()
		}
		return m, nil
	case constants.ActionNextTab, constants.ActionPrevTab:
		if m.app.Router.ShouldShowTabs() {
			step := 1
			if act == constants.ActionPrevTab {
				step = -1
			}
			m.switchTab(step)
		}
		return m, nil
	}

	if m.app.Router.ShouldShowTabs() {
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			tabs := router.Tabs()
			if i := int(s[0] - '1'); i < len(tabs) {
				m.navigate(tabs[i], nil)
				return m, nil
			}
		}
	}

	return m, m.updateScreen(act)
}

// updateScreen applies act to the current screen.
func (m *Model) updateScreen(act constants.Action) tea.Cmd {
	switch m.screen {
	case router.ScreenDetail:
		return m.updateReader(act)
	case router.ScreenExplore:
		return m.updateExplore(act)
	}

	rows := m.rowCount()
	switch act {
	case constants.ActionUp:
		m.move(-1, rows)
	case constants.ActionDown:
		m.move(1, rows)
	case constants.ActionLeft:
		if m.screen == router.ScreenExploreSectionGrid {
			m.move(-1, rows)
		}
	case constants.ActionRight:
		if m.screen == router.ScreenExploreSectionGrid {
			m.move(1, rows)
		}
	case constants.ActionOpen:
		return m.open()
	case constants.ActionBack:
		m.back()
	case constants.ActionBookmark:
		if it, ok := m.selectedItem(); ok {
			return m.toggleBookmark(it.ID)
		}
	case constants.ActionRefresh:
		if m.screen == router.ScreenHome {
			m.app.Store.Refresh()
			m.cursor = 0
			return m.notify(m.app.T("home_refreshed"))
		}
	}
	return nil
}

func (m *Model) updateExplore(act constants.Action) tea.Cmd {
	cats := m.app.Store.Categories()
	switch act {
	case constants.ActionLeft:
		if m.category > 0 {
			m.category--
			m.cursor = 0
		}
	case constants.ActionRight:
		if m.category < len(cats)-1 {
			m.category++
			m.cursor = 0
		}
	case constants.ActionSearch:
		m.cursor = 0
		return m.search.Focus()
	case constants.ActionUp:
		m.move(-1, m.rowCount())
	case constants.ActionDown:
		m.move(1, m.rowCount())
	case constants.ActionBack:
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.cursor = 0
			return nil
		}
		m.back()
	case constants.ActionOpen:
		if m.cursor < len(exploreSections) {
			sec := exploreSections[m.cursor]
			m.navigate(sec.screen, router.SectionParams{
				SectionKey: string(sec.key),
				Title:      m.app.T(sec.title),
				Subtitle:   m.app.T(sec.subtitle),
			})
			return nil
		}
		return m.open()
	case constants.ActionBookmark:
		if it, ok := m.selectedItem(); ok {
			return m.toggleBookmark(it.ID)
		}
	}
	return nil
}

// open acts on the selected row of a list screen.
func (m *Model) open() tea.Cmd {
	switch m.screen {
	case router.ScreenSplash:
		m.navigate(router.ScreenRegister, nil)
	case router.ScreenRegister:
		m.navigate([]router.Screen{router.ScreenLogin, router.ScreenSignup}[m.cursor], nil)
	case router.ScreenLogin:
		m.navigate([]router.Screen{router.ScreenHome, router.ScreenForgotPassword}[m.cursor], nil)
	case router.ScreenSignup, router.ScreenForgotPassword:
		m.navigate(router.ScreenHome, nil)
	case router.ScreenProfile:
		return m.openSetting()
	case router.ScreenLanguage:
		tag := locale.Supported()[m.cursor]
		m.app.SetLanguage(locale.Code(tag))
		m.cache.Retain(m.app.Lang(), m.app.Theme.Name)
		m.back()
	default:
		if it, ok := m.selectedItem(); ok {
			m.app.Router.SaveResume(m.cursor)
			if err := m.app.OpenArticle(it.ID); err != nil {
				m.app.Logger().Error("open article failed", "id", it.ID, "error", err)
				return nil
			}
			m.enter(m.app.Router.State())
		}
	}
	return nil
}

type setting int

const (
	settingNotifications setting = iota
	settingDarkMode
	settingLanguage
	settingPrivacy
)

var settings = []setting{settingNotifications, settingDarkMode, settingLanguage, settingPrivacy}

func (m *Model) openSetting() tea.Cmd {
	switch settings[m.cursor] {
	case settingNotifications:
		m.navigate(router.ScreenNotifications, nil)
	case settingDarkMode:
		name := "dark"
		if m.app.Theme.Name == "dark" {
			name = "light"
		}
		m.app.Theme = internal.ThemeByName(name)
		m.styles = newStyles(m.app.Theme)
		m.cache.Retain(m.app.Lang(), m.app.Theme.Name)
	case settingLanguage:
		m.navigate(router.ScreenLanguage, nil)
	case settingPrivacy:
		m.navigate(router.ScreenPrivacy, nil)
	}
	return nil
}

func (m *Model) toggleBookmark(id string) tea.Cmd {
	saved := m.app.ToggleBookmark(id)
	if m.screen == router.ScreenSaved {
		m.move(0, m.rowCount())
	}
	if saved {
		return m.notify(m.app.T("bookmark_added"))
	}
	return m.notify(m.app.T("bookmark_removed"))
}

// notify shows a transient status line.
func (m *Model) notify(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(constants.DefaultToastTimeout, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) switchTab(step int) {
	tabs := router.Tabs()
	i := slices.Index(tabs, m.screen)
	if i < 0 {
		m.navigate(tabs[0], nil)
		return
	}
	m.navigate(tabs[(i+step+len(tabs))%len(tabs)], nil)
}

func (m *Model) navigate(screen router.Screen, params router.Params) {
	m.app.Router.SaveResume(m.cursor)
	if err := m.app.Router.Navigate(screen, params); err != nil {
		m.app.Logger().Error("navigation failed", "screen", screen.String(), "error", err)
		return
	}
	m.enter(m.app.Router.State())
}

func (m *Model) back() {
	m.enter(m.app.Router.GoBack())
}

// enter resets per-screen state for state.Screen.
func (m *Model) enter(state router.State) {
	m.screen = state.Screen
	m.cursor = 0
	m.missing = false
	resume, resumed := state.Resume.(int)
	if resumed {
		m.cursor = resume
	}

	switch state.Screen {
	case router.ScreenExplore:
		m.search.Blur()
	case router.ScreenLanguage:
		m.cursor = max(slices.Index(locale.Supported(), m.app.Tag()), 0)
	case router.ScreenDetail:
		m.app.Router.SetTabBarVisible(false)
		id := router.ArticleID(state.Params)
		if _, err := m.app.Store.Lookup(id, m.app.Lang()); err != nil {
			m.missing = true
			return
		}
		if !resumed {
			m.cursor = m.app.Store.IndexOf(id)
		}
		m.loadPage()
	}
	m.move(0, m.rowCount())
}

// move shifts the cursor by delta, keeping it within rows.
func (m *Model) move(delta, rows int) {
	m.cursor += delta
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// items returns the articles listed by the current screen.
func (m *Model) items() []content.Item {
	lang := m.app.Lang()
	store := m.app.Store
	switch m.screen {
	case router.ScreenHome:
		return append(store.Section(content.SectionTrending, lang), store.Section(content.SectionLatest, lang)...)
	case router.ScreenExplore:
		return m.exploreItems()
	case router.ScreenExploreSectionList, router.ScreenExploreSectionGrid:
		return m.sectionItems()
	case router.ScreenSaved:
		return store.SavedItems(lang)
	case router.ScreenDetail:
		return store.AllItems(lang)
	}
	return nil
}

func (m *Model) exploreItems() []content.Item {
	lang := m.app.Lang()
	if q := m.search.Value(); q != "" {
		return m.app.Store.Search(q, lang)
	}
	cats := m.app.Store.Categories()
	if m.category >= len(cats) {
		return m.app.Store.AllItems(lang)
	}
	return m.app.Store.ByCategory(cats[m.category].Name, lang)
}

// sectionItems resolves the listing for section params. Pinned ids that
// no longer resolve are skipped.
func (m *Model) sectionItems() []content.Item {
	lang := m.app.Lang()
	sp, ok := router.Section(m.app.Router.Params())
	if !ok || sp.SectionKey == "" {
		sp.SectionKey = string(content.SectionTopNews)
	}
	if len(sp.ItemIDs) == 0 {
		return m.app.Store.Section(content.SectionKey(sp.SectionKey), lang)
	}
	out := make([]content.Item, 0, len(sp.ItemIDs))
	for _, id := range sp.ItemIDs {
		if it, err := m.app.Store.Lookup(id, lang); err == nil {
			out = append(out, it)
		}
	}
	return out
}

// selectedItem returns the article under the cursor, if any.
func (m *Model) selectedItem() (content.Item, bool) {
	items := m.items()
	i := m.cursor
	if m.screen == router.ScreenExplore {
		i -= len(exploreSections)
	}
	if i < 0 || i >= len(items) {
		return content.Item{}, false
	}
	return items[i], true
}

// rowCount returns the number of selectable rows on the current screen.
func (m *Model) rowCount() int {
	switch m.screen {
	case router.ScreenSplash, router.ScreenSignup, router.ScreenForgotPassword:
		return 1
	case router.ScreenRegister, router.ScreenLogin:
		return 2
	case router.ScreenProfile:
		return len(settings)
	case router.ScreenLanguage:
		return len(locale.Supported())
	case router.ScreenExplore:
		return len(exploreSections) + len(m.exploreItems())
	case router.ScreenNotifications, router.ScreenPrivacy:
		return 0
	}
	return len(m.items())
}

// Screen returns the screen the model is showing.
func (m *Model) Screen() router.Screen {
	return m.screen
}
