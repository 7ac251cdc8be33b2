package shell

import (
	"math/rand/v2"
	"testing"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/config"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/constants"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/content"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/internal"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/router"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, mutate func(*config.Config)) (*Model, *heritage.App) {
	t.Helper()
	cfg := config.Default()
	cfg.SplashDelay = config.Duration{}
	if mutate != nil {
		mutate(&cfg)
	}
	app, err := heritage.New(heritage.Options{Config: &cfg, Rand: rand.New(rand.NewPCG(1, 2))})
	require.NoError(t, err)
	return New(app), app
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

// toHome walks splash, register and login.
func toHome(t *testing.T, m *Model) {
	t.Helper()
	m.Update(splashDoneMsg{})
	press(m, "enter", "enter")
	require.Equal(t, router.ScreenHome, m.Screen())
}

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func TestInit_SplashAdvancesToRegister(t *testing.T) {
	m, app := newTestModel(t, nil)

	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, router.ScreenRegister, m.Screen())
	assert.Equal(t, router.ScreenRegister, app.Router.Current())
	assert.Nil(t, m.Init())
}

func TestSplash_TimerIgnoredAfterLeaving(t *testing.T) {
	m, app := newTestModel(t, nil)
	require.NoError(t, app.Router.Navigate(router.ScreenHome, nil))
	m.enter(app.Router.State())

	m.Update(splashDoneMsg{})
	assert.Equal(t, router.ScreenHome, m.Screen())
}

func TestSplash_HidesTabs(t *testing.T) {
	m, _ := newTestModel(t, nil)
	view := plainView(m)

	assert.Contains(t, view, "Heritage Pulse")
	assert.NotContains(t, view, constants.Explore+" Explore")
}

func TestAuthFlow(t *testing.T) {
	m, app := newTestModel(t, nil)
	m.Update(splashDoneMsg{})

	press(m, "down", "enter")
	assert.Equal(t, router.ScreenSignup, m.Screen())
	press(m, "enter")
	assert.Equal(t, router.ScreenHome, m.Screen())

	require.NoError(t, app.Router.Navigate(router.ScreenLogin, nil))
	m.enter(app.Router.State())
	press(m, "down", "enter")
	assert.Equal(t, router.ScreenForgotPassword, m.Screen())
	press(m, "enter")
	assert.Equal(t, router.ScreenHome, m.Screen())
	assert.True(t, app.Router.ShouldShowTabs())
}

func TestHome_OpenArticleHidesTabs(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)
	assert.Contains(t, plainView(m), constants.Explore+" Explore")

	press(m, "down", "enter")
	require.Equal(t, router.ScreenDetail, m.Screen())
	assert.Equal(t, "t2", router.ArticleID(app.Router.Params()))
	assert.False(t, app.Router.ShouldShowTabs())
	assert.NotContains(t, plainView(m), constants.Explore+" Explore")

	press(m, "right")
	it, ok := m.selectedItem()
	require.True(t, ok)
	assert.Equal(t, "t3", it.ID)

	press(m, "esc")
	assert.Equal(t, router.ScreenHome, m.Screen())
	assert.True(t, app.Router.ShouldShowTabs())
}

func TestHome_Refresh(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)
	before := app.Store.SectionIDs(content.SectionTrending)

	cmd := press(m, "r")
	assert.NotNil(t, cmd)
	assert.Contains(t, plainView(m), "Feed refreshed")
	assert.ElementsMatch(t, before, app.Store.SectionIDs(content.SectionTrending))

	m.Update(toastExpiredMsg{seq: m.toastSeq})
	assert.NotContains(t, plainView(m), "Feed refreshed")
}

func TestReader_RendersArticle(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)
	m.navigate(router.ScreenDetail, router.DetailParams{ArticleID: "l1"})

	view := plainView(m)
	assert.Contains(t, view, "Keezhadi")
	assert.Contains(t, view, "4.3k")
	assert.Contains(t, view, "7 of 22")

	press(m, "b")
	assert.True(t, app.Store.IsBookmarked("l1"))
	assert.Contains(t, plainView(m), "Saved to your bookmarks")

	press(m, "b")
	assert.False(t, app.Store.IsBookmarked("l1"))
}

func TestReader_UnknownIDRendersNothing(t *testing.T) {
	m, _ := newTestModel(t, nil)
	toHome(t, m)
	m.navigate(router.ScreenDetail, router.DetailParams{ArticleID: "missing"})

	assert.Equal(t, router.ScreenDetail, m.Screen())
	assert.Empty(t, m.screenView())

	press(m, "right", "b", "esc")
	assert.Equal(t, router.ScreenHome, m.Screen())
}

func TestReader_RenderIsCached(t *testing.T) {
	m, _ := newTestModel(t, nil)
	toHome(t, m)
	m.navigate(router.ScreenDetail, router.DetailParams{ArticleID: "t1"})
	press(m, "right", "left")

	assert.Equal(t, 2, m.cache.Len())
}

func TestReader_LanguageSwitchDropsStalePages(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)
	m.navigate(router.ScreenDetail, router.DetailParams{ArticleID: "t1"})
	press(m, "right")
	require.Equal(t, 2, m.cache.Len())

	press(m, "L")
	assert.Equal(t, "te", app.Lang())
	assert.Equal(t, 1, m.cache.Len())
}

func TestArticleStyle_HighlightsBold(t *testing.T) {
	for _, theme := range []internal.Theme{internal.LightTheme(), internal.DarkTheme()} {
		cfg := articleStyle(theme)
		require.NotNil(t, cfg.Strong.Color, theme.Name)
		assert.Equal(t, string(theme.Highlight), *cfg.Strong.Color, theme.Name)
	}
}

func TestArticleStyle_UnknownPresetFallsBack(t *testing.T) {
	theme := internal.LightTheme()
	theme.GlamourPreset = "sepia"

	cfg := articleStyle(theme)
	assert.Equal(t, styles.LightStyleConfig.Document.Margin, cfg.Document.Margin)
	require.NotNil(t, cfg.Strong.Color)
	assert.Equal(t, string(theme.Highlight), *cfg.Strong.Color)
}

func TestTabs(t *testing.T) {
	m, _ := newTestModel(t, nil)
	toHome(t, m)

	press(m, "tab")
	assert.Equal(t, router.ScreenExplore, m.Screen())
	press(m, "shift+tab", "shift+tab")
	assert.Equal(t, router.ScreenProfile, m.Screen())
	press(m, "3")
	assert.Equal(t, router.ScreenSaved, m.Screen())

	m.navigate(router.ScreenDetail, router.DetailParams{ArticleID: "s1"})
	press(m, "tab", "1")
	assert.Equal(t, router.ScreenDetail, m.Screen())
}

func TestSaved_ToggleRemoves(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)
	press(m, "3")
	require.Len(t, m.items(), 2)

	press(m, "down", "b")
	assert.Equal(t, []string{"s1"}, app.Store.SectionIDs(content.SectionSaved))
	assert.Equal(t, 0, m.cursor)

	press(m, "b")
	assert.Contains(t, plainView(m), "You have not saved any articles yet")
}

func TestProfile_LanguagePicker(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)
	press(m, "4", "down", "down", "enter")
	require.Equal(t, router.ScreenLanguage, m.Screen())
	assert.Equal(t, 0, m.cursor)

	press(m, "down", "enter")
	assert.Equal(t, "te", app.Lang())
	assert.Equal(t, router.ScreenHome, m.Screen())
	assert.Contains(t, plainView(m), "హోమ్")
}

func TestProfile_DarkMode(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)
	press(m, "4", "down", "enter")

	assert.Equal(t, "dark", app.Theme.Name)
	assert.Contains(t, plainView(m), "[on]")
}

func TestProfile_PrivacyAndBack(t *testing.T) {
	m, _ := newTestModel(t, nil)
	toHome(t, m)
	press(m, "4", "down", "down", "down", "enter")
	require.Equal(t, router.ScreenPrivacy, m.Screen())
	assert.Contains(t, plainView(m), "Privacy & Security")

	press(m, "esc")
	assert.Equal(t, router.ScreenHome, m.Screen())
}

func TestLanguageKeyCycles(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)

	press(m, "L")
	assert.Equal(t, "te", app.Lang())
	press(m, "L", "L", "L")
	assert.Equal(t, "en", app.Lang())
}

func TestExplore_Search(t *testing.T) {
	m, _ := newTestModel(t, nil)
	toHome(t, m)
	press(m, "2", "/")
	require.True(t, m.search.Focused())

	press(m, "Mysore", "enter")
	assert.False(t, m.search.Focused())
	assert.Equal(t, "Mysore", m.search.Value())

	var ids []string
	for _, it := range m.exploreItems() {
		ids = append(ids, it.ID)
	}
	assert.Contains(t, ids, "t1")

	press(m, "esc")
	assert.Empty(t, m.search.Value())
	assert.Equal(t, router.ScreenExplore, m.Screen())
	press(m, "esc")
	assert.Equal(t, router.ScreenHome, m.Screen())
}

func TestExplore_CategoryChips(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)
	press(m, "2")
	assert.Len(t, m.exploreItems(), len(app.Store.AllItems("en")))

	press(m, "right")
	assert.Equal(t, 1, m.category)
	assert.Equal(t, app.Store.ByCategory("Heritage", "en"), m.exploreItems())
}

func TestExplore_OpenSections(t *testing.T) {
	m, app := newTestModel(t, nil)
	toHome(t, m)
	press(m, "2", "enter")
	require.Equal(t, router.ScreenExploreSectionGrid, m.Screen())
	sp, ok := router.Section(app.Router.Params())
	require.True(t, ok)
	assert.Equal(t, "topNews", sp.SectionKey)
	assert.Contains(t, plainView(m), "Top Heritage News searched")

	press(m, "right", "enter")
	assert.Equal(t, "e2", router.ArticleID(app.Router.Params()))

	press(m, "esc", "2", "down", "enter")
	require.Equal(t, router.ScreenExploreSectionList, m.Screen())
	require.Len(t, m.items(), 1)
	assert.Equal(t, "ev1", m.items()[0].ID)
}

func TestSection_PinnedIDs(t *testing.T) {
	m, _ := newTestModel(t, nil)
	toHome(t, m)
	m.navigate(router.ScreenExploreSectionGrid, router.SectionParams{ItemIDs: []string{"m1", "zzz", "t1"}})

	var ids []string
	for _, it := range m.items() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"m1", "t1"}, ids)
}

func TestSection_DefaultsToTopNews(t *testing.T) {
	m, _ := newTestModel(t, nil)
	toHome(t, m)
	m.navigate(router.ScreenExploreSectionList, nil)

	require.Len(t, m.items(), 2)
	assert.Equal(t, "e1", m.items()[0].ID)
}

func TestHistory_RestoresCursor(t *testing.T) {
	m, app := newTestModel(t, func(c *config.Config) { c.History = true })
	toHome(t, m)
	press(m, "2", "down", "down", "enter")
	require.Equal(t, router.ScreenExploreSectionList, m.Screen())

	press(m, "enter")
	require.Equal(t, router.ScreenDetail, m.Screen())
	assert.Equal(t, "m1", router.ArticleID(app.Router.Params()))

	press(m, "esc")
	assert.Equal(t, router.ScreenExploreSectionList, m.Screen())
	press(m, "esc")
	assert.Equal(t, router.ScreenExplore, m.Screen())
	assert.Equal(t, 2, m.cursor)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestKeyMap_Action(t *testing.T) {
	k := defaultKeyMap()
	tests := map[string]constants.Action{
		"up":        constants.ActionUp,
		"j":         constants.ActionDown,
		"h":         constants.ActionLeft,
		"right":     constants.ActionRight,
		"enter":     constants.ActionOpen,
		"esc":       constants.ActionBack,
		"b":         constants.ActionBookmark,
		"r":         constants.ActionRefresh,
		"tab":       constants.ActionNextTab,
		"shift+tab": constants.ActionPrevTab,
		"L":         constants.ActionLanguage,
		"/":         constants.ActionSearch,
		"q":         constants.ActionQuit,
		"x":         constants.ActionNone,
	}
	for in, want := range tests {
		assert.Equal(t, want.GetName(), k.action(keyMsg(in)).GetName(), in)
	}
}

func TestArticleMarkdown(t *testing.T) {
	it := content.Item{
		Title:     "Hampi",
		Category:  "Heritage",
		Publisher: "Heritage Pulse",
		Timestamp: "Just now",
		Keywords:  []string{"#Hampi"},
		Content: []content.Paragraph{{Spans: []content.Span{
			{Text: "Hampi", Highlight: true},
			{Text: " endures."},
		}}},
	}
	md := articleMarkdown(it)

	assert.Contains(t, md, "# Hampi\n")
	assert.Contains(t, md, "**Hampi** endures.")
	assert.Contains(t, md, "_Heritage · Heritage Pulse · Just now_")
}
