package heritage

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/config"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/content"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/locale"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	app, err := New(Options{Config: &cfg, Rand: rand.New(rand.NewPCG(3, 5))})
	require.NoError(t, err)
	return app
}

func TestNew(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) {
		c.Language = "ta"
		c.Theme = "dark"
	})

	assert.Equal(t, router.ScreenSplash, app.Router.Current())
	assert.Equal(t, "ta", app.Lang())
	assert.Equal(t, locale.Tamil, app.Tag())
	assert.Equal(t, "dark", app.Theme.Name)
	assert.Equal(t, "முகப்பு", app.T("tab_home"))
}

func TestNew_BadSeedIsInfrastructureError(t *testing.T) {
	cfg := config.Default()
	_, err := New(Options{Config: &cfg, Seed: strings.NewReader("[[trending]]\ntitle = \"x\"\n")})

	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, content.ErrInvalidSeed)
}

func TestApp_ReaderFlow(t *testing.T) {
	app := newTestApp(t, nil)
	require.NoError(t, app.Router.Navigate(router.ScreenHome, nil))

	require.NoError(t, app.OpenArticle("l1"))
	app.Router.SetTabBarVisible(false)

	id := router.ArticleID(app.Router.Params())
	it, err := app.Store.Lookup(id, app.Lang())
	require.NoError(t, err)
	assert.Equal(t, "New Excavations at Keezhadi", it.Title)
	assert.Equal(t, "4.3k", it.Likes)
	assert.False(t, app.Router.ShouldShowTabs())

	assert.True(t, app.ToggleBookmark(id))
	assert.Contains(t, app.Store.SectionIDs(content.SectionSaved), "l1")

	app.Router.GoBack()
	assert.Equal(t, router.ScreenHome, app.Router.Current())
	assert.True(t, app.Router.ShouldShowTabs())
}

func TestApp_OpenSection(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.History = true })
	require.NoError(t, app.Router.Navigate(router.ScreenExplore, nil))
	require.NoError(t, app.OpenSection(content.SectionMuseums, "Museums", ""))
	require.NoError(t, app.OpenArticle("m1"))

	state := app.Router.GoBack()
	sp, ok := router.Section(state.Params)
	require.True(t, ok)
	assert.Equal(t, string(content.SectionMuseums), sp.SectionKey)
}

func TestApp_SetLanguage(t *testing.T) {
	app := newTestApp(t, nil)

	assert.Equal(t, locale.Telugu, app.SetLanguage("te"))
	assert.Equal(t, "హోమ్", app.T("tab_home"))
	assert.Equal(t, "వైభవోపేత మైసూరు దసరా", app.Store.ItemByID("t1", app.Lang()).Title)

	assert.Equal(t, locale.English, app.SetLanguage("fr"))
	assert.Equal(t, "Home", app.T("tab_home"))
}

func TestInfrastructureError(t *testing.T) {
	base := errors.New("disk on fire")
	err := fmt.Errorf("wrapped: %w", NewInfrastructureError("load_seed", base))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "heritage: load_seed: disk on fire", NewInfrastructureError("load_seed", base).Error())
	assert.Equal(t, "heritage: run_shell", NewInfrastructureError("run_shell", nil).Error())
	assert.False(t, IsInfrastructureError(base))
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(fmt.Errorf("login: %w", ErrCancelled)))
	assert.False(t, IsCancelled(errors.New("other")))
}
