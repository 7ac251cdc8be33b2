// Package heritage wires the Heritage Pulse core together.
//
// An App owns the navigation Router, the content Store, the message
// Catalog and the current language selection. Screens receive the App
// rather than reaching for package-level state.
package heritage

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/config"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/constants"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/content"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/internal"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/locale"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/router"
	"golang.org/x/text/language"
)

// Options configures App construction.
type Options struct {
	Config  *config.Config // Defaults to config.Default()
	Seed    io.Reader      // Alternative content seed; nil uses the embedded one
	Rand    *rand.Rand     // Random source for feed refresh; nil is unseeded
	Console bool           // Also write logs to stdout
}

// App is the application context handed to every screen.
type App struct {
	Router   *router.Router
	Store    *content.Store
	Catalog  *locale.Catalog
	Language *locale.Selection
	Theme    internal.Theme
	Config   config.Config

	logger *slog.Logger
}

// New builds the router, store and catalog from options.
func New(options Options) (*App, error) {
	cfg := config.Default()
	if options.Config != nil {
		cfg = *options.Config
	}

	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}
	internal.SetConsole(options.Console)
	internal.SetRawLogLevel(cfg.LogLevel)
	if internal.ParseLevel(cfg.LogLevel) == slog.LevelDebug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}
	logger := internal.GetLogger()
	core := internal.GetInternalLogger()

	catalog, err := locale.NewCatalog()
	if err != nil {
		return nil, NewInfrastructureError("load_catalog", err)
	}

	storeOpts := []content.Option{
		content.WithCatalog(catalog),
		content.WithLogger(core),
	}
	if options.Seed != nil {
		storeOpts = append(storeOpts, content.WithSeed(options.Seed))
	}
	if options.Rand != nil {
		storeOpts = append(storeOpts, content.WithRand(options.Rand))
	}
	store, err := content.New(storeOpts...)
	if err != nil {
		return nil, NewInfrastructureError("load_seed", err)
	}

	routerOpts := []router.Option{router.WithLogger(core)}
	if cfg.History {
		routerOpts = append(routerOpts, router.WithHistory(constants.DefaultHistoryLimit))
	}

	app := &App{
		Router:   router.New(routerOpts...),
		Store:    store,
		Catalog:  catalog,
		Language: locale.NewSelection(cfg.Language),
		Theme:    internal.ThemeByName(cfg.Theme),
		Config:   cfg,
		logger:   logger,
	}

	app.Router.OnTransition(func(t router.Transition) {
		logger.Debug("screen changed", "from", t.From.String(), "to", t.To.String(), "back", t.Back)
	})

	logger.Info("heritage pulse ready",
		"language", app.Lang(),
		"history", cfg.History,
		"items", len(store.AllItems(app.Lang())),
	)
	return app, nil
}

// Lang returns the current language code for store reads.
func (a *App) Lang() string {
	return a.Language.Code()
}

// Tag returns the current language.
func (a *App) Tag() language.Tag {
	return a.Language.Current()
}

// SetLanguage switches the current language and returns the one selected.
func (a *App) SetLanguage(code string) language.Tag {
	tag := a.Language.Set(code)
	a.logger.Info("language changed", "language", locale.Code(tag))
	return tag
}

// NextLanguage cycles to the following supported language.
func (a *App) NextLanguage() language.Tag {
	tag := a.Language.Next()
	a.logger.Info("language changed", "language", locale.Code(tag))
	return tag
}

// T returns the UI label id in the current language.
func (a *App) T(id string) string {
	return a.Catalog.Text(a.Tag(), id)
}

// Tf returns the UI label id in the current language rendered with data.
func (a *App) Tf(id string, data map[string]any) string {
	return a.Catalog.Localize(a.Tag(), id, data)
}

// OpenArticle shows the reader on id.
func (a *App) OpenArticle(id string) error {
	return a.Router.Navigate(router.ScreenDetail, router.DetailParams{ArticleID: id})
}

// OpenSection shows the grid listing of key.
func (a *App) OpenSection(key content.SectionKey, title, subtitle string) error {
	return a.Router.Navigate(router.ScreenExploreSectionGrid, router.SectionParams{
		SectionKey: string(key),
		Title:      title,
		Subtitle:   subtitle,
	})
}

// ToggleBookmark flips id in the bookmark set and returns the new state.
func (a *App) ToggleBookmark(id string) bool {
	saved := a.Store.ToggleBookmark(id)
	a.logger.Info("bookmark toggled", "id", id, "saved", saved)
	return saved
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close flushes and closes the log file.
func (a *App) Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
