// Package router tracks which screen the application is showing.
//
// A Router holds three pieces of state: the current Screen, the Params the
// screen was opened with, and whether the bottom tab bar is visible. Screens
// never import each other to cause a transition; they call Navigate and the
// root renderer resolves the new current screen.
//
// # Basic Usage
//
//	r := router.New()
//
//	r.OnTransition(func(t router.Transition) {
//	    log.Printf("%s -> %s", t.From, t.To)
//	})
//
//	_ = r.Navigate(router.ScreenHome, nil)
//	_ = r.Navigate(router.ScreenDetail, router.DetailParams{ArticleID: "t1"})
//
//	// the reader hides the tab bar while it is shown
//	r.SetTabBarVisible(false)
//
//	r.GoBack() // back on ScreenHome, tab bar visible again
//
// # Params
//
// Params is a closed union of per-screen payloads. ScreenDetail requires a
// DetailParams with an article id, the explore section screens take an
// optional SectionParams, and every other screen takes nil. Navigate
// rejects payloads that do not fit with ErrParams. Each Navigate replaces
// the previous params entirely.
//
// # Back Navigation
//
// By default GoBack jumps to a fixed fallback screen (ScreenHome) rather
// than popping history. Routers built WithHistory keep a Stack of frames
// instead, so GoBack restores the previous screen with its params and any
// resume state saved through SaveResume. Navigating to a tab root clears
// the stack.
package router
