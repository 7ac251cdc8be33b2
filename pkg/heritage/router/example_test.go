package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/router"
)

// ReaderResume is the position the article reader saves before leaving.
type ReaderResume struct {
	Index int
}

// Example demonstrates the default fallback back behaviour.
func Example() {
	r := router.New()

	r.OnTransition(func(t router.Transition) {
		fmt.Printf("%s -> %s\n", t.From, t.To)
	})

	_ = r.Navigate(router.ScreenHome, nil)
	_ = r.Navigate(router.ScreenDetail, router.DetailParams{ArticleID: "l1"})
	r.SetTabBarVisible(false)

	fmt.Println("article:", router.ArticleID(r.Params()))
	fmt.Println("tabs:", r.ShouldShowTabs())

	state := r.GoBack()
	fmt.Println("tabs:", state.TabBarVisible)

	// Output:
	// SPLASH -> HOME
	// HOME -> DETAIL
	// article: l1
	// tabs: false
	// DETAIL -> HOME
	// tabs: true
}

// Example_history demonstrates stack-based back navigation with resume state.
func Example_history() {
	r := router.New(router.WithInitial(router.ScreenHome), router.WithHistory(0))

	_ = r.Navigate(router.ScreenExploreSectionGrid, router.SectionParams{
		SectionKey: "museums",
		Title:      "Museums",
	})
	_ = r.Navigate(router.ScreenDetail, router.DetailParams{ArticleID: "m1"})
	r.SaveResume(ReaderResume{Index: 3})
	_ = r.Navigate(router.ScreenPrivacy, nil)

	fmt.Println(r.Breadcrumbs())

	state := r.GoBack()
	fmt.Printf("%s resume=%d\n", state.Screen, state.Resume.(ReaderResume).Index)

	state = r.GoBack()
	section, _ := router.Section(state.Params)
	fmt.Printf("%s section=%s\n", state.Screen, section.SectionKey)

	// Output:
	// [HOME EXPLORE_SECTION_GRID DETAIL PRIVACY]
	// DETAIL resume=3
	// EXPLORE_SECTION_GRID section=museums
}
