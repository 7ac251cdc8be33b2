package router

import (
	"fmt"
	"strings"
)

// Screen is a type-safe identifier for a full-screen view.
// The set is closed: values outside the declared constants are rejected
// by Navigate.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenHome
	ScreenExplore
	ScreenExploreSectionList
	ScreenExploreSectionGrid
	ScreenSaved
	ScreenProfile
	ScreenDetail
	ScreenRegister
	ScreenLogin
	ScreenSignup
	ScreenForgotPassword
	ScreenNotifications
	ScreenPrivacy
	ScreenLanguage

	screenCount
)

var screenNames = [...]string{
	ScreenSplash:             "SPLASH",
	ScreenHome:               "HOME",
	ScreenExplore:            "EXPLORE",
	ScreenExploreSectionList: "EXPLORE_SECTION_LIST",
	ScreenExploreSectionGrid: "EXPLORE_SECTION_GRID",
	ScreenSaved:              "SAVED",
	ScreenProfile:            "PROFILE",
	ScreenDetail:             "DETAIL",
	ScreenRegister:           "REGISTER",
	ScreenLogin:              "LOGIN",
	ScreenSignup:             "SIGNUP",
	ScreenForgotPassword:     "FORGOT_PASSWORD",
	ScreenNotifications:      "NOTIFICATIONS",
	ScreenPrivacy:            "PRIVACY",
	ScreenLanguage:           "LANGUAGE",
}

// Valid reports whether s is a member of the screen set.
func (s Screen) Valid() bool {
	return s >= 0 && s < screenCount
}

func (s Screen) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Screen(%d)", int(s))
	}
	return screenNames[s]
}

// IsTab reports whether s is one of the bottom tab bar destinations.
func (s Screen) IsTab() bool {
	switch s {
	case ScreenHome, ScreenExplore, ScreenSaved, ScreenProfile:
		return true
	}
	return false
}

// Screens returns every screen in declaration order.
func Screens() []Screen {
	out := make([]Screen, 0, screenCount)
	for s := Screen(0); s < screenCount; s++ {
		out = append(out, s)
	}
	return out
}

// Tabs returns the tab bar destinations in display order.
func Tabs() []Screen {
	return []Screen{ScreenHome, ScreenExplore, ScreenSaved, ScreenProfile}
}

// ParseScreen maps a screen name such as "DETAIL" or "explore_section_grid"
// back to its Screen.
func ParseScreen(name string) (Screen, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range screenNames {
		if n == upper {
			return Screen(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}
