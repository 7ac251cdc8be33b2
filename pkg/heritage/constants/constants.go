// Package constants defines shared constants, types, and configuration values
// used throughout Heritage Pulse.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the config package.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	LanguageEnvVar    = "HERITAGE_LANG"
	LogLevelEnvVar    = "HERITAGE_LOG_LEVEL"
	LogPathEnvVar     = "HERITAGE_LOG_PATH"
	HistoryEnvVar     = "HERITAGE_HISTORY"
	ThemeEnvVar       = "HERITAGE_THEME"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Action is an abstract user intent, mapped from physical keys by the shell.
// Screens react to actions, never to raw keys.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionOpen
	ActionBack
	ActionBookmark
	ActionRefresh
	ActionNextTab
	ActionPrevTab
	ActionLanguage
	ActionSearch
	ActionQuit
)

func (a Action) GetName() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionOpen:
		return "Open"
	case ActionBack:
		return "Back"
	case ActionBookmark:
		return "Bookmark"
	case ActionRefresh:
		return "Refresh"
	case ActionNextTab:
		return "NextTab"
	case ActionPrevTab:
		return "PrevTab"
	case ActionLanguage:
		return "Language"
	case ActionSearch:
		return "Search"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Default timing values.
const (
	DefaultSplashDelay  = 1500 * time.Millisecond // Splash screen auto-advance
	DefaultToastTimeout = 2 * time.Second         // How long a status toast stays up
	DefaultHistoryLimit = 32                      // History frames kept when history is on
)
