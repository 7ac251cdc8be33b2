package router

import "errors"

var (
	// ErrUnknownScreen is returned when navigating to a value outside the screen set.
	ErrUnknownScreen = errors.New("router: unknown screen")

	// ErrParams is returned when a navigation payload does not fit its target screen.
	ErrParams = errors.New("router: invalid parameters")
)
