// Package shell is the terminal front end of Heritage Pulse. A single root
// model reads the router's current screen on every frame and renders the
// matching view with the bottom tab bar beneath it.
package shell

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the shell until the user quits or ctx is cancelled.
func Run(ctx context.Context, app *heritage.App) error {
	p := tea.NewProgram(New(app), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return heritage.ErrCancelled
		}
		return heritage.NewInfrastructureError("run_shell", err)
	}
	return nil
}
