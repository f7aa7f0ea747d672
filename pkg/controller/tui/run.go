package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/goerr/v2"
)

// Run starts the terminal UI and blocks until the user quits or ctx is done
func Run(ctx context.Context, dashboard Dashboard) error {
	p := tea.NewProgram(New(ctx, dashboard), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return goerr.Wrap(err, "terminal UI failed")
	}
	return nil
}
