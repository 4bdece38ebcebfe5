// Package tui provides a terminal user interface for playing a maze session.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

const framesPerSecond = 60

// Run starts the terminal user interface and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(framesPerSecond),
		tea.WithContext(ctx),
	)

	m.logger.Info("terminal interface started")
	if _, err := p.Run(); err != nil {
		if err := context.Cause(ctx); errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	m.logger.Info("terminal interface stopped")
	return nil
}
