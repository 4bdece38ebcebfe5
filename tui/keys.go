package tui

import (
	"github.com/beka-birhanu/maze-runner/maze"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const spacebar = " "

// KeyMap defines the keybindings of the maze screen.
type KeyMap struct {
	Up    key.Binding
	Right key.Binding
	Down  key.Binding
	Left  key.Binding

	// Places the start at the selector while picking a start.
	Select key.Binding

	Quit key.Binding
}

func newKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "move up"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", spacebar),
			key.WithHelp("enter/space", "start here"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// direction maps arrow keys and WASD to a move direction.
func (keys KeyMap) direction(msg tea.KeyMsg) (maze.Direction, bool) {
	switch {
	case key.Matches(msg, keys.Up):
		return maze.Up, true
	case key.Matches(msg, keys.Right):
		return maze.Right, true
	case key.Matches(msg, keys.Down):
		return maze.Down, true
	case key.Matches(msg, keys.Left):
		return maze.Left, true
	}
	return 0, false
}
