package game

import "github.com/beka-birhanu/maze-runner/maze"

// Event is a logical input already translated into grid terms.
type Event interface {
	event()
}

// ClickAtCell selects the cell at (Row, Col).
type ClickAtCell struct {
	Row int
	Col int
}

// AnyKeyPressed reports a key press that carries no move.
type AnyKeyPressed struct{}

// MoveIntent asks to step the cursor one cell in Direction.
type MoveIntent struct {
	Direction maze.Direction
}

func (ClickAtCell) event()   {}
func (AnyKeyPressed) event() {}
func (MoveIntent) event()    {}
