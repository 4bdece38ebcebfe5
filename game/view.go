package game

import "github.com/beka-birhanu/maze-runner/maze"

// View is a read-only snapshot of a session for rendering.
type View struct {
	Phase          Phase
	Rows           int
	Cols           int
	TargetDistance int    // Distance from start to target once placed.
	Prompt         string // Only set in the Ready phase.

	grid   *maze.Grid
	placed bool
	start  maze.Position
	target maze.Position
	cursor maze.Position
}

// View returns the current snapshot. It stays valid until the next event.
func (s *Session) View() View {
	v := View{
		Phase:          s.phase,
		Rows:           s.grid.Rows(),
		Cols:           s.grid.Cols(),
		TargetDistance: s.targetDist,
		grid:           s.grid,
		placed:         s.placed,
		start:          s.start,
		target:         s.target,
		cursor:         s.cursor,
	}
	if s.phase == Ready {
		v.Prompt = ReadyPrompt
	}
	return v
}

// Walls returns the wall flags of (row, col), indexed by maze.Direction.
func (v View) Walls(row, col int) [4]bool {
	return v.grid.Walls(row, col)
}

// Start returns the start marker, if placed.
func (v View) Start() (maze.Position, bool) {
	return v.start, v.placed
}

// Target returns the target marker, if placed.
func (v View) Target() (maze.Position, bool) {
	return v.target, v.placed
}

// Cursor returns the moving marker, if placed.
func (v View) Cursor() (maze.Position, bool) {
	return v.cursor, v.placed
}

// String renders the grid in ASCII with S, T and @ markers.
func (v View) String() string {
	if !v.placed {
		return v.grid.String()
	}
	marks := map[maze.Position]byte{v.start: 'S', v.target: 'T'}
	if v.Phase == Navigating {
		marks[v.cursor] = '@'
	}
	return v.grid.Annotate(marks)
}
