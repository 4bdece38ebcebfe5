package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/beka-birhanu/maze-runner/logger"
	"github.com/beka-birhanu/maze-runner/maze"
	"github.com/google/uuid"
)

// Session-related errors.
var (
	ErrInvalidDimensions = errors.New("session grid dimensions must be positive")
)

// ReadyPrompt is shown while the session waits for the first key press.
const ReadyPrompt = "Start Your Game!!! (Press any key)"

// Phase governs which events a session reacts to.
type Phase int

const (
	SelectingStart Phase = iota // Waiting for a click that places the start.
	Ready                       // Maze carved, waiting for any key.
	Navigating                  // Cursor follows move intents.
)

func (p Phase) String() string {
	switch p {
	case SelectingStart:
		return "SelectingStart"
	case Ready:
		return "Ready"
	case Navigating:
		return "Navigating"
	default:
		return "Unknown"
	}
}

// Config is used to pass the required parameters to initialize a new Session.
type Config struct {
	Rows   int            // Number of grid rows.
	Cols   int            // Number of grid columns.
	Rand   *rand.Rand     // Source for carving. Nil seeds one from the clock.
	Logger *logger.Logger // Nil discards session logs.
}

// Session owns the maze grid and drives the pick start, ready, navigate cycle.
// It is not safe for concurrent use; the input loop that feeds it events is its
// only caller.
type Session struct {
	id     uuid.UUID
	grid   *maze.Grid
	rng    *rand.Rand
	logger *logger.Logger

	phase      Phase
	placed     bool // start, cursor and target are set
	start      maze.Position
	cursor     maze.Position
	target     maze.Position
	targetDist int
}

// NewSession creates a session in the SelectingStart phase over an uncarved grid.
func NewSession(c *Config) (*Session, error) {
	grid, err := maze.New(c.Rows, c.Cols)
	if err != nil {
		return nil, ErrInvalidDimensions
	}

	rng := c.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	id := uuid.New()
	l := c.Logger
	if l == nil {
		l = logger.Discard()
	}

	return &Session{
		id:     id,
		grid:   grid,
		rng:    rng,
		logger: l.WithField("session", id),
		phase:  SelectingStart,
	}, nil
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Handle applies e to the session and reports whether any state changed.
// Events that mean nothing in the current phase are ignored.
func (s *Session) Handle(e Event) bool {
	switch s.phase {
	case SelectingStart:
		if click, ok := e.(ClickAtCell); ok {
			return s.placeStart(click.Row, click.Col)
		}
	case Ready:
		switch e := e.(type) {
		case AnyKeyPressed:
			s.setPhase(Navigating)
			return true
		case MoveIntent:
			// A move key is also a key press: it starts navigation and is
			// then applied as a move.
			s.setPhase(Navigating)
			s.move(e.Direction)
			return true
		}
	case Navigating:
		if m, ok := e.(MoveIntent); ok {
			return s.move(m.Direction)
		}
	}
	return false
}

// placeStart carves the maze from (row, col) and locates the target.
func (s *Session) placeStart(row, col int) bool {
	if !s.grid.InBounds(row, col) {
		s.logger.Debug("ignoring click outside the grid")
		return false
	}

	start := maze.Position{Row: row, Col: col}
	maze.Carve(s.grid, start, maze.NewVisitedSet(s.grid.Rows(), s.grid.Cols()), s.rng)
	s.target, s.targetDist = maze.FurthestCell(s.grid, start)
	s.start, s.cursor = start, start
	s.placed = true

	s.logger.
		WithField("start", start).
		WithField("target", s.target).
		WithField("distance", s.targetDist).
		WithField("pairs", s.grid.RemovedPairs()).
		Info("maze carved")

	s.setPhase(Ready)
	return true
}

// move steps the cursor in d when the wall on that side is open.
func (s *Session) move(d maze.Direction) bool {
	if !s.grid.CanMove(s.cursor.Row, s.cursor.Col, d) {
		return false
	}
	s.cursor = s.grid.Neighbor(s.cursor, d)
	s.logger.WithField("cursor", s.cursor).Debug("moved " + d.String())
	return true
}

func (s *Session) setPhase(p Phase) {
	s.logger.WithField("from", s.phase).WithField("to", p).Info("phase changed")
	s.phase = p
}
