package game

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/maze-runner/logger"
	"github.com/beka-birhanu/maze-runner/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, rows, cols int, seed int64) *Session {
	t.Helper()

	s, err := NewSession(&Config{Rows: rows, Cols: cols, Rand: rand.New(rand.NewSource(seed))})
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	t.Run("Invalid dimensions", func(t *testing.T) {
		_, err := NewSession(&Config{Rows: 0, Cols: 5})
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("Initial state", func(t *testing.T) {
		s, err := NewSession(&Config{Rows: 4, Cols: 6})
		require.NoError(t, err)

		v := s.View()
		assert.Equal(t, SelectingStart, v.Phase)
		assert.Equal(t, 4, v.Rows)
		assert.Equal(t, 6, v.Cols)
		assert.Empty(t, v.Prompt)

		_, ok := v.Start()
		assert.False(t, ok)
		_, ok = v.Target()
		assert.False(t, ok)
		_, ok = v.Cursor()
		assert.False(t, ok)
		assert.Equal(t, [4]bool{true, true, true, true}, v.Walls(0, 0))
	})
}

func TestSessionScenario(t *testing.T) {
	s := newTestSession(t, 5, 5, 11)

	require.True(t, s.Handle(ClickAtCell{Row: 2, Col: 2}))
	v := s.View()
	assert.Equal(t, Ready, v.Phase)
	assert.Equal(t, ReadyPrompt, v.Prompt)

	start, ok := v.Start()
	require.True(t, ok)
	assert.Equal(t, maze.Position{Row: 2, Col: 2}, start)
	cursor, _ := v.Cursor()
	assert.Equal(t, maze.Position{Row: 2, Col: 2}, cursor)
	target, ok := v.Target()
	require.True(t, ok)

	expected, dist := maze.FurthestCell(s.grid, start)
	assert.Equal(t, expected, target)
	assert.Equal(t, dist, v.TargetDistance)
	assert.Equal(t, 24, s.grid.RemovedPairs())

	require.True(t, s.Handle(AnyKeyPressed{}))
	assert.Equal(t, Navigating, s.Phase())
	assert.Empty(t, s.View().Prompt)

	canMove := s.grid.CanMove(2, 2, maze.Right)
	assert.Equal(t, canMove, s.Handle(MoveIntent{Direction: maze.Right}))
	cursor, _ = s.View().Cursor()
	if canMove {
		assert.Equal(t, maze.Position{Row: 2, Col: 3}, cursor)
	} else {
		assert.Equal(t, maze.Position{Row: 2, Col: 2}, cursor)
	}
}

func TestSessionOutOfBoundsClick(t *testing.T) {
	s := newTestSession(t, 5, 5, 3)

	for _, click := range []ClickAtCell{{Row: -1, Col: 0}, {Row: 5, Col: 0}, {Row: 0, Col: 5}, {Row: 0, Col: -3}} {
		assert.False(t, s.Handle(click))
		v := s.View()
		assert.Equal(t, SelectingStart, v.Phase)
		_, ok := v.Start()
		assert.False(t, ok)
		assert.Zero(t, s.grid.RemovedPairs())
	}
}

func TestSessionIgnoresUnrelatedEvents(t *testing.T) {
	s := newTestSession(t, 6, 6, 5)

	// Keys mean nothing before a start is placed.
	assert.False(t, s.Handle(AnyKeyPressed{}))
	assert.False(t, s.Handle(MoveIntent{Direction: maze.Up}))
	assert.Equal(t, SelectingStart, s.Phase())

	require.True(t, s.Handle(ClickAtCell{Row: 0, Col: 0}))
	walls := s.View().String()

	// A second click neither moves the start nor recarves.
	assert.False(t, s.Handle(ClickAtCell{Row: 3, Col: 3}))
	start, _ := s.View().Start()
	assert.Equal(t, maze.Position{Row: 0, Col: 0}, start)
	assert.Equal(t, walls, s.View().String())

	require.True(t, s.Handle(AnyKeyPressed{}))
	assert.False(t, s.Handle(AnyKeyPressed{}))
	assert.False(t, s.Handle(ClickAtCell{Row: 1, Col: 1}))
	assert.Equal(t, Navigating, s.Phase())
}

func TestSessionMoveKeyLeavesReady(t *testing.T) {
	s := newTestSession(t, 4, 4, 8)
	require.True(t, s.Handle(ClickAtCell{Row: 0, Col: 0}))

	// The corner is linked to the tree through Right or Down.
	d := maze.Down
	if s.grid.CanMove(0, 0, maze.Right) {
		d = maze.Right
	}

	assert.True(t, s.Handle(MoveIntent{Direction: d}))
	assert.Equal(t, Navigating, s.Phase())
	cursor, _ := s.View().Cursor()
	assert.Equal(t, maze.Position{Row: 0, Col: 0}.Step(d), cursor)
}

func TestSessionMovesFollowWalls(t *testing.T) {
	s := newTestSession(t, 8, 8, 21)
	require.True(t, s.Handle(ClickAtCell{Row: 4, Col: 4}))
	require.True(t, s.Handle(AnyKeyPressed{}))

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		before, _ := s.View().Cursor()
		d := maze.AllDirections[rng.Intn(4)]
		open := s.grid.CanMove(before.Row, before.Col, d)

		assert.Equal(t, open, s.Handle(MoveIntent{Direction: d}))
		after, _ := s.View().Cursor()
		if open {
			assert.Equal(t, before.Step(d), after)
		} else {
			assert.Equal(t, before, after)
		}
		assert.True(t, s.grid.InBounds(after.Row, after.Col))
	}
}

func TestSessionReachingTargetDoesNotEnd(t *testing.T) {
	s := newTestSession(t, 7, 7, 13)
	require.True(t, s.Handle(ClickAtCell{Row: 3, Col: 3}))
	require.True(t, s.Handle(AnyKeyPressed{}))

	target, _ := s.View().Target()
	toTarget := maze.Distances(s.grid, target)

	// Walk down the distance gradient towards the target.
	for {
		cursor, _ := s.View().Cursor()
		if cursor == target {
			break
		}
		stepped := false
		for _, d := range maze.AllDirections {
			n := cursor.Step(d)
			if s.grid.CanMove(cursor.Row, cursor.Col, d) && toTarget[n.Row][n.Col] < toTarget[cursor.Row][cursor.Col] {
				require.True(t, s.Handle(MoveIntent{Direction: d}))
				stepped = true
				break
			}
		}
		require.True(t, stepped)
	}

	assert.Equal(t, Navigating, s.Phase())
	for _, d := range maze.AllDirections {
		if s.grid.CanMove(target.Row, target.Col, d) {
			assert.True(t, s.Handle(MoveIntent{Direction: d}))
			break
		}
	}
	assert.Equal(t, Navigating, s.Phase())
}

func TestSessionLogs(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New("SESSION", "", &buf)
	require.NoError(t, err)

	s, err := NewSession(&Config{Rows: 3, Cols: 3, Rand: rand.New(rand.NewSource(1)), Logger: l})
	require.NoError(t, err)
	require.True(t, s.Handle(ClickAtCell{Row: 1, Col: 1}))

	out := buf.String()
	assert.Contains(t, out, "[SESSION] [INFO] maze carved")
	assert.Contains(t, out, "start=(1,1)")
	assert.Contains(t, out, "session="+s.ID().String())
	assert.Contains(t, out, "phase changed")
}

func TestViewString(t *testing.T) {
	s := newTestSession(t, 1, 3, 1)
	assert.Equal(t, "+---+---+---+\n|   |   |   |\n+---+---+---+\n", s.View().String())

	require.True(t, s.Handle(ClickAtCell{Row: 0, Col: 0}))
	assert.Equal(t, "+---+---+---+\n| S       T |\n+---+---+---+\n", s.View().String())

	require.True(t, s.Handle(MoveIntent{Direction: maze.Right}))
	assert.Equal(t, "+---+---+---+\n| S   @   T |\n+---+---+---+\n", s.View().String())
}
