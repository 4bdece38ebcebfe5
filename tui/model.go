package tui

import (
	"github.com/beka-birhanu/maze-runner/game"
	"github.com/beka-birhanu/maze-runner/logger"
	"github.com/beka-birhanu/maze-runner/maze"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Each maze cell is drawn as a 4x2 block of terminal cells, behind one column
// and one line of outer wall.
const (
	cellWidth  = 4
	cellHeight = 2
	gridOffset = 1
)

// Model adapts terminal input to session events and renders the session.
type Model struct {
	session  *game.Session
	logger   *logger.Logger
	keys     KeyMap
	selector maze.Position // Keyboard stand-in for the mouse while picking a start.
	width    int
	height   int
}

// New returns a model driving session.
func New(session *game.Session, l *logger.Logger) Model {
	if l == nil {
		l = logger.Discard()
	}
	v := session.View()
	return Model{
		session:  session,
		logger:   l,
		keys:     newKeyMap(),
		selector: maze.Position{Row: v.Rows / 2, Col: v.Cols / 2},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		row, col := cellAt(msg.X, msg.Y)
		if m.session.Handle(game.ClickAtCell{Row: row, Col: col}) {
			m.selector = maze.Position{Row: row, Col: col}
		} else {
			m.logger.WithField("x", msg.X).WithField("y", msg.Y).Debug("click ignored")
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	d, isMove := m.keys.direction(msg)

	switch m.session.Phase() {
	case game.SelectingStart:
		if isMove {
			m.moveSelector(d)
		} else if key.Matches(msg, m.keys.Select) {
			m.session.Handle(game.ClickAtCell{Row: m.selector.Row, Col: m.selector.Col})
		}
	case game.Ready:
		if isMove {
			m.session.Handle(game.MoveIntent{Direction: d})
		} else {
			m.session.Handle(game.AnyKeyPressed{})
		}
	case game.Navigating:
		if isMove {
			m.session.Handle(game.MoveIntent{Direction: d})
		}
	}
}

// moveSelector steps the selector in d, staying inside the grid.
func (m *Model) moveSelector(d maze.Direction) {
	v := m.session.View()
	next := m.selector.Step(d)
	if next.Row < 0 || next.Row >= v.Rows || next.Col < 0 || next.Col >= v.Cols {
		return
	}
	m.selector = next
}

// cellAt converts a terminal position into grid coordinates. Positions on the
// outer wall or beyond map outside the grid.
func cellAt(x, y int) (int, int) {
	if x < gridOffset || y < gridOffset {
		return -1, -1
	}
	return (y - gridOffset) / cellHeight, (x - gridOffset) / cellWidth
}
