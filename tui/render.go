package tui

import (
	"strings"

	"github.com/beka-birhanu/maze-runner/game"
	"github.com/beka-birhanu/maze-runner/maze"
	"github.com/charmbracelet/lipgloss"
)

var (
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	startStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	targetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	selectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Padding(1, 0)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// View implements tea.Model.
func (m Model) View() string {
	v := m.session.View()

	var b strings.Builder
	b.WriteString(m.renderGrid(v))

	if v.Prompt != "" {
		width := v.Cols*cellWidth + gridOffset
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(v.Prompt)))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(m.status(v)))
	return b.String()
}

func (m Model) renderGrid(v game.View) string {
	var b strings.Builder

	b.WriteString(wallStyle.Render("+" + strings.Repeat("---+", v.Cols)))
	b.WriteString("\n")

	for row := 0; row < v.Rows; row++ {
		b.WriteString(wallStyle.Render("|"))
		for col := 0; col < v.Cols; col++ {
			b.WriteString(m.renderCell(v, maze.Position{Row: row, Col: col}))
			if v.Walls(row, col)[maze.Right] {
				b.WriteString(wallStyle.Render("|"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		b.WriteString(wallStyle.Render("+"))
		for col := 0; col < v.Cols; col++ {
			if v.Walls(row, col)[maze.Down] {
				b.WriteString(wallStyle.Render("---+"))
			} else {
				b.WriteString("   " + wallStyle.Render("+"))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCell draws the three interior columns of the cell at p. The cursor
// covers the start and target markers when they share a cell.
func (m Model) renderCell(v game.View, p maze.Position) string {
	if v.Phase == game.SelectingStart {
		if p == m.selector {
			return " " + selectorStyle.Render("+") + " "
		}
		return "   "
	}

	if cursor, _ := v.Cursor(); cursor == p && v.Phase == game.Navigating {
		return " " + cursorStyle.Render("@") + " "
	}
	if target, _ := v.Target(); target == p {
		return " " + targetStyle.Render("●") + " "
	}
	if start, _ := v.Start(); start == p {
		return " " + startStyle.Render("●") + " "
	}
	return "   "
}

func (m Model) status(v game.View) string {
	switch v.Phase {
	case game.SelectingStart:
		return "Click a cell, or move with arrows/wasd and press enter, to carve the maze. esc quits."
	case game.Ready:
		return "Start and target placed."
	default:
		return "Navigate with arrows/wasd. esc quits."
	}
}
