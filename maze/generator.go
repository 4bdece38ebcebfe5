package maze

import "math/rand"

// VisitedSet marks cells reached during a single traversal.
type VisitedSet [][]bool

// NewVisitedSet returns an all-false set sized for a rows x cols grid.
func NewVisitedSet(rows, cols int) VisitedSet {
	v := make(VisitedSet, rows)
	for i := range v {
		v[i] = make([]bool, cols)
	}
	return v
}

// carveFrame is one level of the depth-first walk: a cell, the order in which
// its directions are tried, and how many of them have been tried already.
type carveFrame struct {
	pos  Position
	dirs [4]Direction
	next int
}

// Carve turns g into a perfect maze rooted at start using randomized
// depth-first search. Every cell reachable from start is visited and linked to
// the tree exactly once, so a fresh grid ends up with rows*cols-1 open wall
// pairs. visited must be all false for cells not yet carved.
//
// The walk keeps its own stack of frames, so grid size does not bound the
// goroutine stack.
func Carve(g *Grid, start Position, visited VisitedSet, rng *rand.Rand) {
	if !g.InBounds(start.Row, start.Col) {
		return
	}

	visited[start.Row][start.Col] = true
	stack := []carveFrame{newCarveFrame(start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1] // Backtrack
			continue
		}

		d := top.dirs[top.next]
		top.next++

		n := top.pos.Step(d)
		if !g.InBounds(n.Row, n.Col) || visited[n.Row][n.Col] {
			continue
		}

		g.RemoveWallPair(top.pos.Row, top.pos.Col, d)
		visited[n.Row][n.Col] = true
		stack = append(stack, newCarveFrame(n, rng))
	}
}

// newCarveFrame returns a frame for pos with its directions in random order.
func newCarveFrame(pos Position, rng *rand.Rand) carveFrame {
	f := carveFrame{pos: pos, dirs: AllDirections}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}
