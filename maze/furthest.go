package maze

// FurthestCell runs a breadth-first search from start over the open walls of g
// and returns a cell of maximum distance together with that distance.
//
// The first cell discovered at a strictly greater distance replaces the current
// best, so the result is the first cell found on the deepest layer. Any cell may
// be returned, not only cells on the grid boundary. If start has no open walls
// the result is start itself at distance 0.
func FurthestCell(g *Grid, start Position) (Position, int) {
	best, bestDist, _ := search(g, start)
	return best, bestDist
}

// Distances returns the breadth-first distance of every cell from start, or -1
// for cells that cannot be reached.
func Distances(g *Grid, start Position) [][]int {
	_, _, dist := search(g, start)
	return dist
}

func search(g *Grid, start Position) (Position, int, [][]int) {
	dist := make([][]int, g.rows)
	for i := range dist {
		dist[i] = make([]int, g.cols)
		for j := range dist[i] {
			dist[i][j] = -1
		}
	}

	if !g.InBounds(start.Row, start.Col) {
		return start, 0, dist
	}

	visited := NewVisitedSet(g.rows, g.cols)
	visited[start.Row][start.Col] = true
	dist[start.Row][start.Col] = 0

	best, maxDist := start, 0
	queue := []Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range AllDirections {
			if !g.CanMove(cur.Row, cur.Col, d) {
				continue
			}

			n := cur.Step(d)
			if !g.InBounds(n.Row, n.Col) || visited[n.Row][n.Col] {
				continue
			}

			visited[n.Row][n.Col] = true
			dist[n.Row][n.Col] = dist[cur.Row][cur.Col] + 1
			queue = append(queue, n)

			if dist[n.Row][n.Col] > maxDist {
				maxDist = dist[n.Row][n.Col]
				best = n
			}
		}
	}

	return best, maxDist, dist
}
