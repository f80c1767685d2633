// Package grid provides the coordinate types and playable-area shapes
// that the board, reachability, and tactics layers are built on.
package grid

// Coord is a discrete grid position. Identity is by value; there is no
// implicit wraparound at any edge.
type Coord struct {
	X, Y int
}

// Manhattan returns the Manhattan distance between two coordinates.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Neighbors4 returns the 4-connected neighbors of c: left, right, up, down.
// Diagonal cells are never neighbors.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
