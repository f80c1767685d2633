package grid

// Shape answers whether a coordinate lies within the playable area.
// The board core consumes shapes through this predicate only; what the
// area looks like is the scene's concern.
type Shape interface {
	Contains(c Coord) bool
}

// Rect is a rectangular playable area with its origin at (0,0).
type Rect struct {
	Width, Height int
}

// Contains returns true if c lies inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= 0 && c.X < r.Width && c.Y >= 0 && c.Y < r.Height
}

// Center returns the center coordinate of the rectangle.
func (r Rect) Center() Coord {
	return Coord{r.Width / 2, r.Height / 2}
}
