package ui

import "github.com/samdwyer/tacband/internal/grid"

// PathPreview traces the walking path from the selected unit to the hovered
// cell while a selection is active, and supplies the committed path when a
// move is accepted.
type PathPreview struct {
	armed     bool
	origin    grid.Coord
	reachable grid.Set
	target    grid.Coord
	hasTarget bool
}

// Arm activates the preview for a new selection.
func (p *PathPreview) Arm(origin grid.Coord, cells grid.Set) {
	p.armed = true
	p.origin = origin
	p.reachable = cells
	p.hasTarget = false
}

// Stop deactivates the preview.
func (p *PathPreview) Stop() {
	p.armed = false
	p.reachable = nil
	p.hasTarget = false
}

// Hover updates the previewed target as the pointer moves. Cells outside
// the reachable set get no preview.
func (p *PathPreview) Hover(cell grid.Coord) {
	if !p.armed || !p.reachable.Has(cell) {
		p.hasTarget = false
		return
	}
	p.target = cell
	p.hasTarget = true
}

// PathCells returns the currently previewed path for rendering, or nil when
// nothing is previewed.
func (p *PathPreview) PathCells() []grid.Coord {
	if !p.hasTarget {
		return nil
	}
	return p.Path(p.origin, p.target)
}

// Path returns the walk path between two cells: the horizontal leg first,
// then the vertical leg. The starting cell is excluded, the destination
// included.
func (p *PathPreview) Path(from, to grid.Coord) []grid.Coord {
	path := make([]grid.Coord, 0, grid.Manhattan(from, to))
	x, y := from.X, from.Y
	for x != to.X {
		if to.X > x {
			x++
		} else {
			x--
		}
		path = append(path, grid.Coord{X: x, Y: y})
	}
	for y != to.Y {
		if to.Y > y {
			y++
		} else {
			y--
		}
		path = append(path, grid.Coord{X: x, Y: y})
	}
	return path
}
