package ui

import "github.com/samdwyer/tacband/internal/grid"

// HighlightOverlay holds the set of cells currently highlighted as
// reachable. The selection controller drives it; the renderer reads it.
type HighlightOverlay struct {
	cells grid.Set
}

// Draw replaces the highlighted cells.
func (o *HighlightOverlay) Draw(cells grid.Set) {
	o.cells = cells
}

// Clear removes the highlight.
func (o *HighlightOverlay) Clear() {
	o.cells = nil
}

// Cells returns the highlighted cells, or nil when no highlight is shown.
func (o *HighlightOverlay) Cells() grid.Set {
	return o.cells
}
