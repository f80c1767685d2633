package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tacband/internal/entity"
	"github.com/samdwyer/tacband/internal/grid"
	"github.com/samdwyer/tacband/internal/unitdata"
)

// Renderer handles drawing the board, overlays, and units to the screen.
type Renderer struct {
	screen  *Screen
	overlay *HighlightOverlay
	preview *PathPreview
	styles  map[string]tcell.Style
}

// NewRenderer creates a renderer that reads highlight and preview state from
// the given collaborators. Unit styles come from the archetype registry.
func NewRenderer(screen *Screen, overlay *HighlightOverlay, preview *PathPreview, registry *unitdata.Registry) *Renderer {
	styles := make(map[string]tcell.Style)
	for _, def := range registry.All() {
		styles[def.ID] = tcell.StyleDefault.Foreground(def.TCellColor()).Bold(true)
	}
	return &Renderer{
		screen:  screen,
		overlay: overlay,
		preview: preview,
		styles:  styles,
	}
}

// Render draws the playable area, the reachable-cell highlight, the path
// preview, and the units at their display positions.
func (r *Renderer) Render(area grid.Rect, roster *entity.Roster, status string) {
	r.screen.Clear()

	for y := 0; y < area.Height; y++ {
		for x := 0; x < area.Width; x++ {
			r.screen.SetContent(x, y, '.', r.floorStyle(x, y))
		}
	}

	highlight := tcell.StyleDefault.
		Foreground(tcell.ColorLightSkyBlue).
		Background(tcell.ColorNavy)
	for c := range r.overlay.Cells() {
		r.screen.SetContent(c.X, c.Y, '.', highlight)
	}

	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, c := range r.preview.PathCells() {
		r.screen.SetContent(c.X, c.Y, '+', pathStyle)
	}

	for _, u := range roster.Units() {
		style, ok := r.styles[u.DefID]
		if !ok {
			style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		}
		pos := u.DisplayCell()
		r.screen.SetContent(pos.X, pos.Y, u.Glyph, style)
	}

	r.RenderMessage(status, area.Height+1)
	r.screen.Show()
}

// floorStyle returns the checkerboard floor style for a cell.
func (r *Renderer) floorStyle(x, y int) tcell.Style {
	if (x+y)%2 == 0 {
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
