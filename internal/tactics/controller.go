package tactics

import (
	"context"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tacband/internal/board"
	"github.com/samdwyer/tacband/internal/grid"
	"github.com/samdwyer/tacband/internal/reach"
	"github.com/samdwyer/tacband/internal/telemetry"
)

// Walker is the controller's view of a movable unit.
type Walker interface {
	ID() uuid.UUID
	Cell() grid.Coord
	MoveRange() int
	SetCell(grid.Coord)
	WalkAlong(path []grid.Coord) <-chan struct{}
}

// Overlay receives the reachable-cell highlight as a side effect of
// selection. The controller never reads back from it.
type Overlay interface {
	Draw(cells grid.Set)
	Clear()
}

// PathPreview is armed while a selection is active and supplies the walk
// path when a move commits. The path is consumed, not recomputed.
type PathPreview interface {
	Arm(origin grid.Coord, cells grid.Set)
	Stop()
	Path(from, to grid.Coord) []grid.Coord
}

// Controller mediates the select, preview, commit, settle lifecycle. All of
// its methods must be called from the event-loop goroutine; the settled
// callback is the only thing that fires elsewhere, and it must route its
// notification back onto that loop.
type Controller struct {
	board    *board.State
	shape    grid.Shape
	lookup   func(uuid.UUID) (Walker, bool)
	overlay  Overlay
	preview  PathPreview
	executor *Executor
	settled  func(uuid.UUID)

	phase     Phase
	selected  Walker
	reachable grid.Set
}

// NewController creates an idle controller over the given board.
func NewController(
	b *board.State,
	shape grid.Shape,
	lookup func(uuid.UUID) (Walker, bool),
	overlay Overlay,
	preview PathPreview,
	settled func(uuid.UUID),
) *Controller {
	return &Controller{
		board:    b,
		shape:    shape,
		lookup:   lookup,
		overlay:  overlay,
		preview:  preview,
		executor: NewExecutor(b),
		settled:  settled,
		phase:    PhaseIdle,
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Selected returns the identity of the selected unit, if any.
func (c *Controller) Selected() (uuid.UUID, bool) {
	if c.selected == nil {
		return uuid.Nil, false
	}
	return c.selected.ID(), true
}

// Reachable returns the reachable set of the current selection, or nil.
func (c *Controller) Reachable() grid.Set { return c.reachable }

// Activate handles a cell-activated event. Illegal activations are silent
// no-ops; nothing here is an error.
func (c *Controller) Activate(ctx context.Context, cell grid.Coord) {
	switch c.phase {
	case PhaseIdle:
		c.trySelect(ctx, cell)
	case PhaseSelected:
		c.tryCommit(ctx, cell)
	case PhaseMoving:
		// A move is settling; new orders are dropped until it lands.
	}
}

// Cancel returns to idle from a selection. It never touches the board, and
// it cannot interrupt a move that is already settling.
func (c *Controller) Cancel() {
	if c.phase != PhaseSelected {
		return
	}
	c.overlay.Clear()
	c.preview.Stop()
	c.selected = nil
	c.reachable = nil
	c.phase = PhaseIdle
}

// FinishMove handles the walk-finished notification for the given unit and
// collapses the transient moving phase back to idle.
func (c *Controller) FinishMove(id uuid.UUID) {
	if c.phase != PhaseMoving || c.selected == nil || c.selected.ID() != id {
		return
	}
	c.selected = nil
	c.phase = PhaseIdle
}

// trySelect selects the unit occupying the cell, if there is one, and
// computes its reachable set.
func (c *Controller) trySelect(ctx context.Context, cell grid.Coord) {
	id, ok := c.board.EntityAt(cell)
	if !ok {
		return // empty cell
	}
	w, ok := c.lookup(id)
	if !ok {
		log.Printf("tactics: board names unit %s but the roster has no such unit", id)
		return
	}

	tracer := telemetry.Tracer("tactics")
	ctx, span := tracer.Start(ctx, "tactics.select")
	defer span.End()

	c.selected = w
	c.reachable = reach.Compute(ctx, cell, w.MoveRange(), c.board.IsOccupied, c.shape)
	c.phase = PhaseSelected

	c.overlay.Draw(c.reachable)
	c.preview.Arm(cell, c.reachable)

	span.SetAttributes(
		attribute.String("unit", id.String()),
		attribute.Int("reachable_cells", c.reachable.Len()),
	)
}

// tryCommit commits a move to the activated cell if it is a legal target,
// and ignores the activation otherwise. The selection and its reachable set
// survive an ignored activation unchanged.
func (c *Controller) tryCommit(ctx context.Context, cell grid.Coord) {
	if !c.reachable.Has(cell) || c.board.IsOccupied(cell) {
		return
	}

	from := c.selected.Cell()
	path := c.preview.Path(from, cell)
	if !c.executor.Commit(ctx, c.selected, from, cell, c.reachable, path, c.settled) {
		return
	}

	c.overlay.Clear()
	c.preview.Stop()
	c.reachable = nil
	c.phase = PhaseMoving
}
