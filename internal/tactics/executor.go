package tactics

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tacband/internal/board"
	"github.com/samdwyer/tacband/internal/grid"
	"github.com/samdwyer/tacband/internal/telemetry"
)

// Executor applies accepted moves to the board and waits out the visual walk.
// At most one move is in flight at any time; the controller's moving phase
// enforces that.
type Executor struct {
	board *board.State
}

// NewExecutor creates an executor over the given board.
func NewExecutor(b *board.State) *Executor {
	return &Executor{board: b}
}

// Commit applies the move and starts the walk. The target is re-checked
// against the cached reachable set and current occupancy even though the
// controller already did so. Returns false without side effects if the
// re-check fails.
//
// Occupancy is updated before the walk finishes, so queries issued while the
// move settles already see the destination as taken and no second unit can
// be routed into it. The settled callback fires from a background goroutine
// once the walk-finished notification arrives.
func (e *Executor) Commit(ctx context.Context, w Walker, from, to grid.Coord, reachable grid.Set, path []grid.Coord, settled func(uuid.UUID)) bool {
	if !reachable.Has(to) || e.board.IsOccupied(to) {
		return false
	}

	tracer := telemetry.Tracer("tactics")
	_, span := tracer.Start(ctx, "tactics.move")
	span.SetAttributes(
		attribute.String("unit", w.ID().String()),
		attribute.Int("move.distance", grid.Manhattan(from, to)),
		attribute.Int("move.path_cells", len(path)),
	)

	e.board.Relocate(w.ID(), from, to)
	w.SetCell(to)

	done := w.WalkAlong(path)
	go func() {
		<-done
		span.End()
		settled(w.ID())
	}()
	return true
}
