// Package reach computes the set of cells an entity may move to this turn.
package reach

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tacband/internal/grid"
	"github.com/samdwyer/tacband/internal/telemetry"
)

// Compute flood-fills outward from start and returns every cell within
// maxDistance Manhattan steps that can be reached without expanding through
// a blocked cell. The start cell is always included, even though it is
// occupied by the entity asking; the blocked check applies to neighbors
// only, never to the seed.
//
// Distance is measured as displacement from start, not as accumulated path
// length. When obstacles force a detour, a cell can be admitted whose only
// walking path is longer than its Manhattan distance. That approximation is
// deliberate and relied upon; do not replace this with a shortest-path cost
// map.
func Compute(ctx context.Context, start grid.Coord, maxDistance int, blocked func(grid.Coord) bool, shape grid.Shape) grid.Set {
	tracer := telemetry.Tracer("reach")
	_, span := tracer.Start(ctx, "reach.compute")
	defer span.End()

	startTime := time.Now()

	reachable := make(grid.Set)
	frontier := []grid.Coord{start}

	for len(frontier) > 0 {
		cell := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if !shape.Contains(cell) {
			continue
		}
		// Revisit guard: the 4-connected grid is full of cycles.
		if reachable.Has(cell) {
			continue
		}
		if grid.Manhattan(start, cell) > maxDistance {
			continue
		}

		reachable.Add(cell)

		for _, neighbor := range cell.Neighbors4() {
			// Occupied cells are pruned at expansion time; they are never
			// enqueued, so nothing is reachable through them.
			if !blocked(neighbor) {
				frontier = append(frontier, neighbor)
			}
		}
	}

	span.SetAttributes(
		attribute.Int("reach.start_x", start.X),
		attribute.Int("reach.start_y", start.Y),
		attribute.Int("reach.max_distance", maxDistance),
		attribute.Int("reach.cell_count", reachable.Len()),
		attribute.Int64("reach.compute_us", time.Since(startTime).Microseconds()),
	)

	return reachable
}
