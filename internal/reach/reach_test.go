package reach

import (
	"context"
	"testing"

	"github.com/samdwyer/tacband/internal/grid"
)

func blockedBy(cells ...grid.Coord) func(grid.Coord) bool {
	set := grid.NewSet(cells...)
	return set.Has
}

func unblocked(grid.Coord) bool { return false }

func TestZeroBudgetReturnsOnlyStart(t *testing.T) {
	shape := grid.Rect{Width: 5, Height: 5}
	start := grid.Coord{X: 2, Y: 2}

	got := Compute(context.Background(), start, 0, unblocked, shape)

	if got.Len() != 1 || !got.Has(start) {
		t.Errorf("Expected exactly {start}, got %v", got)
	}
}

func TestManhattanDiamond(t *testing.T) {
	// 5x5 board, start at center, budget 2: the full radius-2 diamond fits.
	shape := grid.Rect{Width: 5, Height: 5}
	start := grid.Coord{X: 2, Y: 2}

	got := Compute(context.Background(), start, 2, unblocked, shape)

	if got.Len() != 13 {
		t.Fatalf("Expected 13-cell diamond, got %d cells", got.Len())
	}
	for c := range got {
		if grid.Manhattan(start, c) > 2 {
			t.Errorf("Cell %v exceeds the distance budget", c)
		}
	}
	if !got.Has(start) {
		t.Error("Start missing from reachable set")
	}
}

func TestDiamondClippedToBounds(t *testing.T) {
	shape := grid.Rect{Width: 5, Height: 5}
	start := grid.Coord{X: 0, Y: 0}

	got := Compute(context.Background(), start, 2, unblocked, shape)

	want := grid.NewSet(
		grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 0}, grid.Coord{X: 2, Y: 0},
		grid.Coord{X: 0, Y: 1}, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 0, Y: 2},
	)
	if !got.Equal(want) {
		t.Errorf("Corner diamond = %v, want %v", got, want)
	}
}

func TestStartIncludedDespiteOwnOccupancy(t *testing.T) {
	// The moving entity occupies its own start cell; the blocked check only
	// applies to neighbors, never to the seed.
	shape := grid.Rect{Width: 5, Height: 5}
	start := grid.Coord{X: 2, Y: 2}

	got := Compute(context.Background(), start, 2, blockedBy(start), shape)

	if !got.Has(start) {
		t.Fatal("Start excluded by its own occupancy")
	}
	if got.Len() != 13 {
		t.Errorf("Expected full 13-cell diamond, got %d cells", got.Len())
	}
}

func TestOccupiedCellsBlockExpansion(t *testing.T) {
	// Unit at (3,2) blocks the only in-budget route to (4,2).
	shape := grid.Rect{Width: 5, Height: 5}
	start := grid.Coord{X: 2, Y: 2}

	got := Compute(context.Background(), start, 2, blockedBy(grid.Coord{X: 3, Y: 2}), shape)

	if got.Has(grid.Coord{X: 3, Y: 2}) {
		t.Error("Occupied cell appeared in the reachable set")
	}
	if got.Has(grid.Coord{X: 4, Y: 2}) {
		t.Error("(4,2) reachable only through an occupied cell")
	}
	if got.Len() != 11 {
		t.Errorf("Expected 11 cells, got %d", got.Len())
	}
}

func TestDetourCellsAdmittedByDisplacement(t *testing.T) {
	// Distance is displacement from start, not accumulated steps. With
	// (2,3) and (1,3) occupied, the shortest walk to (2,4) is 4 steps via
	// (3,2),(3,3),(3,4), but its displacement is 2, so it stays in. This
	// behavior is load-bearing; do not "fix" it.
	shape := grid.Rect{Width: 5, Height: 5}
	start := grid.Coord{X: 2, Y: 2}

	got := Compute(context.Background(), start, 3,
		blockedBy(grid.Coord{X: 2, Y: 3}, grid.Coord{X: 1, Y: 3}), shape)

	if !got.Has(grid.Coord{X: 2, Y: 4}) {
		t.Error("Detour-only cell (2,4) should be admitted by displacement")
	}
}

func TestDeterministic(t *testing.T) {
	shape := grid.Rect{Width: 9, Height: 9}
	start := grid.Coord{X: 4, Y: 4}
	blocked := blockedBy(grid.Coord{X: 5, Y: 4}, grid.Coord{X: 4, Y: 5}, grid.Coord{X: 3, Y: 3})

	first := Compute(context.Background(), start, 3, blocked, shape)
	for i := 0; i < 10; i++ {
		again := Compute(context.Background(), start, 3, blocked, shape)
		if !first.Equal(again) {
			t.Fatalf("Run %d produced a different set", i)
		}
	}
}

func TestAllResultsWithinBudgetAndBounds(t *testing.T) {
	shape := grid.Rect{Width: 7, Height: 4}
	start := grid.Coord{X: 6, Y: 0}

	got := Compute(context.Background(), start, 4, blockedBy(grid.Coord{X: 5, Y: 1}), shape)

	for c := range got {
		if grid.Manhattan(start, c) > 4 {
			t.Errorf("Cell %v exceeds the budget", c)
		}
		if !shape.Contains(c) {
			t.Errorf("Cell %v is out of bounds", c)
		}
	}
}
