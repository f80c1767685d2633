package entity

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/samdwyer/tacband/internal/grid"
	"github.com/samdwyer/tacband/internal/unitdata"
)

func TestInitFromDef(t *testing.T) {
	u := NewUnit("placeholder", grid.Coord{X: 1, Y: 1}, 0)
	def := &unitdata.UnitDef{
		ID:        "scout",
		Name:      "Scout",
		Glyph:     "s",
		MoveRange: 4,
	}

	u.InitFromDef(def)

	if u.Name != "Scout" || u.Glyph != 's' || u.DefID != "scout" {
		t.Errorf("Def fields not applied: name=%q glyph=%c def=%q", u.Name, u.Glyph, u.DefID)
	}
	if u.MoveRange() != 4 {
		t.Errorf("Expected move range 4, got %d", u.MoveRange())
	}

	u.InitFromDef(nil) // nil def is a no-op
	if u.Name != "Scout" {
		t.Error("nil def overwrote unit fields")
	}
}

func TestSetCellLeavesDisplayBehind(t *testing.T) {
	u := NewUnit("Scout", grid.Coord{X: 1, Y: 1}, 4)

	u.SetCell(grid.Coord{X: 3, Y: 1})

	if u.Cell() != (grid.Coord{X: 3, Y: 1}) {
		t.Error("Authoritative cell not updated")
	}
	if u.DisplayCell() != (grid.Coord{X: 1, Y: 1}) {
		t.Error("Display cell moved before the walk")
	}
}

func TestWalkAlong(t *testing.T) {
	u := NewUnit("Scout", grid.Coord{X: 0, Y: 0}, 4)
	u.SetStepDelay(time.Millisecond)

	var steps atomic.Int32
	u.OnStep(func() { steps.Add(1) })

	path := []grid.Coord{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}
	u.SetCell(grid.Coord{X: 2, Y: 1})

	select {
	case <-u.WalkAlong(path):
	case <-time.After(time.Second):
		t.Fatal("Walk never finished")
	}

	if u.DisplayCell() != (grid.Coord{X: 2, Y: 1}) {
		t.Errorf("Display cell = %v, want destination", u.DisplayCell())
	}
	if got := steps.Load(); got != 3 {
		t.Errorf("Expected 3 step callbacks, got %d", got)
	}
}

func TestWalkAlongEmptyPath(t *testing.T) {
	u := NewUnit("Scout", grid.Coord{X: 2, Y: 2}, 4)
	u.SetStepDelay(time.Millisecond)

	select {
	case <-u.WalkAlong(nil):
	case <-time.After(time.Second):
		t.Fatal("Empty walk never finished")
	}

	if u.DisplayCell() != (grid.Coord{X: 2, Y: 2}) {
		t.Error("Empty walk moved the display cell")
	}
}

func TestRosterByID(t *testing.T) {
	r := NewRoster()
	a := NewUnit("A", grid.Coord{X: 0, Y: 0}, 1)
	b := NewUnit("B", grid.Coord{X: 1, Y: 0}, 2)
	r.Add(a)
	r.Add(b)

	if r.Len() != 2 {
		t.Fatalf("Expected 2 units, got %d", r.Len())
	}
	got, ok := r.ByID(b.ID())
	if !ok || got != b {
		t.Error("ByID did not return the expected unit")
	}
	if _, ok := r.ByID(a.ID()); !ok {
		t.Error("ByID missed the first unit")
	}
	if _, ok := r.ByID(NewUnit("C", grid.Coord{X: 2, Y: 0}, 1).ID()); ok {
		t.Error("ByID returned a unit that was never added")
	}
}
