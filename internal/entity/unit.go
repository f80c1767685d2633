// Package entity provides the movable units that occupy the tactical board.
package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/tacband/internal/grid"
	"github.com/samdwyer/tacband/internal/unitdata"
)

// defaultStepDelay is the time a walking unit spends on each path cell.
const defaultStepDelay = 110 * time.Millisecond

// Unit is a movable entity. Its cell is the authoritative position the board
// tracks; the display cell trails behind it while a walk animates.
type Unit struct {
	id        uuid.UUID
	DefID     string // unit archetype, for style lookup
	Name      string
	Glyph     rune
	moveRange int

	cell grid.Coord // authoritative position

	mu      sync.Mutex
	display grid.Coord // advanced by the walk goroutine

	stepDelay time.Duration
	onStep    func()
}

// NewUnit creates a unit at the given cell.
// Use InitFromDef to load archetype data.
func NewUnit(name string, cell grid.Coord, moveRange int) *Unit {
	return &Unit{
		id:        uuid.New(),
		Name:      name,
		Glyph:     '?',
		moveRange: moveRange,
		cell:      cell,
		display:   cell,
		stepDelay: defaultStepDelay,
	}
}

// InitFromDef initializes the unit from an archetype definition.
func (u *Unit) InitFromDef(def *unitdata.UnitDef) {
	if def == nil {
		return
	}
	u.DefID = def.ID
	u.Name = def.Name
	u.Glyph = def.GlyphRune()
	u.moveRange = def.MoveRange
}

// ID returns the unit's identity, unique for the board's lifetime.
func (u *Unit) ID() uuid.UUID { return u.id }

// Cell returns the unit's authoritative position.
func (u *Unit) Cell() grid.Coord { return u.cell }

// SetCell updates the authoritative position. The display position is left
// alone; a walk in progress catches it up.
func (u *Unit) SetCell(c grid.Coord) { u.cell = c }

// MoveRange returns the unit's Manhattan-distance step budget per move.
func (u *Unit) MoveRange() int { return u.moveRange }

// DisplayCell returns the position the unit should be drawn at.
func (u *Unit) DisplayCell() grid.Coord {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.display
}

// OnStep registers a callback invoked after each walk step, from the walk
// goroutine. Used to request redraws.
func (u *Unit) OnStep(fn func()) { u.onStep = fn }

// SetStepDelay overrides the per-cell walk duration.
func (u *Unit) SetStepDelay(d time.Duration) { u.stepDelay = d }

// WalkAlong animates the unit through the given cells in order. It returns
// immediately; the returned channel is closed when the walk finishes. Only
// the display position is touched here, the authoritative cell is already at
// the destination by the time a walk starts.
func (u *Unit) WalkAlong(path []grid.Coord) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(u.stepDelay)
		defer ticker.Stop()
		for _, c := range path {
			<-ticker.C
			u.mu.Lock()
			u.display = c
			u.mu.Unlock()
			if u.onStep != nil {
				u.onStep()
			}
		}
		// Snap to the authoritative cell in case the path was empty.
		u.mu.Lock()
		u.display = u.cell
		u.mu.Unlock()
	}()
	return done
}
