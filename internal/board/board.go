// Package board owns the authoritative occupancy index of the tactical grid:
// which entity, if any, occupies each cell. It is the single source of truth
// for occupancy; nothing else writes to the index.
package board

import (
	"log"

	"github.com/google/uuid"

	"github.com/samdwyer/tacband/internal/grid"
)

// Occupant is the view of an entity the board needs when rebuilding the
// index: an identity and a current cell.
type Occupant interface {
	ID() uuid.UUID
	Cell() grid.Coord
}

// State maps each occupied cell to the entity occupying it. At most one
// entity per cell, and each entity appears under exactly one cell.
type State struct {
	occupancy map[grid.Coord]uuid.UUID
}

// NewState creates an empty board state.
func NewState() *State {
	return &State{
		occupancy: make(map[grid.Coord]uuid.UUID),
	}
}

// IsOccupied returns true if some entity currently occupies the cell.
func (s *State) IsOccupied(c grid.Coord) bool {
	_, ok := s.occupancy[c]
	return ok
}

// EntityAt returns the entity occupying the cell, if any.
func (s *State) EntityAt(c grid.Coord) (uuid.UUID, bool) {
	id, ok := s.occupancy[c]
	return id, ok
}

// Count returns the number of occupied cells.
func (s *State) Count() int {
	return len(s.occupancy)
}

// Reinitialize clears the index and rebuilds it from the supplied occupants'
// current cells. Two occupants claiming the same cell indicates a bug in the
// caller supplying them; the last write wins and the collision is logged.
func (s *State) Reinitialize(occupants []Occupant) {
	s.occupancy = make(map[grid.Coord]uuid.UUID, len(occupants))
	for _, o := range occupants {
		cell := o.Cell()
		if prev, taken := s.occupancy[cell]; taken {
			log.Printf("board: duplicate occupancy at (%d,%d): %s displaces %s",
				cell.X, cell.Y, o.ID(), prev)
		}
		s.occupancy[cell] = o.ID()
	}
}

// Relocate moves an entity's occupancy from one cell to another. The write is
// optimistic: the destination's occupancy is not re-validated here, callers
// check it before committing a move. Requires that from currently maps to id;
// a mismatch leaves the index untouched.
func (s *State) Relocate(id uuid.UUID, from, to grid.Coord) {
	current, ok := s.occupancy[from]
	if !ok || current != id {
		log.Printf("board: relocate of %s from (%d,%d) does not match index, ignoring",
			id, from.X, from.Y)
		return
	}
	delete(s.occupancy, from)
	s.occupancy[to] = id
}
