package entity

import "github.com/google/uuid"

// Roster is the typed collection of units in the current scene. The board is
// (re)initialized from it rather than scanning scene children at runtime.
type Roster struct {
	units []*Unit
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{units: make([]*Unit, 0)}
}

// Add appends a unit to the roster.
func (r *Roster) Add(u *Unit) {
	r.units = append(r.units, u)
}

// Units returns all units in the roster.
func (r *Roster) Units() []*Unit {
	return r.units
}

// ByID returns the unit with the given identity, if present.
func (r *Roster) ByID(id uuid.UUID) (*Unit, bool) {
	for _, u := range r.units {
		if u.ID() == id {
			return u, true
		}
	}
	return nil, false
}

// Len returns the number of units in the roster.
func (r *Roster) Len() int {
	return len(r.units)
}
