package grid

// Set is a set of coordinates. Sets produced by queries are snapshots of the
// board at computation time, not live views; recompute after any occupancy
// change before reusing one.
type Set map[Coord]struct{}

// NewSet creates a set containing the given coordinates.
func NewSet(coords ...Coord) Set {
	s := make(Set, len(coords))
	for _, c := range coords {
		s.Add(c)
	}
	return s
}

// Add inserts c into the set.
func (s Set) Add(c Coord) {
	s[c] = struct{}{}
}

// Has returns true if c is in the set.
func (s Set) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of coordinates in the set.
func (s Set) Len() int {
	return len(s)
}

// Equal returns true if both sets contain exactly the same coordinates.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}
