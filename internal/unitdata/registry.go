package unitdata

import (
	"errors"
	"math/rand"
)

// Registry holds loaded unit definitions and provides placement utilities.
type Registry struct {
	units       []UnitDef
	totalWeight int
}

// NewRegistry creates a registry from loaded unit definitions.
func NewRegistry(units []UnitDef) *Registry {
	totalWeight := 0
	for _, u := range units {
		totalWeight += u.SpawnWeight
	}
	return &Registry{
		units:       units,
		totalWeight: totalWeight,
	}
}

// LoadRegistry loads and creates a registry from the embedded units.json.
func LoadRegistry() (*Registry, error) {
	units, err := LoadUnits()
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, errors.New("no units loaded from units.json")
	}
	return NewRegistry(units), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random unit definition using weighted probability.
// Definitions with higher spawnWeight are more likely to be selected.
func (r *Registry) SpawnRandom(rng *rand.Rand) *UnitDef {
	if r.totalWeight <= 0 || len(r.units) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.units {
		cumulative += r.units[i].SpawnWeight
		if roll < cumulative {
			return &r.units[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.units[0]
}

// GetByID returns the unit definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *UnitDef {
	for i := range r.units {
		if r.units[i].ID == id {
			return &r.units[i]
		}
	}
	return nil
}

// All returns all unit definitions.
func (r *Registry) All() []UnitDef {
	return r.units
}

// Count returns the number of unit archetypes in the registry.
func (r *Registry) Count() int {
	return len(r.units)
}
