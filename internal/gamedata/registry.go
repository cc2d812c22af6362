package gamedata

import (
	"errors"
	"math/rand"
)

type spawnable interface {
	MonsterDef | ItemDef
	key() string
	weight() int
}

// Registry holds loaded definitions and provides weighted spawning.
type Registry[T spawnable] struct {
	defs        []T
	totalWeight int
}

// MonsterRegistry is the registry of monster definitions.
type MonsterRegistry = Registry[MonsterDef]

// ItemRegistry is the registry of item definitions.
type ItemRegistry = Registry[ItemDef]

// NewRegistry creates a registry from loaded definitions.
func NewRegistry[T spawnable](defs []T) *Registry[T] {
	totalWeight := 0
	for _, d := range defs {
		totalWeight += d.weight()
	}
	return &Registry[T]{
		defs:        defs,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewRegistry(monsters), nil
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewRegistry(items), nil
}

// SpawnRandom selects a random definition using weighted probability.
// Definitions with a higher spawnWeight are more likely to be selected.
func (r *Registry[T]) SpawnRandom(rng *rand.Rand) *T {
	if r.totalWeight <= 0 || len(r.defs) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.defs {
		cumulative += r.defs[i].weight()
		if roll < cumulative {
			return &r.defs[i]
		}
	}

	return &r.defs[0]
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *Registry[T]) GetByID(id string) *T {
	for i := range r.defs {
		if r.defs[i].key() == id {
			return &r.defs[i]
		}
	}
	return nil
}

// All returns all definitions.
func (r *Registry[T]) All() []T {
	return r.defs
}

// Count returns the number of definitions in the registry.
func (r *Registry[T]) Count() int {
	return len(r.defs)
}
