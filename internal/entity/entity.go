// Package entity provides the entity/component model: actors, items and their components.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// RenderOrder decides draw order. Lower values are drawn first.
type RenderOrder int

const (
	RenderCorpse RenderOrder = iota
	RenderItem
	RenderActor
)

// String returns the render order name.
func (r RenderOrder) String() string {
	switch r {
	case RenderCorpse:
		return "corpse"
	case RenderItem:
		return "item"
	case RenderActor:
		return "actor"
	default:
		return "unknown"
	}
}

// Parent is whatever currently owns an entity: the game map or an inventory.
type Parent interface {
	Remove(e *Entity) bool
}

// Entity is anything placed in the dungeon. Behaviour comes from the
// optional components: a Fighter makes it an actor, a Consumable an item.
type Entity struct {
	ID             uuid.UUID
	X, Y           int
	Glyph          rune
	FG, BG         tcell.Color
	Name           string
	BlocksMovement bool
	RenderOrder    RenderOrder

	// Player marks the single player-controlled actor.
	Player bool

	Fighter    *Fighter
	AI         *AI
	Inventory  *Inventory
	Consumable *Consumable

	parent Parent
}

// New creates a bare entity at the given position.
func New(x, y int, glyph rune, fg, bg tcell.Color, name string) *Entity {
	return &Entity{
		ID:          uuid.New(),
		X:           x,
		Y:           y,
		Glyph:       glyph,
		FG:          fg,
		BG:          bg,
		Name:        name,
		RenderOrder: RenderCorpse,
	}
}

// Position returns the entity's current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}

// Move updates the position by the given delta.
func (e *Entity) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Parent returns the current owner, or nil when unowned.
func (e *Entity) Parent() Parent {
	return e.parent
}

// SetParent records the new owner. Callers are responsible for having
// removed the entity from the previous one.
func (e *Entity) SetParent(p Parent) {
	e.parent = p
}

// IsActor reports whether the entity can fight.
func (e *Entity) IsActor() bool {
	return e.Fighter != nil
}

// IsItem reports whether the entity is a usable item.
func (e *Entity) IsItem() bool {
	return e.Consumable != nil
}

// IsAlive reports whether the actor still takes part in turns: it must
// have hp left and either an AI or be the player. Corpses lose their AI.
func (e *Entity) IsAlive() bool {
	if e.Fighter == nil || e.Fighter.HP <= 0 {
		return false
	}
	return e.AI != nil || e.Player
}

// DistanceSq returns the squared euclidean distance to a point.
func (e *Entity) DistanceSq(x, y int) int {
	dx, dy := x-e.X, y-e.Y
	return dx*dx + dy*dy
}

// Chebyshev returns the king-move distance to a point.
func (e *Entity) Chebyshev(x, y int) int {
	return max(abs(x-e.X), abs(y-e.Y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
