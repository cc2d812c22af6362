// Package action holds the legal world mutations and their validation rules.
//
// Every action is validated completely before anything is mutated, so a
// failed action leaves the world exactly as it was.
package action

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/msglog"
	"github.com/samdwyer/gloomcrawl/internal/world"
)

// Kind tags the action variant.
type Kind int

const (
	KindWait Kind = iota
	KindMove
	KindMelee
	KindBump
	KindPickup
	KindDrop
	KindUseItem
)

// String returns the action kind name.
func (k Kind) String() string {
	switch k {
	case KindWait:
		return "wait"
	case KindMove:
		return "move"
	case KindMelee:
		return "melee"
	case KindBump:
		return "bump"
	case KindPickup:
		return "pickup"
	case KindDrop:
		return "drop"
	case KindUseItem:
		return "use_item"
	default:
		return "unknown"
	}
}

// Point is a map position.
type Point struct {
	X, Y int
}

// Action is one candidate world mutation. Which fields matter depends on Kind:
// DX/DY for the directional kinds, Item for Drop and UseItem, Target for
// items that need a map position.
type Action struct {
	Kind   Kind
	DX, DY int
	Item   *entity.Entity
	Target *Point
}

// Wait does nothing but still spends the turn.
func Wait() Action { return Action{Kind: KindWait} }

// Move steps by dx, dy.
func Move(dx, dy int) Action { return Action{Kind: KindMove, DX: dx, DY: dy} }

// Melee attacks whatever living actor stands at dx, dy.
func Melee(dx, dy int) Action { return Action{Kind: KindMelee, DX: dx, DY: dy} }

// Bump attacks when an actor is in the way and moves otherwise.
func Bump(dx, dy int) Action { return Action{Kind: KindBump, DX: dx, DY: dy} }

// Pickup takes an item from the actor's tile.
func Pickup() Action { return Action{Kind: KindPickup} }

// Drop puts an inventory item on the actor's tile.
func Drop(item *entity.Entity) Action { return Action{Kind: KindDrop, Item: item} }

// UseItem activates an item's consumable effect. target may be nil for
// effects that do not need a position.
func UseItem(item *entity.Entity, target *Point) Action {
	return Action{Kind: KindUseItem, Item: item, Target: target}
}

// String describes the action for logs and traces.
func (a Action) String() string {
	switch a.Kind {
	case KindMove, KindMelee, KindBump:
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.DX, a.DY)
	case KindDrop, KindUseItem:
		name := "<nil>"
		if a.Item != nil {
			name = a.Item.Name
		}
		if a.Target != nil {
			return fmt.Sprintf("%s(%s@%d,%d)", a.Kind, name, a.Target.X, a.Target.Y)
		}
		return fmt.Sprintf("%s(%s)", a.Kind, name)
	default:
		return a.Kind.String()
	}
}

// Context is the world state every action runs against. It is passed
// explicitly; nothing in this package reaches for globals.
type Context struct {
	Map    *world.GameMap
	Log    *msglog.Log
	Player *entity.Entity
	Rand   *rand.Rand
}
