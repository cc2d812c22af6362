package action

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/combat"
	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
)

// Perform validates and applies a on behalf of actor. A nil error means
// the turn was spent; an *Impossible means nothing changed.
func Perform(ctx *Context, actor *entity.Entity, a Action) error {
	switch a.Kind {
	case KindWait:
		return nil
	case KindMove:
		return move(ctx, actor, a.DX, a.DY)
	case KindMelee:
		return melee(ctx, actor, a.DX, a.DY)
	case KindBump:
		if ctx.Map.ActorAt(actor.X+a.DX, actor.Y+a.DY) != nil {
			return melee(ctx, actor, a.DX, a.DY)
		}
		return move(ctx, actor, a.DX, a.DY)
	case KindPickup:
		return pickup(ctx, actor)
	case KindDrop:
		return drop(ctx, actor, a.Item)
	case KindUseItem:
		return useItem(ctx, actor, a.Item, a.Target)
	default:
		panic(fmt.Sprintf("action: unknown kind %d", a.Kind))
	}
}

func move(ctx *Context, actor *entity.Entity, dx, dy int) error {
	destX, destY := actor.X+dx, actor.Y+dy

	if !ctx.Map.IsWalkable(destX, destY) {
		return impossible(MsgBlocked)
	}
	if ctx.Map.BlockingEntityAt(destX, destY) != nil {
		return impossible(MsgBlocked)
	}

	actor.Move(dx, dy)
	if actor == ctx.Player {
		ctx.Map.CenterOn(actor.X, actor.Y)
	}
	return nil
}

func melee(ctx *Context, actor *entity.Entity, dx, dy int) error {
	target := ctx.Map.ActorAt(actor.X+dx, actor.Y+dy)
	if target == nil {
		return impossible(MsgNothingToAttack)
	}

	out := combat.Melee(actor, target)
	logNotes(ctx, out.Notes)
	return nil
}

// pickup takes the first item on the actor's tile in entity-list order,
// which is the order items were placed on the map.
func pickup(ctx *Context, actor *entity.Entity) error {
	inv := mustInventory(actor)

	var found *entity.Entity
	for _, e := range ctx.Map.Entities {
		if e.IsItem() && e.X == actor.X && e.Y == actor.Y {
			found = e
			break
		}
	}
	if found == nil {
		return impossible(MsgNothingHere)
	}
	if inv.Full() {
		return impossible(MsgInventoryFull)
	}

	ctx.Map.Remove(found)
	inv.Add(found)
	ctx.Log.Add(fmt.Sprintf("You picked up the %s!", found.Name), gamedata.ColorWhite)
	return nil
}

func drop(ctx *Context, actor *entity.Entity, item *entity.Entity) error {
	inv := mustInventory(actor)
	if item == nil {
		panic("action: drop without an item")
	}
	if !inv.Contains(item) {
		return impossible(MsgNotCarrying)
	}

	inv.Remove(item)
	item.X, item.Y = actor.X, actor.Y
	ctx.Map.Add(item)
	ctx.Log.Add(fmt.Sprintf("You dropped the %s.", item.Name), gamedata.ColorWhite)
	return nil
}

func mustInventory(actor *entity.Entity) *entity.Inventory {
	if actor.Inventory == nil {
		panic("action: actor " + actor.Name + " has no inventory")
	}
	return actor.Inventory
}

func logNotes(ctx *Context, notes []combat.Note) {
	for _, n := range notes {
		ctx.Log.Add(n.Text, n.Color)
	}
}

func logText(ctx *Context, text string, color tcell.Color) {
	ctx.Log.Add(text, color)
}
