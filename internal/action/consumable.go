package action

import (
	"fmt"
	"math"

	"github.com/samdwyer/gloomcrawl/internal/combat"
	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
)

// useItem interprets the item's effect tag. Each effect resolves its
// targets and checks every failure before touching hp, AI or inventory.
func useItem(ctx *Context, actor *entity.Entity, item *entity.Entity, target *Point) error {
	inv := mustInventory(actor)
	if item == nil || item.Consumable == nil {
		panic("action: use of a non-consumable")
	}
	if !inv.Contains(item) {
		return impossible(MsgNotCarrying)
	}

	c := item.Consumable
	if c.NeedsTarget() && target == nil {
		return impossible(MsgNeedsTarget)
	}

	var err error
	switch c.Effect {
	case entity.EffectHealing:
		err = heal(ctx, actor, item)
	case entity.EffectLightning:
		err = lightning(ctx, actor, item)
	case entity.EffectConfusion:
		err = confuse(ctx, actor, item, *target)
	case entity.EffectFireball:
		err = fireball(ctx, item, *target)
	default:
		panic(fmt.Sprintf("action: unknown effect %d", c.Effect))
	}
	if err != nil {
		return err
	}

	inv.Remove(item)
	return nil
}

func heal(ctx *Context, actor, item *entity.Entity) error {
	if actor.Fighter.HP >= actor.Fighter.MaxHP {
		return impossible(MsgHealthFull)
	}
	recovered := actor.Fighter.Heal(item.Consumable.Amount)
	logText(ctx, fmt.Sprintf("You consume the %s, and recover %d HP!", item.Name, recovered),
		gamedata.ColorHealthRecovered)
	return nil
}

// lightning strikes the closest visible living actor within range.
func lightning(ctx *Context, actor, item *entity.Entity) error {
	c := item.Consumable

	var closest *entity.Entity
	closestDist := float64(c.Range) + 1
	for _, other := range ctx.Map.Actors() {
		if other == actor || !ctx.Map.IsVisible(other.X, other.Y) {
			continue
		}
		d := math.Sqrt(float64(actor.DistanceSq(other.X, other.Y)))
		if d < closestDist {
			closest = other
			closestDist = d
		}
	}
	if closest == nil {
		return impossible(MsgNoEnemyInRange)
	}

	logText(ctx, fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder, for %d damage!",
		closest.Name, c.Amount), gamedata.ColorWhite)
	_, notes := combat.Damage(closest, c.Amount)
	logNotes(ctx, notes)
	return nil
}

func confuse(ctx *Context, actor, item *entity.Entity, at Point) error {
	if !ctx.Map.IsVisible(at.X, at.Y) {
		return impossible(MsgCannotSee)
	}
	target := ctx.Map.ActorAt(at.X, at.Y)
	if target == nil {
		return impossible(MsgSelectEnemy)
	}
	if target == actor {
		return impossible(MsgConfuseSelf)
	}

	logText(ctx, fmt.Sprintf("The eyes of the %s look vacant, as it starts to stumble around!", target.Name),
		gamedata.ColorStatusEffectApplied)
	target.AI = entity.Confused(target.AI, item.Consumable.Turns)
	return nil
}

// fireball hits every living actor within the radius, the user included.
func fireball(ctx *Context, item *entity.Entity, at Point) error {
	if !ctx.Map.IsVisible(at.X, at.Y) {
		return impossible(MsgCannotSee)
	}

	c := item.Consumable
	var hit []*entity.Entity
	for _, a := range ctx.Map.Actors() {
		if a.DistanceSq(at.X, at.Y) <= c.Radius*c.Radius {
			hit = append(hit, a)
		}
	}
	if len(hit) == 0 {
		return impossible(MsgNoTargets)
	}

	for _, a := range hit {
		logText(ctx, fmt.Sprintf("The %s is engulfed in a fiery explosion, taking %d damage!", a.Name, c.Amount),
			gamedata.ColorWhite)
		_, notes := combat.Damage(a, c.Amount)
		logNotes(ctx, notes)
	}
	return nil
}
