package action

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
	"github.com/samdwyer/gloomcrawl/internal/logger"
)

// TakeTurn runs one turn of actor's AI. A returned *Impossible means the
// chosen action failed; the caller decides whether that matters.
func TakeTurn(ctx *Context, actor *entity.Entity) error {
	if actor.AI == nil {
		panic("action: actor " + actor.Name + " has no AI")
	}

	switch actor.AI.Kind {
	case entity.AIHostile:
		return Perform(ctx, actor, hostile(ctx, actor))
	case entity.AIConfused:
		return confused(ctx, actor)
	default:
		panic(fmt.Sprintf("action: unknown AI kind %d", actor.AI.Kind))
	}
}

// hostile picks the hostile action: attack when adjacent, otherwise close
// in along a path, and idle while the player cannot see it.
func hostile(ctx *Context, actor *entity.Entity) Action {
	target := ctx.Player
	if target == nil || !ctx.Map.IsVisible(actor.X, actor.Y) {
		return Wait()
	}

	dx, dy := target.X-actor.X, target.Y-actor.Y
	if max(abs(dx), abs(dy)) <= 1 {
		return Melee(dx, dy)
	}

	path := PathTo(ctx.Map, actor.X, actor.Y, target.X, target.Y)
	if len(path) == 0 {
		logger.Component("ai").WithFields(logrus.Fields{
			"actor": actor.ID,
			"name":  actor.Name,
		}).Debug("no path to player")
		return Wait()
	}
	next := path[0]
	return Move(next.X-actor.X, next.Y-actor.Y)
}

func confused(ctx *Context, actor *entity.Entity) error {
	ai := actor.AI
	if ai.TurnsLeft <= 0 {
		actor.AI = ai.Previous
		logText(ctx, fmt.Sprintf("The %s is no longer confused.", actor.Name), gamedata.ColorWhite)
		return nil
	}

	ai.TurnsLeft--
	d := neighbours[ctx.Rand.Intn(len(neighbours))]
	return Perform(ctx, actor, Bump(d.X, d.Y))
}
