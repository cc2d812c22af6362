package game

import (
	"context"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gloomcrawl/internal/action"
	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
	"github.com/samdwyer/gloomcrawl/internal/input"
	"github.com/samdwyer/gloomcrawl/internal/logger"
	"github.com/samdwyer/gloomcrawl/internal/msglog"
	"github.com/samdwyer/gloomcrawl/internal/telemetry"
	"github.com/samdwyer/gloomcrawl/internal/world"
)

// WelcomeText is the first message of every game.
const WelcomeText = "Hello and welcome, adventurer, to yet another dungeon!"

// Engine owns the world and advances it one player action at a time.
type Engine struct {
	Player *entity.Entity
	Map    *world.GameMap
	Log    *msglog.Log
	State  input.State

	fovRadius int
	rand      *rand.Rand
	tracer    trace.Tracer
	log       *logrus.Entry
}

// NewEngine wires a generated map to a fresh message log and computes the
// player's initial field of view.
func NewEngine(cfg *Config, m *world.GameMap, player *entity.Entity, rng *rand.Rand, opts ...msglog.Option) *Engine {
	e := &Engine{
		Player:    player,
		Map:       m,
		Log:       msglog.New(opts...),
		fovRadius: cfg.Player.FOVRadius,
		rand:      rng,
		tracer:    telemetry.Tracer("game"),
		log:       logger.Component("engine"),
	}
	e.Log.Add(WelcomeText, gamedata.ColorWelcomeText)
	e.Map.UpdateFOV(player.X, player.Y, e.fovRadius)
	return e
}

func (e *Engine) context() *action.Context {
	return &action.Context{Map: e.Map, Log: e.Log, Player: e.Player, Rand: e.rand}
}

// View is the read-only snapshot the input layer works from.
func (e *Engine) View() input.View {
	return input.View{
		PlayerX:      e.Player.X,
		PlayerY:      e.Player.Y,
		CameraX:      e.Map.CameraX,
		CameraY:      e.Map.CameraY,
		ViewWidth:    e.Map.ViewWidth,
		ViewHeight:   e.Map.ViewHeight,
		MessageCount: e.Log.Len(),
		Inventory:    e.Player.Inventory,
	}
}

// HandleEvent feeds one terminal event through the input state machine
// and, if it produced an action, resolves the turn. It reports whether a
// turn was consumed.
func (e *Engine) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	ctx, span := e.tracer.Start(ctx, "turn.process")
	defer span.End()

	out := input.Transition(e.State, e.View(), ev)
	e.State = out.State
	if out.Notice != "" {
		e.Log.Add(out.Notice, out.NoticeColor)
	}
	span.SetAttributes(attribute.String("input.mode", e.State.Mode.String()))

	if out.Action == nil {
		return false
	}
	a := *out.Action
	span.SetAttributes(attribute.String("turn.action", a.String()))

	// Dead players can still browse the log and look around.
	if !e.Player.IsAlive() {
		span.SetAttributes(attribute.String("turn.result", "player_dead"))
		return false
	}

	if err := action.Perform(e.context(), e.Player, a); err != nil {
		msg, ok := action.AsImpossible(err)
		if !ok {
			msg = err.Error()
		}
		e.Log.Add(msg, gamedata.ColorImpossible)
		span.SetAttributes(attribute.String("turn.result", "impossible"))
		return false
	}
	span.SetAttributes(attribute.String("turn.result", "ok"))

	if e.State.Mode == input.ModeGame {
		e.enemyTurns(ctx)
	}
	e.Map.UpdateFOV(e.Player.X, e.Player.Y, e.fovRadius)
	return true
}

// enemyTurns gives every living non-player actor one turn, in the order
// they were registered. Actors killed earlier in the same cycle are skipped.
func (e *Engine) enemyTurns(ctx context.Context) {
	_, span := e.tracer.Start(ctx, "turn.enemies")
	defer span.End()

	actx := e.context()
	acted := 0
	for _, actor := range e.Map.Actors() {
		if actor == e.Player || actor.AI == nil || !actor.IsAlive() {
			continue
		}
		acted++
		if err := action.TakeTurn(actx, actor); err != nil {
			e.log.WithFields(logrus.Fields{
				"actor": actor.ID,
				"name":  actor.Name,
				"error": err,
			}).Debug("enemy action failed")
		}
	}
	span.SetAttributes(attribute.Int("turn.acting", acted))
}
