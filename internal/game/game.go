// Package game provides the turn controller and the interactive main loop.
package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gloomcrawl/internal/dungeon"
	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
	"github.com/samdwyer/gloomcrawl/internal/input"
	"github.com/samdwyer/gloomcrawl/internal/logger"
	"github.com/samdwyer/gloomcrawl/internal/telemetry"
	"github.com/samdwyer/gloomcrawl/internal/ui"
)

// Game holds the terminal and the engine it drives.
type Game struct {
	cfg      *Config
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
	running  bool
}

// New creates a new game instance and takes over the terminal.
func New(cfg *Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open screen: %w", err)
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Setup builds the level and engine for cfg without touching a terminal.
func Setup(ctx context.Context, cfg *Config) (*Engine, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, err
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, err
	}

	seed := cfg.ResolveSeed()
	rng := rand.New(rand.NewSource(seed))

	player := entity.NewPlayer(0, 0)
	player.Inventory = entity.NewInventory(cfg.Player.InventoryCapacity)
	m := dungeon.Generate(ctx, cfg.DungeonParams(), player, monsters, items, rng)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("player.start_x", player.X),
		attribute.Int("player.start_y", player.Y),
	)
	logger.Component("game").WithField("seed", seed).Info("game initialised")

	return NewEngine(cfg, m, player, rng), nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	engine, err := Setup(ctx, g.cfg)
	if err != nil {
		return err
	}
	g.engine = engine

	for g.running {
		g.renderer.Render(ui.Frame{
			Map:    g.engine.Map,
			Player: g.engine.Player,
			Log:    g.engine.Log,
			State:  g.engine.State,
		})
		g.handleInput(ctx)
	}
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case nil:
		g.running = false
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		if g.quits(ev) {
			g.running = false
			return
		}
		g.engine.HandleEvent(ctx, ev)
	default:
		g.engine.HandleEvent(ctx, ev)
	}
}

// quits reports whether ev ends the game. Escape only quits from normal
// play; in the other modes it returns to it.
func (g *Game) quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		return g.engine.State.Mode == input.ModeGame
	}
	return false
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
