package action

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
	"github.com/samdwyer/gloomcrawl/internal/msglog"
	"github.com/samdwyer/gloomcrawl/internal/world"
)

// newTestContext builds an open 20x20 room, walls on the border, with the
// player at (5, 5) and its field of view computed.
func newTestContext(t *testing.T) *Context {
	t.Helper()
	m := world.New(20, 20, 20, 20)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			m.SetTile(x, y, world.Floor())
		}
	}
	player := entity.NewPlayer(5, 5)
	m.Add(player)
	m.UpdateFOV(player.X, player.Y, world.FOVRadius)
	return &Context{
		Map:    m,
		Log:    msglog.New(),
		Player: player,
		Rand:   rand.New(rand.NewSource(1)),
	}
}

func addMonster(ctx *Context, x, y, hp, defense, power int) *entity.Entity {
	e := entity.NewActor(x, y, 'o', tcell.ColorGreen, "orc", entity.NewFighter(hp, defense, power))
	ctx.Map.Add(e)
	return e
}

func addItem(ctx *Context, effect gamedata.EffectType, x, y int) *entity.Entity {
	def := &gamedata.ItemDef{
		ID: string(effect), Name: string(effect) + " thing", Glyph: "!", Color: "#FFFFFF",
		Effect: effect, Amount: 4, Range: 5, Radius: 3, Turns: 10,
	}
	e := entity.NewItem(def, x, y)
	ctx.Map.Add(e)
	return e
}

func give(ctx *Context, item *entity.Entity) {
	ctx.Map.Remove(item)
	ctx.Player.Inventory.Add(item)
}

func wantImpossible(t *testing.T, err error, msg string) {
	t.Helper()
	got, ok := AsImpossible(err)
	if !ok {
		t.Fatalf("err = %v, want Impossible %q", err, msg)
	}
	if got != msg {
		t.Errorf("Impossible = %q, want %q", got, msg)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name         string
		dx, dy       int
		wantX, wantY int
		wantErr      string
	}{
		{"floor", 1, 0, 6, 5, ""},
		{"diagonal", -1, -1, 4, 4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			if err := Perform(ctx, ctx.Player, Move(tt.dx, tt.dy)); err != nil {
				t.Fatalf("Perform() error = %v", err)
			}
			if ctx.Player.X != tt.wantX || ctx.Player.Y != tt.wantY {
				t.Errorf("position = (%d,%d), want (%d,%d)", ctx.Player.X, ctx.Player.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveBlocked(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Player.X, ctx.Player.Y = 1, 1

	wantImpossible(t, Perform(ctx, ctx.Player, Move(-1, 0)), MsgBlocked)
	wantImpossible(t, Perform(ctx, ctx.Player, Move(0, -1)), MsgBlocked)

	addMonster(ctx, 2, 1, 10, 0, 3)
	wantImpossible(t, Perform(ctx, ctx.Player, Move(1, 0)), MsgBlocked)

	if ctx.Player.X != 1 || ctx.Player.Y != 1 {
		t.Errorf("position = (%d,%d), want (1,1)", ctx.Player.X, ctx.Player.Y)
	}
	if ctx.Log.Len() != 0 {
		t.Errorf("Log.Len() = %d, want 0", ctx.Log.Len())
	}
}

func TestMoveRecentresCamera(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Map.ViewWidth, ctx.Map.ViewHeight = 10, 10

	if err := Perform(ctx, ctx.Player, Move(1, 1)); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if ctx.Map.CameraX != 1 || ctx.Map.CameraY != 1 {
		t.Errorf("camera = (%d,%d), want (1,1)", ctx.Map.CameraX, ctx.Map.CameraY)
	}
}

func TestMelee(t *testing.T) {
	tests := []struct {
		name    string
		power   int
		defense int
		wantHP  int
		wantMsg string
	}{
		{"damage", 5, 3, 8, "PLAYER attacks orc for 2 hit points."},
		{"no damage", 2, 5, 10, "PLAYER attacks orc but does no damage."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			ctx.Player.Fighter.Power = tt.power
			orc := addMonster(ctx, 6, 5, 10, tt.defense, 3)

			if err := Perform(ctx, ctx.Player, Melee(1, 0)); err != nil {
				t.Fatalf("Perform() error = %v", err)
			}
			if orc.Fighter.HP != tt.wantHP {
				t.Errorf("HP = %d, want %d", orc.Fighter.HP, tt.wantHP)
			}
			if got := ctx.Log.Last().Text; got != tt.wantMsg {
				t.Errorf("log = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestMeleeEmptyTile(t *testing.T) {
	ctx := newTestContext(t)
	wantImpossible(t, Perform(ctx, ctx.Player, Melee(1, 0)), MsgNothingToAttack)
}

func TestMeleeKills(t *testing.T) {
	ctx := newTestContext(t)
	orc := addMonster(ctx, 6, 5, 2, 0, 3)

	if err := Perform(ctx, ctx.Player, Melee(1, 0)); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if orc.IsAlive() {
		t.Fatal("orc still alive")
	}
	if orc.BlocksMovement || orc.Name != "Remains of orc" {
		t.Errorf("corpse = %q blocks=%v", orc.Name, orc.BlocksMovement)
	}
	if got := ctx.Log.Last().Text; got != "orc is dead!" {
		t.Errorf("log = %q, want %q", got, "orc is dead!")
	}
	// Corpses no longer count for melee and do not block.
	wantImpossible(t, Perform(ctx, ctx.Player, Melee(1, 0)), MsgNothingToAttack)
	if err := Perform(ctx, ctx.Player, Move(1, 0)); err != nil {
		t.Errorf("Move() onto corpse error = %v", err)
	}
}

func TestBump(t *testing.T) {
	ctx := newTestContext(t)
	orc := addMonster(ctx, 6, 5, 10, 0, 3)

	if err := Perform(ctx, ctx.Player, Bump(1, 0)); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if orc.Fighter.HP != 5 || ctx.Player.X != 5 {
		t.Errorf("bump into orc: hp=%d x=%d, want hp=5 x=5", orc.Fighter.HP, ctx.Player.X)
	}

	if err := Perform(ctx, ctx.Player, Bump(0, 1)); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if ctx.Player.Y != 6 {
		t.Errorf("bump into floor: y=%d, want 6", ctx.Player.Y)
	}
}

func TestPickup(t *testing.T) {
	ctx := newTestContext(t)
	first := addItem(ctx, gamedata.EffectHealing, 5, 5)
	second := addItem(ctx, gamedata.EffectHealing, 5, 5)

	if err := Perform(ctx, ctx.Player, Pickup()); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if !ctx.Player.Inventory.Contains(first) || ctx.Map.Contains(first) {
		t.Error("first item should move from map to inventory")
	}
	if ctx.Player.Inventory.Contains(second) || !ctx.Map.Contains(second) {
		t.Error("second item should stay on the map")
	}
	if first.Parent() != entity.Parent(ctx.Player.Inventory) {
		t.Error("item parent should be the inventory")
	}
	if n := len(ctx.Player.Inventory.Items); n != 1 {
		t.Errorf("inventory size = %d, want 1", n)
	}
	if got := ctx.Log.Last().Text; got != "You picked up the healing thing!" {
		t.Errorf("log = %q", got)
	}
}

func TestPickupFull(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Player.Inventory = entity.NewInventory(1)
	give(ctx, addItem(ctx, gamedata.EffectHealing, 1, 1))
	item := addItem(ctx, gamedata.EffectHealing, 5, 5)

	wantImpossible(t, Perform(ctx, ctx.Player, Pickup()), MsgInventoryFull)
	if !ctx.Map.Contains(item) {
		t.Error("item should remain on the map")
	}
	if item.Parent() != entity.Parent(ctx.Map) {
		t.Error("item parent should still be the map")
	}
}

func TestPickupNothing(t *testing.T) {
	ctx := newTestContext(t)
	addItem(ctx, gamedata.EffectHealing, 6, 5)
	wantImpossible(t, Perform(ctx, ctx.Player, Pickup()), MsgNothingHere)
}

func TestDrop(t *testing.T) {
	ctx := newTestContext(t)
	item := addItem(ctx, gamedata.EffectHealing, 1, 1)
	give(ctx, item)

	if err := Perform(ctx, ctx.Player, Drop(item)); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if ctx.Player.Inventory.Contains(item) || !ctx.Map.Contains(item) {
		t.Error("item should move from inventory to map")
	}
	if item.X != 5 || item.Y != 5 {
		t.Errorf("item at (%d,%d), want (5,5)", item.X, item.Y)
	}
	if got := ctx.Log.Last().Text; got != "You dropped the healing thing." {
		t.Errorf("log = %q", got)
	}
	wantImpossible(t, Perform(ctx, ctx.Player, Drop(item)), MsgNotCarrying)
}

func TestUseHealing(t *testing.T) {
	ctx := newTestContext(t)
	potion := addItem(ctx, gamedata.EffectHealing, 1, 1)
	give(ctx, potion)

	wantImpossible(t, Perform(ctx, ctx.Player, UseItem(potion, nil)), MsgHealthFull)
	if !ctx.Player.Inventory.Contains(potion) {
		t.Fatal("refused potion should not be consumed")
	}

	ctx.Player.Fighter.HP = 28
	if err := Perform(ctx, ctx.Player, UseItem(potion, nil)); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if ctx.Player.Fighter.HP != 30 {
		t.Errorf("HP = %d, want 30", ctx.Player.Fighter.HP)
	}
	if got := ctx.Log.Last().Text; got != "You consume the healing thing, and recover 2 HP!" {
		t.Errorf("log = %q", got)
	}
	if ctx.Player.Inventory.Contains(potion) || potion.Parent() != nil {
		t.Error("potion should be consumed")
	}
}

func TestUseLightning(t *testing.T) {
	ctx := newTestContext(t)
	scroll := addItem(ctx, gamedata.EffectLightning, 1, 1)
	give(ctx, scroll)

	far := addMonster(ctx, 12, 5, 10, 0, 3)
	wantImpossible(t, Perform(ctx, ctx.Player, UseItem(scroll, nil)), MsgNoEnemyInRange)

	near := addMonster(ctx, 8, 5, 10, 0, 3)
	if err := Perform(ctx, ctx.Player, UseItem(scroll, nil)); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if near.Fighter.HP != 6 || far.Fighter.HP != 10 {
		t.Errorf("hp near=%d far=%d, want 6 and 10", near.Fighter.HP, far.Fighter.HP)
	}
	if !strings.HasPrefix(ctx.Log.Last().Text, "A lightning bolt strikes the orc") {
		t.Errorf("log = %q", ctx.Log.Last().Text)
	}
}

func TestUseConfusion(t *testing.T) {
	ctx := newTestContext(t)
	scroll := addItem(ctx, gamedata.EffectConfusion, 1, 1)
	give(ctx, scroll)
	orc := addMonster(ctx, 7, 5, 10, 0, 3)
	previous := orc.AI

	wantImpossible(t, Perform(ctx, ctx.Player, UseItem(scroll, nil)), MsgNeedsTarget)
	wantImpossible(t, Perform(ctx, ctx.Player, UseItem(scroll, &Point{8, 8})), MsgSelectEnemy)
	wantImpossible(t, Perform(ctx, ctx.Player, UseItem(scroll, &Point{5, 5})), MsgConfuseSelf)

	ctx.Map.Tile(7, 5).Visible = false
	wantImpossible(t, Perform(ctx, ctx.Player, UseItem(scroll, &Point{7, 5})), MsgCannotSee)
	ctx.Map.Tile(7, 5).Visible = true

	if err := Perform(ctx, ctx.Player, UseItem(scroll, &Point{7, 5})); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if orc.AI.Kind != entity.AIConfused || orc.AI.TurnsLeft != 10 || orc.AI.Previous != previous {
		t.Errorf("AI = %+v, want confused for 10 wrapping the hostile AI", orc.AI)
	}
	if ctx.Player.Inventory.Contains(scroll) {
		t.Error("scroll should be consumed")
	}
}

func TestUseFireball(t *testing.T) {
	ctx := newTestContext(t)
	scroll := addItem(ctx, gamedata.EffectFireball, 1, 1)
	give(ctx, scroll)
	inside := addMonster(ctx, 10, 5, 10, 0, 3)
	edge := addMonster(ctx, 10, 8, 10, 0, 3)
	outside := addMonster(ctx, 14, 5, 10, 0, 3)

	wantImpossible(t, Perform(ctx, ctx.Player, UseItem(scroll, &Point{14, 14})), MsgNoTargets)

	if err := Perform(ctx, ctx.Player, UseItem(scroll, &Point{10, 5})); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	if inside.Fighter.HP != 6 || edge.Fighter.HP != 6 {
		t.Errorf("hp inside=%d edge=%d, want 6", inside.Fighter.HP, edge.Fighter.HP)
	}
	if outside.Fighter.HP != 10 || ctx.Player.Fighter.HP != 30 {
		t.Errorf("hp outside=%d player=%d, want untouched", outside.Fighter.HP, ctx.Player.Fighter.HP)
	}
}

func TestUseNotCarried(t *testing.T) {
	ctx := newTestContext(t)
	potion := addItem(ctx, gamedata.EffectHealing, 5, 5)
	ctx.Player.Fighter.HP = 10
	wantImpossible(t, Perform(ctx, ctx.Player, UseItem(potion, nil)), MsgNotCarrying)
	if ctx.Player.Fighter.HP != 10 {
		t.Errorf("HP = %d, want 10", ctx.Player.Fighter.HP)
	}
}

func TestPerformPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Perform() did not panic")
		}
	}()
	ctx := newTestContext(t)
	_ = Perform(ctx, ctx.Player, Action{Kind: Kind(99)})
}
