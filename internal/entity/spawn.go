package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/gamedata"
)

// Player defaults.
const (
	PlayerMaxHP   = 30
	PlayerDefense = 2
	PlayerPower   = 5
)

// NewPlayer creates the player actor.
func NewPlayer(x, y int) *Entity {
	e := New(x, y, '@', tcell.ColorWhite, tcell.ColorBlue, "Player")
	e.BlocksMovement = true
	e.RenderOrder = RenderActor
	e.Player = true
	e.Fighter = NewFighter(PlayerMaxHP, PlayerDefense, PlayerPower)
	e.Inventory = NewInventory(DefaultCapacity)
	return e
}

// NewActor creates a non-player actor with a hostile AI.
func NewActor(x, y int, glyph rune, fg tcell.Color, name string, fighter *Fighter) *Entity {
	e := New(x, y, glyph, fg, tcell.ColorBlack, name)
	e.BlocksMovement = true
	e.RenderOrder = RenderActor
	e.Fighter = fighter
	e.AI = Hostile()
	e.Inventory = NewInventory(0)
	return e
}

// NewMonster creates a hostile actor from a data-driven definition.
func NewMonster(def *gamedata.MonsterDef, x, y int) *Entity {
	return NewActor(x, y, def.GlyphRune(), def.TCellColor(), def.Name,
		NewFighter(def.HP, def.Defense, def.Power))
}

// NewItem creates a consumable item from a data-driven definition.
func NewItem(def *gamedata.ItemDef, x, y int) *Entity {
	e := New(x, y, def.GlyphRune(), def.TCellColor(), tcell.ColorBlack, def.Name)
	e.RenderOrder = RenderItem
	e.Consumable = ConsumableFromDef(def)
	return e
}
