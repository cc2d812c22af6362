// Package world provides the tile map, camera, field of view and spatial queries.
package world

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/gamedata"
)

// Graphic is how a tile is drawn in one lighting state.
type Graphic struct {
	Char   rune
	FG, BG tcell.Color
}

// Tile is a single map cell. Walkable and Transparent are fixed at
// generation; Visible is recomputed every FOV pass and Seen never resets.
type Tile struct {
	Walkable    bool
	Transparent bool
	Visible     bool
	Seen        bool
	Dark        Graphic
	Light       Graphic
}

var (
	floorDark  = Graphic{Char: '.', FG: gamedata.MustParseHexColor("#646464"), BG: gamedata.MustParseHexColor("#40484D")}
	floorLight = Graphic{Char: '.', FG: gamedata.MustParseHexColor("#C8B48C"), BG: gamedata.MustParseHexColor("#8B4513")}
	wallDark   = Graphic{Char: '#', FG: gamedata.MustParseHexColor("#505050"), BG: gamedata.MustParseHexColor("#22282B")}
	wallLight  = Graphic{Char: '#', FG: gamedata.MustParseHexColor("#D2B48C"), BG: gamedata.MustParseHexColor("#A52A2A")}
)

// Floor returns a walkable, transparent tile.
func Floor() Tile {
	return Tile{Walkable: true, Transparent: true, Dark: floorDark, Light: floorLight}
}

// Wall returns a blocking, opaque tile.
func Wall() Tile {
	return Tile{Walkable: false, Transparent: false, Dark: wallDark, Light: wallLight}
}

// Graphic returns the graphic to draw and whether anything is drawn at all:
// light when visible, dark when only remembered, nothing otherwise.
func (t *Tile) Graphic() (Graphic, bool) {
	switch {
	case t.Visible:
		return t.Light, true
	case t.Seen:
		return t.Dark, true
	default:
		return Graphic{}, false
	}
}
