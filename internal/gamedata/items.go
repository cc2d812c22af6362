package gamedata

import "github.com/gdamore/tcell/v2"

// EffectType names what a consumable does when used.
type EffectType string

const (
	EffectHealing   EffectType = "healing"
	EffectLightning EffectType = "lightning"
	EffectConfusion EffectType = "confusion"
	EffectFireball  EffectType = "fireball"
)

// ItemDef defines a consumable item loaded from JSON.
//
// Amount is the hp healed or the damage dealt, Range bounds lightning's
// reach, Radius is the fireball blast and Turns the confusion length.
type ItemDef struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Glyph       string     `json:"glyph"`
	Color       string     `json:"color"`
	Effect      EffectType `json:"effect"`
	Amount      int        `json:"amount,omitempty"`
	Range       int        `json:"range,omitempty"`
	Radius      int        `json:"radius,omitempty"`
	Turns       int        `json:"turns,omitempty"`
	SpawnWeight int        `json:"spawnWeight"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ItemDef) GlyphRune() rune {
	return glyphRune(d.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (d *ItemDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

func (d ItemDef) key() string { return d.ID }
func (d ItemDef) weight() int { return d.SpawnWeight }

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
