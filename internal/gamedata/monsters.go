package gamedata

import "github.com/gdamore/tcell/v2"

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string `json:"name"`        // Display name (e.g., "Orc")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "o")
	Color       string `json:"color"`       // Hex color code (e.g., "#3F7F3F")
	HP          int    `json:"hp"`          // Base hit points
	Power       int    `json:"power"`       // Melee power
	Defense     int    `json:"defense"`     // Damage subtracted from incoming melee
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	return glyphRune(m.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (m *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

func (m MonsterDef) key() string { return m.ID }
func (m MonsterDef) weight() int { return m.SpawnWeight }

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}

func glyphRune(glyph string) rune {
	for _, r := range glyph {
		return r
	}
	return '?'
}
