package world

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomcrawl/internal/entity"
)

// Drawer is the rendering backend primitive.
type Drawer interface {
	Draw(x, y int, ch rune, fg, bg tcell.Color)
}

// Render draws remembered and visible tiles, then the entities standing on
// visible tiles in render order. Everything is drawn in viewport
// coordinates; cells outside the viewport are skipped.
func (m *GameMap) Render(d Drawer) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			vx, vy := m.ToView(x, y)
			if !m.InView(vx, vy) {
				continue
			}
			g, ok := m.Tile(x, y).Graphic()
			if !ok {
				continue
			}
			d.Draw(vx, vy, g.Char, g.FG, g.BG)
		}
	}

	for _, e := range m.DrawOrder() {
		if !m.IsVisible(e.X, e.Y) {
			continue
		}
		vx, vy := m.ToView(e.X, e.Y)
		if !m.InView(vx, vy) {
			continue
		}
		bg := e.BG
		if bg == tcell.ColorBlack || bg == tcell.ColorDefault {
			bg = m.Tile(e.X, e.Y).Light.BG
		}
		d.Draw(vx, vy, e.Glyph, e.FG, bg)
	}
}

// DrawOrder returns the entities sorted by render order, ties kept in
// entity-list order.
func (m *GameMap) DrawOrder() []*entity.Entity {
	sorted := slices.Clone(m.Entities)
	for _, e := range sorted {
		if e.RenderOrder < entity.RenderCorpse || e.RenderOrder > entity.RenderActor {
			panic(fmt.Sprintf("world: %s has invalid render order %d", e.Name, e.RenderOrder))
		}
	}
	slices.SortStableFunc(sorted, func(a, b *entity.Entity) int {
		return int(a.RenderOrder) - int(b.RenderOrder)
	})
	return sorted
}
