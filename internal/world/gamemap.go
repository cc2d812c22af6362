package world

import (
	"strings"

	"github.com/samdwyer/gloomcrawl/internal/entity"
)

// GameMap is the tile grid plus everything placed on it.
//
// Entities is unordered as far as gameplay goes; iteration order only
// matters for tie-breaks (pickup, AI turn order) and equal render orders.
type GameMap struct {
	Width, Height int
	Tiles         []Tile // row-major, index y*Width+x
	Entities      []*entity.Entity

	// Camera is the world coordinate drawn at viewport origin 0,0.
	CameraX, CameraY      int
	ViewWidth, ViewHeight int
}

// New creates a map filled with walls.
func New(width, height, viewWidth, viewHeight int) *GameMap {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Wall()
	}
	return &GameMap{
		Width:      width,
		Height:     height,
		Tiles:      tiles,
		ViewWidth:  viewWidth,
		ViewHeight: viewHeight,
	}
}

// InBounds reports whether x, y lies on the map.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at x, y, or nil when out of bounds.
func (m *GameMap) Tile(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return &m.Tiles[y*m.Width+x]
}

// SetTile replaces the tile at x, y. Out-of-bounds writes are ignored.
func (m *GameMap) SetTile(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.Tiles[y*m.Width+x] = t
	}
}

// IsWalkable reports whether x, y is on the map and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	t := m.Tile(x, y)
	return t != nil && t.Walkable
}

// IsVisible reports whether x, y is currently in the player's field of view.
func (m *GameMap) IsVisible(x, y int) bool {
	t := m.Tile(x, y)
	return t != nil && t.Visible
}

// Add registers an entity on the map and makes the map its owner.
func (m *GameMap) Add(e *entity.Entity) {
	m.Entities = append(m.Entities, e)
	e.SetParent(m)
}

// Remove unregisters an entity. It reports whether it was present.
func (m *GameMap) Remove(e *entity.Entity) bool {
	for i, other := range m.Entities {
		if other == e {
			m.Entities = append(m.Entities[:i], m.Entities[i+1:]...)
			if e.Parent() == entity.Parent(m) {
				e.SetParent(nil)
			}
			return true
		}
	}
	return false
}

// Contains reports whether the entity is registered on the map.
func (m *GameMap) Contains(e *entity.Entity) bool {
	for _, other := range m.Entities {
		if other == e {
			return true
		}
	}
	return false
}

// BlockingEntityAt returns the first movement-blocking entity at x, y.
func (m *GameMap) BlockingEntityAt(x, y int) *entity.Entity {
	for _, e := range m.Entities {
		if e.BlocksMovement && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// ActorAt returns the first living actor at x, y.
func (m *GameMap) ActorAt(x, y int) *entity.Entity {
	for _, e := range m.Entities {
		if e.IsAlive() && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// ItemsAt returns the items at x, y in entity-list order.
func (m *GameMap) ItemsAt(x, y int) []*entity.Entity {
	var items []*entity.Entity
	for _, e := range m.Entities {
		if e.IsItem() && e.X == x && e.Y == y {
			items = append(items, e)
		}
	}
	return items
}

// Actors returns every living actor in entity-list order.
func (m *GameMap) Actors() []*entity.Entity {
	var actors []*entity.Entity
	for _, e := range m.Entities {
		if e.IsAlive() {
			actors = append(actors, e)
		}
	}
	return actors
}

// Items returns every item lying on the map.
func (m *GameMap) Items() []*entity.Entity {
	var items []*entity.Entity
	for _, e := range m.Entities {
		if e.IsItem() {
			items = append(items, e)
		}
	}
	return items
}

// NamesAt lists what can be seen at x, y, for look mode and mouse hover.
func (m *GameMap) NamesAt(x, y int) string {
	if !m.IsVisible(x, y) {
		return ""
	}
	var names []string
	for _, e := range m.Entities {
		if e.X == x && e.Y == y {
			names = append(names, e.Name)
		}
	}
	out := strings.Join(names, ", ")
	if out == "" {
		return out
	}
	return strings.ToUpper(out[:1]) + out[1:]
}

// CenterOn moves the camera so x, y sits in the middle of the viewport.
func (m *GameMap) CenterOn(x, y int) {
	m.CameraX = x - m.ViewWidth/2
	m.CameraY = y - m.ViewHeight/2
}

// ToView converts world coordinates to viewport coordinates.
func (m *GameMap) ToView(x, y int) (int, int) {
	return x - m.CameraX, y - m.CameraY
}

// ToWorld converts viewport coordinates to world coordinates.
func (m *GameMap) ToWorld(vx, vy int) (int, int) {
	return vx + m.CameraX, vy + m.CameraY
}

// InView reports whether viewport coordinates fall inside the viewport.
func (m *GameMap) InView(vx, vy int) bool {
	return vx >= 0 && vx < m.ViewWidth && vy >= 0 && vy < m.ViewHeight
}
