package world

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gloomcrawl/internal/logger"
)

// FOVRadius is how far the player sees.
const FOVRadius = 14

// octants maps a row/column scan onto each of the eight octants.
var octants = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// UpdateFOV recomputes visibility from x, y. Every tile loses Visible
// first; tiles reached by recursive shadow casting within radius become
// Visible and Seen. Seen is never cleared.
func (m *GameMap) UpdateFOV(x, y, radius int) {
	for i := range m.Tiles {
		m.Tiles[i].Visible = false
	}

	if !m.InBounds(x, y) || radius < 0 {
		return
	}

	count := 0
	reveal := func(tx, ty int) {
		t := m.Tile(tx, ty)
		if t == nil {
			return
		}
		if !t.Visible {
			count++
		}
		t.Visible = true
		t.Seen = true
	}

	reveal(x, y)
	for i := 0; i < 8; i++ {
		m.castLight(x, y, 1, 1.0, 0.0, radius,
			octants[0][i], octants[1][i], octants[2][i], octants[3][i], reveal)
	}

	logger.Component("fov").WithFields(logrus.Fields{
		"origin_x":      x,
		"origin_y":      y,
		"radius":        radius,
		"visible_tiles": count,
	}).Debug("FOV updated")
}

// castLight scans one octant row by row, recursing past each opaque run.
// start and end are the slopes still lit.
func (m *GameMap) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, reveal func(x, y int)) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if dx*dx+dy*dy <= radiusSq {
				reveal(X, Y)
			}

			if blocked {
				if !m.lightPasses(X, Y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if !m.lightPasses(X, Y) && j < radius {
				blocked = true
				m.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, reveal)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// lightPasses treats everything off the map as opaque.
func (m *GameMap) lightPasses(x, y int) bool {
	t := m.Tile(x, y)
	return t != nil && t.Transparent
}
