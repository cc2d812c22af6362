// Package dungeon builds a level: rooms from a BSP split joined by
// L-shaped corridors, then the player, monsters and items placed inside.
package dungeon

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gloomcrawl/internal/entity"
	"github.com/samdwyer/gloomcrawl/internal/gamedata"
	"github.com/samdwyer/gloomcrawl/internal/logger"
	"github.com/samdwyer/gloomcrawl/internal/telemetry"
	"github.com/samdwyer/gloomcrawl/internal/world"
)

// Params controls the size and population of a level.
type Params struct {
	Width, Height      int
	MaxRooms           int
	MinRoomSize        int
	MaxRoomSize        int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
	ViewWidth          int
	ViewHeight         int
}

// DefaultParams returns the standard level layout.
func DefaultParams() Params {
	return Params{
		Width:              100,
		Height:             48,
		MaxRooms:           30,
		MinRoomSize:        6,
		MaxRoomSize:        10,
		MaxMonstersPerRoom: 2,
		MaxItemsPerRoom:    2,
		ViewWidth:          80,
		ViewHeight:         43,
	}
}

// Generate builds a new map and places player, monsters and items on it.
// Either registry may be nil to leave that kind out. The same params and
// seed always produce the same level.
func Generate(ctx context.Context, p Params, player *entity.Entity,
	monsters *gamedata.MonsterRegistry, items *gamedata.ItemRegistry, rng *rand.Rand) *world.GameMap {
	_, span := telemetry.Tracer("dungeon").Start(ctx, "dungeon.generate")
	defer span.End()
	start := time.Now()

	b := newBuilder(p, rng)
	b.layout()
	b.placePlayer(player)
	nMonsters := b.populate(monsters, items)
	b.m.CenterOn(player.X, player.Y)

	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.room_count", len(b.rooms)),
		attribute.Int("dungeon.monster_count", nMonsters),
		attribute.Int("dungeon.entity_count", len(b.m.Entities)),
		attribute.Int64("dungeon.generation_ms", time.Since(start).Milliseconds()),
	)
	logger.Component("dungeon").WithFields(logrus.Fields{
		"rooms":    len(b.rooms),
		"monsters": nMonsters,
		"entities": len(b.m.Entities),
	}).Info("level generated")

	return b.m
}

type builder struct {
	p     Params
	rng   *rand.Rand
	m     *world.GameMap
	rooms []Room
}

func newBuilder(p Params, rng *rand.Rand) *builder {
	return &builder{
		p:   p,
		rng: rng,
		m:   world.New(p.Width, p.Height, p.ViewWidth, p.ViewHeight),
	}
}

// layout splits the map, carves one room per leaf up to MaxRooms and
// joins sibling subtrees with corridors.
func (b *builder) layout() {
	root := &bspNode{x: 1, y: 1, width: b.p.Width - 2, height: b.p.Height - 2}
	b.split(root)
	b.createRooms(root)
	b.connect(root)
}

func (b *builder) placePlayer(player *entity.Entity) {
	x, y := b.p.Width/2, b.p.Height/2
	if len(b.rooms) > 0 {
		x, y = b.rooms[0].Center()
	} else {
		b.m.SetTile(x, y, world.Floor())
	}
	player.X, player.Y = x, y
	b.m.Add(player)
}

// populate places up to the per-room maximum of monsters and items in
// every room. Positions already taken are skipped, not retried.
func (b *builder) populate(monsters *gamedata.MonsterRegistry, items *gamedata.ItemRegistry) int {
	placed := 0
	for _, room := range b.rooms {
		if monsters != nil && monsters.Count() > 0 {
			n := b.rng.Intn(b.p.MaxMonstersPerRoom + 1)
			for i := 0; i < n; i++ {
				x, y := b.randomPoint(room)
				if b.m.BlockingEntityAt(x, y) != nil {
					continue
				}
				def := monsters.SpawnRandom(b.rng)
				if def == nil {
					continue
				}
				b.m.Add(entity.NewMonster(def, x, y))
				placed++
			}
		}
		if items != nil && items.Count() > 0 {
			n := b.rng.Intn(b.p.MaxItemsPerRoom + 1)
			for i := 0; i < n; i++ {
				x, y := b.randomPoint(room)
				if b.m.BlockingEntityAt(x, y) != nil || len(b.m.ItemsAt(x, y)) > 0 {
					continue
				}
				if def := items.SpawnRandom(b.rng); def != nil {
					b.m.Add(entity.NewItem(def, x, y))
				}
			}
		}
	}
	return placed
}

func (b *builder) randomPoint(r Room) (int, int) {
	return r.X + b.rng.Intn(r.Width), r.Y + b.rng.Intn(r.Height)
}

type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (b *builder) minLeaf() int {
	return b.p.MinRoomSize + 2
}

func (b *builder) split(node *bspNode) {
	minLeaf := b.minLeaf()
	if node.width < minLeaf*2 && node.height < minLeaf*2 {
		return
	}

	var horizontal bool
	switch {
	case node.width > node.height && node.width >= minLeaf*2:
		horizontal = false
	case node.height >= minLeaf*2:
		horizontal = true
	case node.width >= minLeaf*2:
		horizontal = false
	default:
		return
	}

	size := node.width
	if horizontal {
		size = node.height
	}
	hi := size - minLeaf
	if hi < minLeaf {
		return
	}
	pos := minLeaf + b.rng.Intn(hi-minLeaf+1)

	if horizontal {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: pos}
		node.right = &bspNode{x: node.x, y: node.y + pos, width: node.width, height: node.height - pos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: pos, height: node.height}
		node.right = &bspNode{x: node.x + pos, y: node.y, width: node.width - pos, height: node.height}
	}

	b.split(node.left)
	b.split(node.right)
}

func (b *builder) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		b.createRooms(node.left)
		b.createRooms(node.right)
		return
	}
	if len(b.rooms) >= b.p.MaxRooms {
		return
	}

	maxW := min(b.p.MaxRoomSize, node.width-2)
	maxH := min(b.p.MaxRoomSize, node.height-2)
	if maxW < b.p.MinRoomSize || maxH < b.p.MinRoomSize {
		return
	}
	w := b.p.MinRoomSize + b.rng.Intn(maxW-b.p.MinRoomSize+1)
	h := b.p.MinRoomSize + b.rng.Intn(maxH-b.p.MinRoomSize+1)

	room := Room{
		X:      node.x + 1 + b.rng.Intn(node.width-w-1),
		Y:      node.y + 1 + b.rng.Intn(node.height-h-1),
		Width:  w,
		Height: h,
	}
	node.room = &room
	b.rooms = append(b.rooms, room)
	b.carveRoom(room)
}

func (b *builder) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			b.carve(x, y)
		}
	}
}

// carve turns x, y into floor, leaving the outer border solid.
func (b *builder) carve(x, y int) {
	if x > 0 && x < b.p.Width-1 && y > 0 && y < b.p.Height-1 {
		b.m.SetTile(x, y, world.Floor())
	}
}

func (b *builder) connect(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}
	b.connect(node.left)
	b.connect(node.right)

	left, right := roomIn(node.left), roomIn(node.right)
	if left != nil && right != nil {
		b.corridor(*left, *right)
	}
}

// roomIn returns any room from the subtree, preferring the left side.
func roomIn(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if r := roomIn(node.left); r != nil {
		return r
	}
	return roomIn(node.right)
}

// corridor joins two room centres with an L-shaped tunnel, bending
// either horizontally or vertically first.
func (b *builder) corridor(r1, r2 Room) {
	x1, y1 := r1.Center()
	x2, y2 := r2.Center()

	if b.rng.Intn(2) == 0 {
		b.hTunnel(x1, x2, y1)
		b.vTunnel(y1, y2, x2)
	} else {
		b.vTunnel(y1, y2, x1)
		b.hTunnel(x1, x2, y2)
	}
}

func (b *builder) hTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.carve(x, y)
	}
}

func (b *builder) vTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.carve(x, y)
	}
}
