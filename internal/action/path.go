package action

import (
	"container/heap"

	"github.com/samdwyer/gloomcrawl/internal/world"
)

// crowdCost is added for stepping through a tile a blocking entity
// occupies, so monsters route around each other when a detour exists.
const crowdCost = 10

var neighbours = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

type pathNode struct {
	idx  int
	g, f int
}

type nodeQueue []pathNode

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].f == q[j].f {
		return q[i].g > q[j].g
	}
	return q[i].f < q[j].f
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)   { *q = append(*q, x.(pathNode)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

// PathTo returns the 8-connected route from (fx, fy) to (tx, ty) over
// walkable tiles, excluding the start and including the goal. It returns
// nil when the goal is unreachable.
func PathTo(m *world.GameMap, fx, fy, tx, ty int) []Point {
	if !m.InBounds(fx, fy) || !m.InBounds(tx, ty) {
		return nil
	}
	if fx == tx && fy == ty {
		return nil
	}

	size := m.Width * m.Height
	cost := make([]int, size)
	for i := range cost {
		cost[i] = -1
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.IsWalkable(x, y) {
				cost[y*m.Width+x] = 1
			}
		}
	}
	for _, e := range m.Entities {
		if e.BlocksMovement && m.InBounds(e.X, e.Y) {
			if i := e.Y*m.Width + e.X; cost[i] > 0 {
				cost[i] += crowdCost
			}
		}
	}

	start := fy*m.Width + fx
	goal := ty*m.Width + tx
	if cost[goal] < 0 {
		return nil
	}

	h := func(idx int) int {
		x, y := idx%m.Width, idx/m.Width
		return max(abs(x-tx), abs(y-ty))
	}

	gScore := make([]int, size)
	from := make([]int, size)
	for i := range gScore {
		gScore[i] = -1
		from[i] = -1
	}
	gScore[start] = 0

	open := &nodeQueue{{idx: start, g: 0, f: h(start)}}
	for open.Len() > 0 {
		cur := heap.Pop(open).(pathNode)
		if cur.idx == goal {
			return reconstruct(m.Width, from, start, goal)
		}
		if cur.g > gScore[cur.idx] {
			continue
		}

		cx, cy := cur.idx%m.Width, cur.idx/m.Width
		for _, d := range neighbours {
			nx, ny := cx+d.X, cy+d.Y
			if !m.InBounds(nx, ny) {
				continue
			}
			next := ny*m.Width + nx
			step := cost[next]
			if step < 0 {
				continue
			}
			if next == goal {
				step = 1
			}
			g := cur.g + step
			if gScore[next] >= 0 && g >= gScore[next] {
				continue
			}
			gScore[next] = g
			from[next] = cur.idx
			heap.Push(open, pathNode{idx: next, g: g, f: g + h(next)})
		}
	}
	return nil
}

func reconstruct(width int, from []int, start, goal int) []Point {
	var rev []Point
	for idx := goal; idx != start; idx = from[idx] {
		rev = append(rev, Point{X: idx % width, Y: idx / width})
	}
	path := make([]Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
