package main

import (
	"math"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

// Map generation constants.
const (
	RoomMinSize  = 6  // minimum room side length
	RoomMaxSize  = 20 // maximum room side length
	BaseMaxRooms = 4  // room placements attempted at the shallowest level
	CaveMinSize  = 30 // minimum cave side length
	CaveMaxSize  = 70 // maximum cave side length
	MaxCaves     = 4  // cave placements attempted per cave level
	BaseMapSize  = 90 // side length of the home level's map
	MapSizeStep  = 10 // map growth per descent through the room levels
)

// Depth bands. A new game starts at HomeDepth. Levels strictly between
// HomeDepth and CaveDepth use rooms and tunnels, deeper ones use caves.
const (
	HomeDepth = 10
	CaveDepth = 20
)

// MapSizeForDepth returns the side length of the square map at the given
// depth. Maps grow while descending through the room levels and keep the
// maximum size in the caves.
func MapSizeForDepth(depth int) int {
	switch {
	case depth <= HomeDepth:
		return BaseMapSize
	case depth < CaveDepth:
		return BaseMapSize + MapSizeStep*(depth-HomeDepth)
	default:
		return BaseMapSize + MapSizeStep*(CaveDepth-1-HomeDepth)
	}
}

// MaxRoomsForDepth returns the number of room placements attempted at the
// given depth: the base count grows by half on each descent, rounding to the
// nearest integer.
func MaxRoomsForDepth(depth int) int {
	r := float64(BaseMaxRooms)
	for d := HomeDepth; d < depth; d++ {
		r = math.Round(r * 1.5)
	}
	return int(r)
}

// Rect represents a rectangular area of the map, given by its top-left and
// bottom-right corners.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect returns the rectangle of the given dimensions with top-left corner
// at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the central position of the rectangle.
func (r Rect) Center() gruid.Point {
	return gruid.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether the two rectangles overlap, borders included.
func (r Rect) Intersects(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// MapGen gathers state for generating a new map level.
type MapGen struct {
	g     *Game
	rects []Rect // accepted rooms or caves, in placement order
}

// GenerateLevel replaces the current map with a newly generated level at the
// given depth, places its entities, and positions the player. If up is true
// the level is laid out for a player arriving from below.
func (g *Game) GenerateLevel(depth int, up bool) {
	size := MapSizeForDepth(depth)
	g.Map = NewMap(gruid.Point{X: size, Y: size}, depth)
	g.PR = paths.NewPathRange(gruid.NewRange(0, 0, size, size))
	g.Entities = g.Entities[:1] // keep the player, drop the old level's entities
	g.StairsP, g.UpstairsP = InvalidPos, InvalidPos
	mg := &MapGen{g: g}
	switch {
	case depth <= HomeDepth:
		mg.home()
	case depth < CaveDepth:
		mg.rooms(up)
	default:
		mg.caves(up)
	}
}

// home generates the hand-placed starting level: a single quiet room with
// stairs leading down.
func (mg *MapGen) home() {
	g := mg.g
	room := NewRect(34, 15, 12, 12)
	mg.carveRoom(room)
	c := room.Center()
	g.Player().P = c
	mg.downstairs(c.Shift(1, 1))
}

// rooms generates a room-and-tunnel level.
func (mg *MapGen) rooms(up bool) {
	g := mg.g
	size := g.Map.Size()
	for range MaxRoomsForDepth(g.Map.Depth) {
		w := g.RandRange(RoomMinSize, RoomMaxSize)
		h := g.RandRange(RoomMinSize, RoomMaxSize)
		x := g.RandRange(0, size.X-w-1)
		y := g.RandRange(0, size.Y-h-1)
		room := NewRect(x, y, w, h)
		if mg.overlaps(room) {
			// Placement shortfall: the level is just sparser.
			continue
		}
		mg.carveRoom(room)
		if len(mg.rects) > 0 {
			mg.tunnel(mg.rects[len(mg.rects)-1].Center(), room.Center())
		}
		mg.rects = append(mg.rects, room)
	}
	mg.finish(up)
}

// caves generates an organic cave level.
func (mg *MapGen) caves(up bool) {
	g := mg.g
	size := g.Map.Size()
	for range MaxCaves {
		w := g.RandRange(CaveMinSize, CaveMaxSize)
		h := g.RandRange(CaveMinSize, CaveMaxSize)
		x := g.RandRange(0, size.X-w-1)
		y := g.RandRange(0, size.Y-h-1)
		cave := NewRect(x, y, w, h)
		if mg.overlaps(cave) {
			continue
		}
		mg.carveCave(cave)
		if len(mg.rects) > 0 {
			mg.tunnel(mg.rects[len(mg.rects)-1].Center(), cave.Center())
		}
		mg.rects = append(mg.rects, cave)
	}
	mg.finish(up)
}

// finish places the player, removes unreachable floor, spawns entities and
// puts the stairs markers.
func (mg *MapGen) finish(up bool) {
	g := mg.g
	first := mg.rects[0].Center()
	last := mg.rects[len(mg.rects)-1].Center()
	g.Player().P = first
	g.KeepConnected(first)
	for _, r := range mg.rects {
		g.PlaceEntities(r)
	}
	if up {
		// Arriving from below: the way down is where the player
		// stands.
		mg.downstairs(first)
		mg.upstairs(last)
	} else {
		mg.upstairs(first)
		mg.downstairs(last)
	}
}

// overlaps reports whether r intersects any already accepted rectangle.
func (mg *MapGen) overlaps(r Rect) bool {
	for _, o := range mg.rects {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

// carveRoom digs the interior of a room, leaving its right and bottom
// borders as walls.
func (mg *MapGen) carveRoom(room Rect) {
	gd := mg.g.Map.Terrain
	for x := room.X1 + 1; x < room.X2; x++ {
		for y := room.Y1 + 1; y < room.Y2; y++ {
			gd.Set(gruid.Point{X: x, Y: y}, Floor)
		}
	}
}

// carveCave digs a cave inside the given rectangle: random fill of the
// interior, then a smoothing pass that widens floor tiles wedged against
// wall corners, and finally the center is always dug so that tunnels can
// reach it.
func (mg *MapGen) carveCave(cave Rect) {
	g := mg.g
	gd := g.Map.Terrain
	for x := cave.X1 + 1; x < cave.X2-2; x++ {
		for y := cave.Y1 + 1; y < cave.Y2-2; y++ {
			p := gruid.Point{X: x, Y: y}
			if g.IntN(101) < 50 {
				gd.Set(p, Floor)
			} else {
				gd.Set(p, Wall)
			}
		}
	}
	for x := cave.X1 + 1; x < cave.X2-2; x++ {
		for y := cave.Y1 + 1; y < cave.Y2-2; y++ {
			p := gruid.Point{X: x, Y: y}
			if gd.At(p) != Floor {
				continue
			}
			nw := gd.At(p.Shift(-1, 0)) != Floor && gd.At(p.Shift(0, -1)) != Floor
			se := gd.At(p.Shift(1, 0)) != Floor && gd.At(p.Shift(0, 1)) != Floor
			if nw || se {
				gd.Set(p.Shift(-1, 0), Floor)
				gd.Set(p.Shift(0, -1), Floor)
				gd.Set(p.Shift(1, 0), Floor)
				gd.Set(p.Shift(0, 1), Floor)
			}
		}
	}
	gd.Set(cave.Center(), Floor)
}

// tunnel digs an L-shaped corridor between two positions, bending
// horizontally or vertically first at random.
func (mg *MapGen) tunnel(from, to gruid.Point) {
	if mg.g.IntN(2) == 1 {
		mg.carveHTunnel(from.X, to.X, from.Y)
		mg.carveVTunnel(from.Y, to.Y, to.X)
	} else {
		mg.carveVTunnel(from.Y, to.Y, from.X)
		mg.carveHTunnel(from.X, to.X, to.Y)
	}
}

func (mg *MapGen) carveHTunnel(x1, x2, y int) {
	gd := mg.g.Map.Terrain
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		gd.Set(gruid.Point{X: x, Y: y}, Floor)
	}
}

func (mg *MapGen) carveVTunnel(y1, y2, x int) {
	gd := mg.g.Map.Terrain
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		gd.Set(gruid.Point{X: x, Y: y}, Floor)
	}
}

// downstairs records the stairs-down position and adds its map marker.
func (mg *MapGen) downstairs(p gruid.Point) {
	g := mg.g
	g.StairsP = p
	g.Entities = append(g.Entities, &Entity{
		Name:  "stairs down",
		Rune:  '>',
		Color: ColorStairs,
		P:     p,
	})
}

// upstairs records the stairs-up position and adds its map marker.
func (mg *MapGen) upstairs(p gruid.Point) {
	g := mg.g
	g.UpstairsP = p
	g.Entities = append(g.Entities, &Entity{
		Name:  "stairs up",
		Rune:  '<',
		Color: ColorStairs,
		P:     p,
	})
}

// KeepConnected fills back any floor tile that cannot be reached from p, so
// that the remaining floor forms a single connected component. It returns
// the number of kept floor tiles.
func (g *Game) KeepConnected(p gruid.Point) int {
	pass := func(q gruid.Point) bool {
		return g.Map.Terrain.At(q) == Floor
	}
	g.PR.CCMap(&MapPath{passable: pass}, p)
	mg := rl.MapGen{Rand: g.rand, Grid: g.Map.Terrain}
	return mg.KeepCC(g.PR, p, Wall)
}
