package main

import (
	"math/rand/v2"
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

const rounds = 20

func connex(mt rl.Grid, pr *paths.PathRange, from gruid.Point) bool {
	pass := func(p gruid.Point) bool {
		return mt.At(p) == Floor
	}
	pr.CCMap(&MapPath{passable: pass}, from)
	for p, t := range mt.All() {
		if t == Floor && pr.CCMapAt(p) == -1 {
			return false
		}
	}
	return true
}

func map2String(mt rl.Grid) string {
	var sb strings.Builder
	size := mt.Size()
	for p, t := range mt.All() {
		if p.X%size.X == 0 && p.Y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteRune(TerrainRune(t))
	}
	return sb.String()
}

func TestGame(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	for range rounds {
		testGame(t)
	}
}

func testGame(t *testing.T) {
	g := &Game{rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	g.NewGame()
	if g.Map.Depth != HomeDepth {
		t.Errorf("new game starts at depth %d", g.Map.Depth)
	}
	checkLevel(t, g)
	for g.Map.Depth < CaveDepth+3 {
		g.Player().P = g.StairsP
		if !g.Descend() {
			t.Fatalf("could not descend at depth %d", g.Map.Depth)
		}
		checkLevel(t, g)
	}
	// Climbing back generates a level laid out for a player arriving from
	// below: the way down is where the player stands.
	g.Player().P = g.UpstairsP
	if !g.Ascend() {
		t.Fatalf("could not ascend at depth %d", g.Map.Depth)
	}
	if g.StairsP != g.PP() {
		t.Errorf("depth %d: stairs down not under player after climbing", g.Map.Depth)
	}
	checkLevel(t, g)
}

func checkLevel(t *testing.T, g *Game) {
	t.Helper()
	depth := g.Map.Depth
	if size := MapSizeForDepth(depth); g.Map.Size() != (gruid.Point{X: size, Y: size}) {
		t.Errorf("depth %d: bad map size %v", depth, g.Map.Size())
	}
	if !connex(g.Map.Terrain, g.PR, g.PP()) {
		t.Errorf("depth %d: floor not connected:\n%s", depth, map2String(g.Map.Terrain))
	}
	if g.Map.Terrain.At(g.PP()) != Floor {
		t.Errorf("depth %d: player on %s", depth, TerrainName(g.Map.Terrain.At(g.PP())))
	}
	switch {
	case g.StairsP == InvalidPos:
		t.Errorf("depth %d: missing stairs down", depth)
	case g.Map.Terrain.At(g.StairsP) != Floor:
		t.Errorf("depth %d: stairs down on a wall at %v", depth, g.StairsP)
	}
	if depth > HomeDepth {
		switch {
		case g.UpstairsP == InvalidPos:
			t.Errorf("depth %d: missing stairs up", depth)
		case g.Map.Terrain.At(g.UpstairsP) != Floor:
			t.Errorf("depth %d: stairs up on a wall at %v", depth, g.UpstairsP)
		}
	} else if g.UpstairsP != InvalidPos {
		t.Errorf("unexpected stairs up at home level")
	}
	b := map[gruid.Point]bool{}
	for _, e := range g.Entities {
		if e.Fighter != nil || e.IsItem() {
			if g.Map.Terrain.At(e.P) != Floor {
				t.Errorf("depth %d: %s on a wall at %v", depth, e.Name, e.P)
			}
		}
		if !e.Blocks {
			continue
		}
		if b[e.P] {
			t.Errorf("depth %d: two blocking entities at %v", depth, e.P)
		}
		b[e.P] = true
	}
}

func TestKeepConnected(t *testing.T) {
	g := &Game{rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	g.Map = NewMap(gruid.Point{X: 20, Y: 10}, HomeDepth)
	g.PR = paths.NewPathRange(gruid.NewRange(0, 0, 20, 10))
	// Two floor regions separated by a wall column.
	for p := range g.Map.Terrain.All() {
		if p.Y >= 3 && p.Y <= 6 && p.X != 10 && p.X > 0 && p.X < 19 {
			g.Map.Terrain.Set(p, Floor)
		}
	}
	n := g.KeepConnected(gruid.Point{X: 3, Y: 4})
	if n != 9*4 {
		t.Errorf("kept %d floor tiles, want %d", n, 9*4)
	}
	if g.Map.Terrain.At(gruid.Point{X: 15, Y: 4}) != Wall {
		t.Errorf("unreachable region not filled back:\n%s", map2String(g.Map.Terrain))
	}
	if g.Map.Terrain.At(gruid.Point{X: 3, Y: 4}) != Floor {
		t.Errorf("reachable region filled back:\n%s", map2String(g.Map.Terrain))
	}
}

func TestMapSizeForDepth(t *testing.T) {
	for _, tc := range []struct{ depth, size int }{
		{1, 90}, {10, 90}, {11, 100}, {15, 140}, {19, 180}, {20, 180}, {30, 180},
	} {
		if size := MapSizeForDepth(tc.depth); size != tc.size {
			t.Errorf("MapSizeForDepth(%d) = %d, want %d", tc.depth, size, tc.size)
		}
	}
}

func TestMaxRoomsForDepth(t *testing.T) {
	for _, tc := range []struct{ depth, rooms int }{
		{10, 4}, {11, 6}, {12, 9}, {13, 14}, {14, 21},
	} {
		if r := MaxRoomsForDepth(tc.depth); r != tc.rooms {
			t.Errorf("MaxRoomsForDepth(%d) = %d, want %d", tc.depth, r, tc.rooms)
		}
	}
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 6)
	if r.X2 != 6 || r.Y2 != 9 {
		t.Errorf("bad corner: %+v", r)
	}
	if c := r.Center(); c != (gruid.Point{X: 4, Y: 6}) {
		t.Errorf("bad center: %v", c)
	}
	if !r.Intersects(NewRect(6, 9, 3, 3)) {
		t.Errorf("touching rectangles should intersect")
	}
	if r.Intersects(NewRect(7, 3, 3, 3)) {
		t.Errorf("disjoint rectangles should not intersect")
	}
}
