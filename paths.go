package main

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// MapPath implements the paths.Pather interface and is used to provide
// pathing information on map terrain.
type MapPath struct {
	passable func(gruid.Point) bool
	nbs      paths.Neighbors
}

func (mp *MapPath) Neighbors(p gruid.Point) []gruid.Point {
	return mp.nbs.Cardinal(p, mp.passable)
}

// PlayerPath returns a path between two map positions going only through
// tiles the player has explored.
func (g *Game) PlayerPath(from, to gruid.Point) []gruid.Point {
	passable := func(p gruid.Point) bool {
		return g.Map.Walkable(p) && g.Map.Explored(p)
	}
	return g.PR.JPSPath(nil, from, to, passable, false)
}
