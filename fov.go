package main

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// MaxFOVRange is the maximum distance in the player's field of view.
const MaxFOVRange = 6

// UpdateFOV updates the field of view and marks the seen tiles as explored.
// It has to be called each time the player moves.
func (g *Game) UpdateFOV() {
	pp := g.PP()
	rg := gruid.NewRange(-MaxFOVRange, -MaxFOVRange, MaxFOVRange+1, MaxFOVRange+1)
	rg = rg.Add(pp).Intersect(g.Map.Terrain.Range())
	g.Map.FOV.SetRange(rg)
	g.Map.FOV.VisionMap(&lighter{m: g.Map}, pp)
	passable := func(p gruid.Point) bool {
		return g.Map.Terrain.At(p) != Wall
	}
	g.Map.FOV.SSCVisionMap(pp, MaxFOVRange, passable, false)
	for y := rg.Min.Y; y < rg.Max.Y; y++ {
		for x := rg.Min.X; x < rg.Max.X; x++ {
			p := gruid.Point{X: x, Y: y}
			if g.InFOV(p) {
				g.Map.Known.Set(p, g.Map.Terrain.At(p))
			}
		}
	}
}

// InFOV reports whether p is in the player's field of view.
func (g *Game) InFOV(p gruid.Point) bool {
	cost, ok := g.Map.FOV.At(p)
	return ok && cost <= MaxFOVRange && g.Map.FOV.Visible(p)
}

// lighter implements rl.Lighter for the player's vision: walls block light,
// everything else carries it at unit cost.
type lighter struct {
	m *Map
}

func (lt *lighter) MaxCost(src gruid.Point) int {
	return MaxFOVRange + 1
}

func (lt *lighter) Cost(src, from, to gruid.Point) int {
	if from != src && lt.m.Terrain.At(from) == Wall {
		return MaxFOVRange + 1
	}
	return paths.DistanceManhattan(to, from)
}
