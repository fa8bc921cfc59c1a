// This file contains map-related code.

package main

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// These constants represent the different kinds of map tiles. In the Known
// grid, Unknown marks tiles the player has never seen.
const (
	Unknown rl.Cell = iota // tile not seen yet (Known grid only)
	Wall                   // obstructing, blocks vision
	Floor                  // passable ground
)

func TerrainName(t rl.Cell) string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	default:
		return "unknown terrain"
	}
}

// TerrainDesc returns a short description of a map tile.
func TerrainDesc(t rl.Cell) string {
	switch t {
	case Wall:
		return "A solid stone wall."
	case Floor:
		return "Bare dungeon ground."
	default:
		return "You have not explored this place yet."
	}
}

// TerrainRune returns the display rune of a map tile.
func TerrainRune(t rl.Cell) rune {
	switch t {
	case Wall:
		return '#'
	case Floor:
		return '.'
	default:
		return ' '
	}
}

// Map represents the terrain of a dungeon level. The Known grid records the
// terrain as last seen by the player and doubles as exploration state.
type Map struct {
	Terrain rl.Grid
	Known   rl.Grid
	FOV     *rl.FOV
	Depth   int
}

// NewMap returns a new map of the given size at the given depth, filled with
// walls.
func NewMap(size gruid.Point, depth int) *Map {
	m := &Map{
		Terrain: rl.NewGrid(size.X, size.Y),
		Known:   rl.NewGrid(size.X, size.Y),
		FOV:     rl.NewFOV(gruid.NewRange(0, 0, size.X, size.Y)),
		Depth:   depth,
	}
	m.Terrain.Fill(Wall)
	return m
}

// Size returns the dimensions of the map.
func (m *Map) Size() gruid.Point {
	return m.Terrain.Range().Size()
}

// Walkable reports whether p is a floor tile within the map.
func (m *Map) Walkable(p gruid.Point) bool {
	return p.In(m.Terrain.Range()) && m.Terrain.At(p) == Floor
}

// Explored reports whether the player has seen p at least once.
func (m *Map) Explored(p gruid.Point) bool {
	return m.Known.At(p) != Unknown
}
