// This file defines functions for basic handling of entities.

package main

import (
	"codeberg.org/anaseto/gruid"
)

// Entity represents the various kinds of map or inventory entities. Common
// components live in dedicated fields; a nil field means the entity lacks
// that capability.
type Entity struct {
	Name          string
	Rune          rune
	Color         gruid.Color
	P             gruid.Point // map position (InvalidPos when carried)
	Blocks        bool        // whether it blocks movement
	AlwaysVisible bool        // drawn on explored tiles even out of view
	Fighter       *Fighter
	Behavior      Behavior
	Consumable    *Consumable
	Wearable      *Wearable
}

// String returns the name of the entity.
func (e *Entity) String() string {
	return e.Name
}

// IsItem reports whether e can be picked up.
func (e *Entity) IsItem() bool {
	return e.Consumable != nil || e.Wearable != nil
}

// RenderOrder returns the drawing priority of an entity. Entities with a
// higher order are drawn over lower ones sharing a tile.
func (e *Entity) RenderOrder() int {
	switch {
	case e.Fighter != nil:
		return 3
	case e.IsItem():
		return 2
	default:
		return 1
	}
}

// Player returns the player entity. It is always the first entry of the
// registry.
func (g *Game) Player() *Entity {
	return g.Entities[0]
}

// PP returns the player's position.
func (g *Game) PP() gruid.Point {
	return g.Player().P
}

// Blocked reports whether p is a wall or occupied by a blocking entity.
func (g *Game) Blocked(p gruid.Point) bool {
	if !g.Map.Walkable(p) {
		return true
	}
	for _, e := range g.Entities {
		if e.Blocks && e.P == p {
			return true
		}
	}
	return false
}

// FighterAt returns the first fighting entity other than the player at p, or
// nil if there is none.
func (g *Game) FighterAt(p gruid.Point) *Entity {
	for _, e := range g.Entities[1:] {
		if e.Fighter != nil && e.P == p {
			return e
		}
	}
	return nil
}

// ItemAt returns the first item lying at p, or nil if there is none.
func (g *Game) ItemAt(p gruid.Point) *Entity {
	for _, e := range g.Entities {
		if e.IsItem() && e.P == p {
			return e
		}
	}
	return nil
}

// MoveEntity moves an entity to p, unless the terrain or a blocking entity
// is in the way.
func (g *Game) MoveEntity(e *Entity, p gruid.Point) {
	if g.Blocked(p) {
		return
	}
	e.P = p
}

// RemoveEntity removes the entity at registry index i, preserving order.
func (g *Game) RemoveEntity(i int) {
	g.Entities = append(g.Entities[:i], g.Entities[i+1:]...)
}
